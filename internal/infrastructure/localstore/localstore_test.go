package localstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "crediario.db"))
	require.NoError(t, err, "debe abrirse el almacén en un directorio temporal")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func customer(id, name string) *entity.Customer {
	return &entity.Customer{
		ID:        id,
		Name:      name,
		CPF:       "111.222.333-44",
		Phone:     "5511912345678",
		Email:     "test@example.com",
		Address:   "Rua de Teste, 1",
		// UTC para que el round-trip JSON preserve la representación exacta
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func note(id, customerID string, amount float64, issue time.Time) *entity.PromissoryNote {
	return &entity.PromissoryNote{
		ID:          id,
		CustomerID:  customerID,
		TotalAmount: decimal.NewFromFloat(amount),
		IssueDate:   issue,
		DueDate:     issue.AddDate(0, 0, 30),
		Status:      entity.StatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedSiembraDatosDeEjemplo(t *testing.T) {
	store := openStore(t)
	customers := localstore.NewCustomerRepository(store)
	notes := localstore.NewNoteRepository(store)
	now := time.Now()

	require.NoError(t, customers.Seed(now))
	require.NoError(t, notes.Seed(now))

	cs, err := customers.List()
	require.NoError(t, err)
	require.Len(t, cs, 2, "el almacén vacío se siembra con exactamente 2 clientes")
	assert.Equal(t, "Ismael Silva", cs[0].Name)
	assert.Equal(t, "Ana Pereira", cs[1].Name)

	ns, err := notes.List()
	require.NoError(t, err)
	require.Len(t, ns, 2, "el almacén vacío se siembra con exactamente 2 notas")
	assert.Equal(t, entity.StatusPending, ns[0].Status)
	assert.Equal(t, entity.StatusOverdue, ns[1].Status)
	assert.True(t, ns[0].TotalAmount.Equal(decimal.NewFromFloat(300.00)))
	assert.True(t, ns[1].TotalAmount.Equal(decimal.NewFromFloat(450.00)))
}

func TestSeedIdempotente(t *testing.T) {
	store := openStore(t)
	customers := localstore.NewCustomerRepository(store)
	notes := localstore.NewNoteRepository(store)

	require.NoError(t, customers.Seed(time.Now()))
	require.NoError(t, notes.Seed(time.Now()))

	rawC1, _, err := store.Get(localstore.SlotCustomers)
	require.NoError(t, err)
	rawN1, _, err := store.Get(localstore.SlotNotes)
	require.NoError(t, err)

	// Segunda siembra con otro "now": no debe tocar los slots existentes.
	require.NoError(t, customers.Seed(time.Now().AddDate(0, 0, 7)))
	require.NoError(t, notes.Seed(time.Now().AddDate(0, 0, 7)))

	rawC2, _, err := store.Get(localstore.SlotCustomers)
	require.NoError(t, err)
	rawN2, _, err := store.Get(localstore.SlotNotes)
	require.NoError(t, err)

	assert.Equal(t, rawC1, rawC2, "sembrar dos veces produce bytes idénticos a sembrar una vez")
	assert.Equal(t, rawN1, rawN2, "sembrar dos veces produce bytes idénticos a sembrar una vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCustomerRoundTrip(t *testing.T) {
	repo := localstore.NewCustomerRepository(openStore(t))

	c := customer("c-1", "Marina Costa")
	c.IsVIP = true
	require.NoError(t, repo.Create(c))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "el cliente añadido aparece exactamente una vez")
	assert.Equal(t, *c, list[0], "todos los campos se preservan en el round-trip")
}

func TestCreateCustomerRechazaIDDuplicado(t *testing.T) {
	repo := localstore.NewCustomerRepository(openStore(t))

	require.NoError(t, repo.Create(customer("c-1", "Marina Costa")))
	err := repo.Create(customer("c-1", "Otra Persona"))

	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1, "el duplicado rechazado no se persiste")
}

func TestToggleVIPDobleVuelveAlOriginal(t *testing.T) {
	repo := localstore.NewCustomerRepository(openStore(t))
	require.NoError(t, repo.Create(customer("c-1", "Marina Costa")))

	require.NoError(t, repo.ToggleVIP("c-1"))
	got, err := repo.GetByID("c-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsVIP)

	require.NoError(t, repo.ToggleVIP("c-1"))
	got, err = repo.GetByID("c-1")
	require.NoError(t, err)
	assert.False(t, got.IsVIP, "dos toggles devuelven el flag a su valor original")
}

func TestToggleVIPInexistenteEsNoOp(t *testing.T) {
	repo := localstore.NewCustomerRepository(openStore(t))
	require.NoError(t, repo.Create(customer("c-1", "Marina Costa")))

	before, err := repo.List()
	require.NoError(t, err)

	require.NoError(t, repo.ToggleVIP("no-existe"), "mutar un ID ausente no es error")

	after, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, before, after, "la colección queda intacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas
// ──────────────────────────────────────────────────────────────────────────────

func TestListByCustomerFiltraYOrdena(t *testing.T) {
	repo := localstore.NewNoteRepository(openStore(t))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)

	require.NoError(t, repo.Create(note("n-viejo", "c-1", 100, base)))
	require.NoError(t, repo.Create(note("n-ajeno", "c-2", 999, base)))
	require.NoError(t, repo.Create(note("n-nuevo", "c-1", 200, base.AddDate(0, 0, 5))))
	require.NoError(t, repo.Create(note("n-empate", "c-1", 300, base))) // misma emisión que n-viejo

	got, err := repo.ListByCustomer("c-1")
	require.NoError(t, err)
	require.Len(t, got, 3, "solo notas del cliente pedido")

	assert.Equal(t, "n-nuevo", got[0].ID, "emisión más reciente primero")
	assert.Equal(t, "n-viejo", got[1].ID, "empate conserva orden de almacenamiento")
	assert.Equal(t, "n-empate", got[2].ID)
}

func TestUpdateStatusYNoOp(t *testing.T) {
	repo := localstore.NewNoteRepository(openStore(t))
	base := time.Now()
	require.NoError(t, repo.Create(note("n-1", "c-1", 100, base)))

	require.NoError(t, repo.UpdateStatus("n-1", entity.StatusPaid))
	got, err := repo.GetByID("n-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)

	// La transición inversa está permitida (sin validación de legalidad).
	require.NoError(t, repo.UpdateStatus("n-1", entity.StatusPending))
	got, _ = repo.GetByID("n-1")
	assert.Equal(t, entity.StatusPending, got.Status)

	require.NoError(t, repo.UpdateStatus("no-existe", entity.StatusPaid), "ID ausente es no-op")
}

func TestMarkWhatsappSent(t *testing.T) {
	repo := localstore.NewNoteRepository(openStore(t))
	require.NoError(t, repo.Create(note("n-1", "c-1", 100, time.Now())))

	require.NoError(t, repo.MarkWhatsappSent("n-1"))
	got, err := repo.GetByID("n-1")
	require.NoError(t, err)
	assert.True(t, got.WhatsappSent)

	require.NoError(t, repo.MarkWhatsappSent("no-existe"), "ID ausente es no-op")
}

func TestMarkOverdueBefore(t *testing.T) {
	repo := localstore.NewNoteRepository(openStore(t))
	hoy := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	vencida := note("n-vencida", "c-1", 100, hoy.AddDate(0, 0, -40))
	vencida.DueDate = hoy.AddDate(0, 0, -3)
	require.NoError(t, repo.Create(vencida))

	venceHoy := note("n-hoy", "c-1", 100, hoy.AddDate(0, 0, -30))
	venceHoy.DueDate = hoy.Add(-2 * time.Hour) // mismo día calendario, hora anterior
	require.NoError(t, repo.Create(venceHoy))

	pagada := note("n-pagada", "c-1", 100, hoy.AddDate(0, 0, -40))
	pagada.DueDate = hoy.AddDate(0, 0, -3)
	pagada.Status = entity.StatusPaid
	require.NoError(t, repo.Create(pagada))

	flipped, err := repo.MarkOverdueBefore(hoy)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped, "solo la PENDING con día de vencimiento anterior cambia")

	got, _ := repo.GetByID("n-vencida")
	assert.Equal(t, entity.StatusOverdue, got.Status)
	got, _ = repo.GetByID("n-hoy")
	assert.Equal(t, entity.StatusPending, got.Status, "vencer hoy no es estar vencida")
	got, _ = repo.GetByID("n-pagada")
	assert.Equal(t, entity.StatusPaid, got.Status, "una nota pagada nunca se barre")

	// Barrido idempotente: repetirlo no cambia nada más.
	flipped, err = repo.MarkOverdueBefore(hoy)
	require.NoError(t, err)
	assert.Zero(t, flipped)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos corruptos
// ──────────────────────────────────────────────────────────────────────────────

func TestSlotCorruptoDevuelveErrCorruptData(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Set(localstore.SlotNotes, []byte(`{esto no es un array`)))

	repo := localstore.NewNoteRepository(store)
	_, err := repo.List()

	assert.ErrorIs(t, err, domain.ErrCorruptData,
		"JSON malformado es fatal para la colección, nunca se trata como vacía")
}
