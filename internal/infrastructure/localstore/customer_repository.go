package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre el slot
// `iwr_customers`. Cada mutación lee la colección completa, la modifica en
// memoria y la reescribe.
type CustomerRepo struct {
	store *Store
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// Seed siembra la colección de ejemplo si el slot no existe. Idempotente:
// una segunda llamada no tiene efecto adicional.
func (r *CustomerRepo) Seed(now time.Time) error {
	_, exists, err := r.store.Get(SlotCustomers)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.write(seedCustomers(now))
}

// List devuelve la colección completa en orden de almacenamiento.
func (r *CustomerRepo) List() ([]entity.Customer, error) {
	raw, exists, err := r.store.Get(SlotCustomers)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []entity.Customer{}, nil
	}
	var customers []entity.Customer
	if err := json.Unmarshal(raw, &customers); err != nil {
		return nil, fmt.Errorf("%w: slot %s: %v", domain.ErrCorruptData, SlotCustomers, err)
	}
	return customers, nil
}

// GetByID busca un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	customers, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, nil
}

// Create añade el cliente al final de la colección y la persiste.
// Rechaza IDs duplicados con domain.ErrDuplicate.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	customers, err := r.List()
	if err != nil {
		return err
	}
	for _, c := range customers {
		if c.ID == customer.ID {
			return domain.ErrDuplicate
		}
	}
	return r.write(append(customers, *customer))
}

// ToggleVIP invierte el flag VIP del cliente. No-op si el ID no existe.
func (r *CustomerRepo) ToggleVIP(id string) error {
	customers, err := r.List()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers[i].IsVIP = !customers[i].IsVIP
			return r.write(customers)
		}
	}
	return nil
}

func (r *CustomerRepo) write(customers []entity.Customer) error {
	raw, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("serializar clientes: %w", err)
	}
	return r.store.Set(SlotCustomers, raw)
}
