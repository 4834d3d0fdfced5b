package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/iwr-crediario/internal/application/analytics"
	"github.com/jhoicas/iwr-crediario/internal/application/dto"
	"github.com/jhoicas/iwr-crediario/internal/application/usecase"
	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
	"github.com/jhoicas/iwr-crediario/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/iwr-crediario/internal/infrastructure/pdf"
	"github.com/jhoicas/iwr-crediario/internal/infrastructure/whatsapp"
	"github.com/jhoicas/iwr-crediario/pkg/config"
	"github.com/jhoicas/iwr-crediario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	customerRepo := localstore.NewCustomerRepository(store)
	noteRepo := localstore.NewNoteRepository(store)

	now := time.Now()
	if cfg.Store.Seed {
		if err := customerRepo.Seed(now); err != nil {
			log.Fatal().Err(err).Msg("sembrar clientes")
		}
		if err := noteRepo.Seed(now); err != nil {
			log.Fatal().Err(err).Msg("sembrar notas")
		}
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo, noteRepo)
	noteUC := usecase.NewNoteUseCase(noteRepo, customerRepo)
	dashboardUC := analytics.NewDashboardUseCase(noteRepo, customerRepo)
	links := whatsapp.NewLinkBuilder(cfg.WhatsApp.BaseURL, cfg.POS.StoreName)
	documents := usecase.NewDocumentUseCase(noteRepo, infrapdf.NewMarotoNoteGenerator(), usecase.Issuer{
		Name: cfg.POS.StoreName,
		City: cfg.POS.StoreCity,
	})

	// Barrido explícito PENDING → OVERDUE al arrancar: el estado almacenado
	// es la única fuente de verdad para "vencida".
	flipped, err := noteUC.SweepOverdue(now)
	if err != nil {
		log.Fatal().Err(err).Msg("barrido de vencidas")
	}
	if flipped > 0 {
		log.Info().Int("notas", flipped).Msg("notas pasadas a OVERDUE")
	}

	summary, err := dashboardUC.GetSummary(now)
	if err != nil {
		log.Fatal().Err(err).Msg("resumen del dashboard")
	}
	log.Info().
		Str("periodo", summary.DateLabel).
		Str("receita_pendente", summary.PendingReceivable.StringFixed(2)).
		Str("vencidas_total", summary.OverdueTotal.StringFixed(2)).
		Int("vencidas", summary.OverdueCount).
		Str("ventas_acumuladas", summary.TotalSales.StringFixed(2)).
		Int("notas", summary.NotesCount).
		Int("clientes", summary.CustomerCount).
		Int("vencen_hoy", summary.DueTodayCount).
		Msg("dashboard")

	// En development se ejecuta un flujo de demostración completo:
	// venta → documento PDF → enlace de cobro.
	if cfg.App.Env == "development" {
		runDemo(log, cfg, customerUC, noteUC, noteRepo, documents, links)
	}
}

// runDemo recorre el flujo del punto de venta con el primer cliente
// registrado y deja el PDF de la nota en el directorio de salida.
func runDemo(
	log *logger.Logger,
	cfg *config.Config,
	customerUC *usecase.CustomerUseCase,
	noteUC *usecase.NoteUseCase,
	noteRepo repository.NoteRepository,
	documents *usecase.DocumentUseCase,
	links *whatsapp.LinkBuilder,
) {
	customers, err := customerUC.List()
	if err != nil || len(customers) == 0 {
		log.Error().Err(err).Msg("demo: sin clientes disponibles")
		return
	}

	sale, err := noteUC.RegisterSale(dto.RegisterSaleRequest{
		CustomerID: customers[0].ID,
		Items: []dto.CartItemRequest{
			{Description: "Camisa Polo Premium", Quantity: 1, Price: decimal.NewFromFloat(150.00)},
			{Description: "Calça Alfaiataria", Quantity: 1, Price: decimal.NewFromFloat(220.00)},
		},
		DueDays: cfg.POS.DueDays,
	})
	if err != nil {
		log.Error().Err(err).Msg("demo: registrar venta")
		return
	}
	log.Info().
		Str("nota", sale.ID).
		Str("cliente", sale.CustomerName).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Time("vencimento", sale.DueDate).
		Msg("demo: venda realizada")

	if err := os.MkdirAll(cfg.PDF.OutputDir, 0o755); err != nil {
		log.Error().Err(err).Msg("demo: crear directorio de salida")
		return
	}
	doc, err := documents.GenerateByID(sale.ID)
	if err != nil {
		log.Error().Err(err).Msg("demo: generar PDF")
		return
	}
	out := filepath.Join(cfg.PDF.OutputDir, "nota-"+sale.ID+".pdf")
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		log.Error().Err(err).Msg("demo: escribir PDF")
		return
	}
	log.Info().Str("archivo", out).Msg("demo: documento generado")

	issued, err := noteRepo.GetByID(sale.ID)
	if err != nil || issued == nil {
		log.Error().Err(err).Msg("demo: releer nota emitida")
		return
	}
	link, err := links.ChargeLink(issued)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			log.Warn().Str("nota", sale.ID).Msg("demo: cliente sin teléfono, sin recordatorio")
			return
		}
		log.Error().Err(err).Msg("demo: enlace de cobro")
		return
	}
	if err := noteUC.MarkWhatsappSent(sale.ID); err != nil {
		log.Error().Err(err).Msg("demo: marcar recordatorio enviado")
		return
	}
	log.Info().Str("link", link).Msg("demo: recordatorio listo para abrir")
}
