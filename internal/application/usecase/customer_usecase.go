package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/iwr-crediario/internal/application/dto"
	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/report"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

// CustomerUseCase casos de uso de la vista de clientes y su modal de detalle.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	notes     repository.NoteRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, notes repository.NoteRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, notes: notes}
}

// Create registra un nuevo cliente. Name y CPF son obligatorios; la
// validación vive aquí, en la frontera del módulo, no en el almacén.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CPF) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CPF:       in.CPF,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		IsVIP:     in.IsVIP,
		CreatedAt: time.Now(),
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	out := toCustomerResponse(*customer)
	return &out, nil
}

// List devuelve todos los clientes en orden de registro.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Search filtra por nombre, case-insensitive (buscador de la vista de
// clientes). Término vacío devuelve todos.
func (uc *CustomerUseCase) Search(term string) ([]dto.CustomerResponse, error) {
	all, err := uc.List()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(term) == "" {
		return all, nil
	}
	needle := strings.ToLower(term)
	var out []dto.CustomerResponse
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ToggleVIP invierte la clasificación VIP del cliente. ID ausente es no-op.
func (uc *CustomerUseCase) ToggleVIP(id string) error {
	return uc.customers.ToggleVIP(id)
}

// Detail devuelve el cliente con su historial de compras (emisión
// descendente) y las métricas del modal: total gastado, deuda abierta y
// ticket promedio.
func (uc *CustomerUseCase) Detail(id string) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	history, err := uc.notes.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerDetailResponse{
		Customer: toCustomerResponse(*customer),
		History:  toNoteResponses(history),
		Stats: dto.CustomerStats{
			TotalSpent:    report.TotalSpent(history),
			OpenDebt:      report.OpenDebt(history),
			AverageTicket: report.AverageTicket(history),
		},
	}, nil
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		IsVIP:     c.IsVIP,
		CreatedAt: c.CreatedAt,
	}
}
