package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente desde la capa de presentación.
// Name y CPF son obligatorios; el resto es texto libre opcional.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	CPF     string `json:"cpf"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	IsVIP   bool   `json:"isVip"`
}

// CustomerResponse representación de un cliente para la presentación.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	IsVIP     bool      `json:"isVip"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerStats métricas derivadas del historial de compras de un cliente
// (tarjetas del modal de detalle). Se recalculan en cada consulta.
type CustomerStats struct {
	TotalSpent    decimal.Decimal `json:"total_spent"`
	OpenDebt      decimal.Decimal `json:"open_debt"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// CustomerDetailResponse cliente + historial (emisión descendente) + métricas.
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	History  []NoteResponse   `json:"history"`
	Stats    CustomerStats    `json:"stats"`
}
