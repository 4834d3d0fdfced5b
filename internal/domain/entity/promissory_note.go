package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoteStatus estado de pago de una nota promissória.
//
// El estado almacenado es la única fuente de verdad: el paso de la fecha de
// vencimiento NO lo cambia automáticamente. La transición PENDING → OVERDUE
// la ejecuta un barrido explícito (NoteUseCase.SweepOverdue).
type NoteStatus string

const (
	StatusPending NoteStatus = "PENDING"
	StatusPaid    NoteStatus = "PAID"
	StatusOverdue NoteStatus = "OVERDUE"
)

// ValidStatus indica si s es uno de los tres estados conocidos.
func ValidStatus(s NoteStatus) bool {
	return s == StatusPending || s == StatusPaid || s == StatusOverdue
}

// LineItem ítem de venta dentro de una nota.
// Price es el precio UNITARIO; el total de línea es Price × Quantity.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Total devuelve Price × Quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// PromissoryNote representa una venta a crédito (nota promissória).
//
// Los campos Customer* son una FOTO de los datos del cliente al momento de la
// venta: ediciones posteriores del cliente no alteran notas ya emitidas.
// TotalAmount se calcula al crear la nota y se almacena de forma redundante;
// el almacén no lo recalcula a partir de Items.
type PromissoryNote struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	CustomerCPF   string          `json:"customerCpf"`
	Items         []LineItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        NoteStatus      `json:"status"`
	Notes         string          `json:"notes,omitempty"` // observaciones libres
	WhatsappSent  bool            `json:"whatsappSent,omitempty"`
}
