package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest ítem del carrito del punto de venta.
// Price es precio unitario; Quantity por defecto 1 si viene en cero.
type CartItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// RegisterSaleRequest checkout del punto de venta: una venta a crédito para
// un cliente existente. DueDays en cero usa el plazo por defecto configurado.
type RegisterSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []CartItemRequest `json:"items"`
	DueDays    int               `json:"due_days"`
	Notes      string            `json:"notes"`
}

// LineItemResponse ítem de una nota ya emitida.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// NoteResponse representación de una nota promissória para la presentación.
// Los campos Customer* son la foto tomada al momento de la venta.
type NoteResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	CustomerCPF   string             `json:"customerCpf"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	IssueDate     time.Time          `json:"issueDate"`
	DueDate       time.Time          `json:"dueDate"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	WhatsappSent  bool               `json:"whatsappSent"`
}

// NoteFilter filtros de la vista "Carteira de Títulos".
// Status vacío o "ALL" no filtra; DueDay filtra por día calendario;
// Search busca por nombre de cliente (case-insensitive) o por fragmento de ID.
type NoteFilter struct {
	Status string     `json:"status"`
	DueDay *time.Time `json:"due_day"`
	Search string     `json:"search"`
}
