package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// Datos de ejemplo con los que se siembra un almacén vacío: dos clientes y
// dos notas, una PENDING con vencimiento mañana y una OVERDUE vencida ayer,
// relativas a now.

func seedCustomers(now time.Time) []entity.Customer {
	return []entity.Customer{
		{
			ID:        "1",
			Name:      "Ismael Silva",
			CPF:       "123.456.789-00",
			Phone:     "5511999999999",
			Email:     "ismael@example.com",
			Address:   "Rua das Flores, 123, Centro",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Ana Pereira",
			CPF:       "987.654.321-11",
			Phone:     "5511988888888",
			Email:     "ana@example.com",
			Address:   "Av. Brasil, 456, Jardins",
			CreatedAt: now,
		},
	}
}

func seedNotes(now time.Time) []entity.PromissoryNote {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	return []entity.PromissoryNote{
		{
			ID:            "1001",
			CustomerID:    "1",
			CustomerName:  "Ismael Silva",
			CustomerPhone: "5511999999999",
			CustomerCPF:   "123.456.789-00",
			Items: []entity.LineItem{
				{ID: "p1", Description: "Camisa Polo Premium", Quantity: 2, Price: decimal.NewFromFloat(150.00)},
			},
			TotalAmount:  decimal.NewFromFloat(300.00),
			IssueDate:    yesterday,
			DueDate:      tomorrow,
			Status:       entity.StatusPending,
			WhatsappSent: false,
		},
		{
			ID:            "1002",
			CustomerID:    "2",
			CustomerName:  "Ana Pereira",
			CustomerPhone: "5511988888888",
			CustomerCPF:   "987.654.321-11",
			Items: []entity.LineItem{
				{ID: "p2", Description: "Conjunto Utensílios Inox", Quantity: 1, Price: decimal.NewFromFloat(450.00)},
			},
			TotalAmount:  decimal.NewFromFloat(450.00),
			IssueDate:    yesterday,
			DueDate:      yesterday,
			Status:       entity.StatusOverdue,
			WhatsappSent: true,
		},
	}
}
