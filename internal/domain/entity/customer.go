package entity

import "time"

// Customer representa un cliente de la tienda.
//
// Los tags JSON definen el esquema persistido en el slot `iwr_customers`.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"` // CPF (Brasil), texto libre con puntuación
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	IsVIP     bool      `json:"isVip"` // solo énfasis visual, sin efecto en precios
	CreatedAt time.Time `json:"createdAt"`
}
