package dto

import "time"

// CreateBeerRequest entrada para registrar una cerveza.
// El tope global de 100 unidades por petición aplica en la frontera HTTP,
// independiente de la capacidad (max) de cada cerveza.
type CreateBeerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Brand    string `json:"brand" validate:"required,min=1,max=200"`
	Type     string `json:"type" validate:"required"`
	Max      int    `json:"max" validate:"required,gt=0,lte=500"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=100,ltefield=Max"`
}

// QuantityRequest entrada para incrementar o decrementar stock.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=100"`
}

// BeerResponse salida de una cerveza.
type BeerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Max       int       `json:"max"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
