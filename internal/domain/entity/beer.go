package entity

import "time"

// Beer representa una cerveza del inventario con stock acotado por Max.
// Quantity solo se modifica vía incremento/decremento; Max es inmutable tras la creación.
type Beer struct {
	ID        string
	Name      string // único en todo el inventario (sensible a mayúsculas)
	Brand     string
	Type      BeerType
	Max       int // capacidad máxima de stock
	Quantity  int // invariante: 0 <= Quantity <= Max
	CreatedAt time.Time
	UpdatedAt time.Time
}
