package repository

import (
	"context"

	"github.com/jhoicas/cervezas-api/internal/domain/entity"
)

// BeerRepository define el puerto de persistencia para Beer (DIP).
// GetByName y GetByID devuelven (nil, nil) cuando no hay coincidencia.
type BeerRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Beer, error)
	GetByID(ctx context.Context, id string) (*entity.Beer, error)
	List(ctx context.Context) ([]*entity.Beer, error)
	// Save inserta si ID está vacío (asignando uno nuevo) o actualiza si ya existe.
	Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error)
	// Delete no verifica existencia; el caso de uso la comprueba antes.
	Delete(ctx context.Context, id string) error
}
