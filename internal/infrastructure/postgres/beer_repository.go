package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cervezas-api/internal/domain"
	"github.com/jhoicas/cervezas-api/internal/domain/entity"
	"github.com/jhoicas/cervezas-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

// BeerRepo implementación del puerto BeerRepository sobre PostgreSQL (usable con pool o tx).
type BeerRepo struct {
	q Querier
}

// NewBeerRepository construye el adaptador de persistencia para cervezas. Pasar pool o tx (Querier).
func NewBeerRepository(q Querier) *BeerRepo {
	return &BeerRepo{q: q}
}

const beerColumns = `id, name, brand, type, max, quantity, created_at, updated_at`

// GetByName obtiene una cerveza por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *BeerRepo) GetByName(ctx context.Context, name string) (*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beers WHERE name = $1`
	return r.getOne(ctx, query, name)
}

// GetByID obtiene una cerveza por ID. Devuelve (nil, nil) si no existe.
func (r *BeerRepo) GetByID(ctx context.Context, id string) (*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beers WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *BeerRepo) getOne(ctx context.Context, query string, arg any) (*entity.Beer, error) {
	var b entity.Beer
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&b.ID, &b.Name, &b.Brand, &b.Type, &b.Max, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return &b, nil
}

// List devuelve todas las cervezas ordenadas por fecha de creación.
func (r *BeerRepo) List(ctx context.Context) ([]*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beers ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Beer
	for rows.Next() {
		var b entity.Beer
		if err := rows.Scan(&b.ID, &b.Name, &b.Brand, &b.Type, &b.Max, &b.Quantity, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan beer: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Save inserta la cerveza si no tiene ID (asignando uno nuevo) o la actualiza si ya lo tiene.
func (r *BeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	if beer.ID == "" {
		beer.ID = uuid.New().String()
		query := `
			INSERT INTO beers (id, name, brand, type, max, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(ctx, query,
			beer.ID, beer.Name, beer.Brand, beer.Type, beer.Max, beer.Quantity,
			beer.CreatedAt, beer.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrDuplicate
			}
			return nil, fmt.Errorf("insert beer: %w", err)
		}
		return beer, nil
	}
	query := `
		UPDATE beers SET name = $2, brand = $3, type = $4, max = $5, quantity = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		beer.ID, beer.Name, beer.Brand, beer.Type, beer.Max, beer.Quantity, beer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update beer: %w", err)
	}
	return beer, nil
}

// Delete elimina una cerveza por ID. No falla si el ID no existe; el caso de
// uso verifica la existencia antes de llamar.
func (r *BeerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM beers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}
	return nil
}
