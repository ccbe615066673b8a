package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/cervezas-api/internal/application/dto"
	"github.com/jhoicas/cervezas-api/internal/domain"
	"github.com/jhoicas/cervezas-api/internal/domain/entity"
	"github.com/jhoicas/cervezas-api/internal/domain/repository"
)

// BeerUseCase reglas de negocio para el ciclo de vida y ajuste de stock de Beer.
// Es el único punto donde se evalúan las invariantes de dominio: unicidad del
// nombre, existencia previa a toda mutación y cota 0 <= quantity <= max.
type BeerUseCase struct {
	repo repository.BeerRepository

	// Los ajustes leer-verificar-guardar no son atómicos en el almacén;
	// se serializan por id para evitar carreras entre llamadores concurrentes.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewBeerUseCase construye el caso de uso.
func NewBeerUseCase(repo repository.BeerRepository) *BeerUseCase {
	return &BeerUseCase{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// Create registra una nueva cerveza. Falla si el nombre ya está registrado;
// el almacén asigna el ID al insertar.
func (uc *BeerUseCase) Create(ctx context.Context, in dto.CreateBeerRequest) (*dto.BeerResponse, error) {
	beerType, err := entity.ParseBeerType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("tipo %q: %w", in.Type, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("cerveza %q: %w", in.Name, domain.ErrBeerAlreadyRegistered)
	}
	now := time.Now()
	beer := &entity.Beer{
		Name:      in.Name,
		Brand:     in.Brand,
		Type:      beerType,
		Max:       in.Max,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := uc.repo.Save(ctx, beer)
	if err != nil {
		return nil, err
	}
	return toBeerResponse(saved), nil
}

// GetByName obtiene una cerveza por nombre exacto.
func (uc *BeerUseCase) GetByName(ctx context.Context, name string) (*dto.BeerResponse, error) {
	beer, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if beer == nil {
		return nil, fmt.Errorf("cerveza %q: %w", name, domain.ErrBeerNotFound)
	}
	return toBeerResponse(beer), nil
}

// List devuelve todas las cervezas en el orden del almacén. Inventario vacío
// produce una lista vacía, no un error.
func (uc *BeerUseCase) List(ctx context.Context) ([]dto.BeerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BeerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBeerResponse(b))
	}
	return items, nil
}

// DeleteByID elimina una cerveza por ID. Verifica la existencia antes de
// borrar: nunca se intenta el borrado sobre un ID desconocido.
func (uc *BeerUseCase) DeleteByID(ctx context.Context, id string) error {
	if _, err := uc.verifyExists(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Increment aumenta el stock de una cerveza. Alcanzar exactamente max es
// válido; superarlo rechaza la operación sin tocar el almacén.
func (uc *BeerUseCase) Increment(ctx context.Context, id string, quantity int) (*dto.BeerResponse, error) {
	lock := uc.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	beer, err := uc.verifyExists(ctx, id)
	if err != nil {
		return nil, err
	}
	after := beer.Quantity + quantity
	if after > beer.Max {
		return nil, fmt.Errorf("cerveza %s: incremento de %d supera el máximo %d: %w",
			id, quantity, beer.Max, domain.ErrStockExceeded)
	}
	beer.Quantity = after
	beer.UpdatedAt = time.Now()
	saved, err := uc.repo.Save(ctx, beer)
	if err != nil {
		return nil, err
	}
	return toBeerResponse(saved), nil
}

// Decrement reduce el stock de una cerveza. Rechaza todo ajuste que dejaría
// el stock por debajo de cero, sin tocar el almacén.
func (uc *BeerUseCase) Decrement(ctx context.Context, id string, quantity int) (*dto.BeerResponse, error) {
	lock := uc.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	beer, err := uc.verifyExists(ctx, id)
	if err != nil {
		return nil, err
	}
	after := beer.Quantity - quantity
	if after < 0 {
		return nil, fmt.Errorf("cerveza %s: decremento de %d deja el stock en negativo: %w",
			id, quantity, domain.ErrStockExceeded)
	}
	beer.Quantity = after
	beer.UpdatedAt = time.Now()
	saved, err := uc.repo.Save(ctx, beer)
	if err != nil {
		return nil, err
	}
	return toBeerResponse(saved), nil
}

// verifyExists comprueba que el ID exista y devuelve la cerveza.
func (uc *BeerUseCase) verifyExists(ctx context.Context, id string) (*entity.Beer, error) {
	beer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if beer == nil {
		return nil, fmt.Errorf("cerveza %s: %w", id, domain.ErrBeerNotFound)
	}
	return beer, nil
}

// lockFor devuelve el mutex asociado al id, creándolo si es la primera vez.
func (uc *BeerUseCase) lockFor(id string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	lock, ok := uc.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[id] = lock
	}
	return lock
}

// toBeerResponse mapeo puro entidad -> DTO, sin estado compartido.
func toBeerResponse(b *entity.Beer) *dto.BeerResponse {
	if b == nil {
		return nil
	}
	return &dto.BeerResponse{
		ID:        b.ID,
		Name:      b.Name,
		Brand:     b.Brand,
		Type:      b.Type.String(),
		TypeLabel: b.Type.Label(),
		Max:       b.Max,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
