package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cervezas-api/internal/application/dto"
	"github.com/jhoicas/cervezas-api/internal/application/usecase"
	"github.com/jhoicas/cervezas-api/internal/domain"
	"github.com/jhoicas/cervezas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de BeerRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeBeerRepo implementación en memoria del puerto, con contadores de
// escritura para verificar que las operaciones rechazadas no tocan el almacén.
type fakeBeerRepo struct {
	beers   map[string]*entity.Beer // por ID
	saves   int
	deletes int
}

func newFakeBeerRepo() *fakeBeerRepo {
	return &fakeBeerRepo{beers: make(map[string]*entity.Beer)}
}

func (f *fakeBeerRepo) GetByName(_ context.Context, name string) (*entity.Beer, error) {
	for _, b := range f.beers {
		if b.Name == name {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBeerRepo) GetByID(_ context.Context, id string) (*entity.Beer, error) {
	b, ok := f.beers[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBeerRepo) List(_ context.Context) ([]*entity.Beer, error) {
	var list []*entity.Beer
	for _, b := range f.beers {
		cp := *b
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeBeerRepo) Save(_ context.Context, beer *entity.Beer) (*entity.Beer, error) {
	f.saves++
	if beer.ID == "" {
		beer.ID = uuid.New().String()
	}
	cp := *beer
	f.beers[beer.ID] = &cp
	return beer, nil
}

func (f *fakeBeerRepo) Delete(_ context.Context, id string) error {
	f.deletes++
	delete(f.beers, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// brahmaRequest petición de creación por defecto para los tests.
func brahmaRequest() dto.CreateBeerRequest {
	return dto.CreateBeerRequest{
		Name:     "Brahma",
		Brand:    "Ambev",
		Type:     "LAGER",
		Max:      50,
		Quantity: 10,
	}
}

func setup(t *testing.T) (*usecase.BeerUseCase, *fakeBeerRepo) {
	t.Helper()
	repo := newFakeBeerRepo()
	return usecase.NewBeerUseCase(repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistraCervezaConIDAsignado(t *testing.T) {
	uc, repo := setup(t)
	in := brahmaRequest()

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el almacén debe asignar el ID al insertar")
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Brand, out.Brand)
	assert.Equal(t, "LAGER", out.Type)
	assert.Equal(t, "Lager", out.TypeLabel)
	assert.Equal(t, in.Max, out.Max)
	assert.Equal(t, in.Quantity, out.Quantity)
	assert.Equal(t, 1, repo.saves)
}

func TestCreate_NombreDuplicadoFalla(t *testing.T) {
	uc, repo := setup(t)
	_, err := uc.Create(context.Background(), brahmaRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), brahmaRequest())
	assert.ErrorIs(t, err, domain.ErrBeerAlreadyRegistered)
	assert.Equal(t, 1, repo.saves, "la creación rechazada no debe escribir en el almacén")
}

func TestCreate_TipoDesconocidoFalla(t *testing.T) {
	uc, repo := setup(t)
	in := brahmaRequest()
	in.Type = "PILSNER"

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, repo.saves)
}

func TestCreate_RoundTripConGetByName(t *testing.T) {
	uc, _ := setup(t)
	in := brahmaRequest()

	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	found, err := uc.GetByName(context.Background(), in.Name)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByName / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByName_NoExisteRetornaNotFound(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.GetByName(context.Background(), "Quilmes")
	assert.ErrorIs(t, err, domain.ErrBeerNotFound)
}

func TestList_InventarioVacioRetornaListaVacia(t *testing.T) {
	uc, _ := setup(t)
	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "inventario vacío produce lista vacía, no nil")
}

func TestList_ContieneExactamenteLasRegistradas(t *testing.T) {
	uc, _ := setup(t)
	a := brahmaRequest()
	b := brahmaRequest()
	b.Name = "Heineken"
	b.Brand = "Heineken"

	_, err := uc.Create(context.Background(), a)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), b)
	require.NoError(t, err)

	out, err := uc.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(out))
	for _, item := range out {
		names = append(names, item.Name)
	}
	assert.ElementsMatch(t, []string{"Brahma", "Heineken"}, names)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteByID
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteByID_EliminaCervezaExistente(t *testing.T) {
	uc, repo := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteByID(context.Background(), created.ID))
	assert.Equal(t, 1, repo.deletes)

	_, err = uc.GetByName(context.Background(), created.Name)
	assert.ErrorIs(t, err, domain.ErrBeerNotFound)
}

func TestDeleteByID_IDDesconocidoNoIntentaBorrar(t *testing.T) {
	uc, repo := setup(t)
	err := uc.DeleteByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrBeerNotFound)
	assert.Equal(t, 0, repo.deletes, "el borrado nunca se intenta sobre un ID desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Increment
// ──────────────────────────────────────────────────────────────────────────────

func TestIncrement_SumaDentroDelMaximo(t *testing.T) {
	uc, _ := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest()) // max 50, qty 10
	require.NoError(t, err)

	out, err := uc.Increment(context.Background(), created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Quantity)

	// 20 + 45 = 65 > 50: rechazado y el stock queda intacto
	_, err = uc.Increment(context.Background(), created.ID, 45)
	assert.ErrorIs(t, err, domain.ErrStockExceeded)

	found, err := uc.GetByName(context.Background(), created.Name)
	require.NoError(t, err)
	assert.Equal(t, 20, found.Quantity)
}

func TestIncrement_AlcanzarExactamenteElMaximoEsValido(t *testing.T) {
	uc, _ := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest()) // max 50, qty 10
	require.NoError(t, err)

	out, err := uc.Increment(context.Background(), created.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Quantity)

	_, err = uc.Increment(context.Background(), created.ID, 1)
	assert.ErrorIs(t, err, domain.ErrStockExceeded)
}

func TestIncrement_IDDesconocidoNoMutaElAlmacen(t *testing.T) {
	uc, repo := setup(t)
	_, err := uc.Increment(context.Background(), uuid.New().String(), 5)
	assert.ErrorIs(t, err, domain.ErrBeerNotFound)
	assert.Equal(t, 0, repo.saves)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decrement
// ──────────────────────────────────────────────────────────────────────────────

func TestDecrement_RestaDentroDelPiso(t *testing.T) {
	uc, _ := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest()) // qty 10
	require.NoError(t, err)

	out, err := uc.Decrement(context.Background(), created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)
}

func TestDecrement_HastaCeroEsValido(t *testing.T) {
	uc, _ := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest()) // qty 10
	require.NoError(t, err)

	out, err := uc.Decrement(context.Background(), created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
}

func TestDecrement_PorDebajoDeCeroRechazado(t *testing.T) {
	uc, _ := setup(t)
	created, err := uc.Create(context.Background(), brahmaRequest()) // qty 10
	require.NoError(t, err)

	_, err = uc.Decrement(context.Background(), created.ID, 11)
	assert.ErrorIs(t, err, domain.ErrStockExceeded)

	found, err := uc.GetByName(context.Background(), created.Name)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Quantity, "el rechazo no debe mutar el stock")
}

func TestDecrement_IDDesconocidoNoMutaElAlmacen(t *testing.T) {
	uc, repo := setup(t)
	_, err := uc.Decrement(context.Background(), uuid.New().String(), 5)
	assert.ErrorIs(t, err, domain.ErrBeerNotFound)
	assert.Equal(t, 0, repo.saves)
}
