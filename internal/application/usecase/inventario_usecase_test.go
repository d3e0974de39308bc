package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto(t *testing.T) {
	uc := NewInventarioUseCase(newFakeProductoRepo())

	resp, err := uc.Crear(dto.ProductoFormRequest{
		Nombre:   "Café Molido",
		Tipo:     "Alimentos",
		Cantidad: 12,
		Precio:   decimal.RequireFromString("5000"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("60000")))
}

func TestCrearProductoInvalido(t *testing.T) {
	uc := NewInventarioUseCase(newFakeProductoRepo())

	_, err := uc.Crear(dto.ProductoFormRequest{Tipo: "Alimentos"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Crear(dto.ProductoFormRequest{
		Nombre: "Café",
		Tipo:   "Alimentos",
		Precio: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarProducto(t *testing.T) {
	repo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc := NewInventarioUseCase(repo)

	resp, err := uc.Actualizar("p1", dto.ProductoFormRequest{
		Nombre:   "Café Premium",
		Tipo:     "Alimentos",
		Cantidad: 8,
		Precio:   decimal.RequireFromString("7500"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Café Premium", resp.Nombre)
	assert.Equal(t, int64(8), resp.Cantidad)
}

func TestActualizarProductoInexistente(t *testing.T) {
	uc := NewInventarioUseCase(newFakeProductoRepo())

	resp, err := uc.Actualizar("no-existe", dto.ProductoFormRequest{
		Nombre:   "Café",
		Tipo:     "Alimentos",
		Cantidad: 1,
		Precio:   decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestEliminarProducto(t *testing.T) {
	repo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc := NewInventarioUseCase(repo)

	require.NoError(t, uc.Eliminar("p1"))
	assert.ErrorIs(t, uc.Eliminar("p1"), domain.ErrNotFound)
}
