package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productoDePrueba(id string, cantidad int64, precio string) *entity.Producto {
	now := time.Now()
	return &entity.Producto{
		ID:        id,
		Nombre:    "Café Molido",
		Tipo:      "Alimentos",
		Cantidad:  cantidad,
		Precio:    decimal.RequireFromString(precio),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func setupVentas(productos ...*entity.Producto) (*VentasUseCase, *fakeProductoRepo, *fakeVentaRepo) {
	productosRepo := newFakeProductoRepo(productos...)
	ventasRepo := newFakeVentaRepo()
	tx := &fakeTxRunner{repos: TxRepos{Productos: productosRepo, Ventas: ventasRepo, Compras: newFakeCompraRepo()}}
	return NewVentasUseCase(tx, ventasRepo, fakeTicketGenerator{}), productosRepo, ventasRepo
}

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	uc, productosRepo, _ := setupVentas(productoDePrueba("p1", 10, "5000"))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   3,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Café Molido", resp.NombreProducto)
	assert.True(t, resp.PrecioUnitario.Equal(decimal.RequireFromString("5000")))
	assert.True(t, resp.PrecioTotal.Equal(decimal.RequireFromString("15000")))
	// Sin costo explícito la ganancia queda en cero.
	assert.True(t, resp.Ganancia.IsZero())

	producto, err := productosRepo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), producto.Cantidad)
}

func TestRegistrarVentaPersisteLosTotales(t *testing.T) {
	uc, _, ventasRepo := setupVentas(productoDePrueba("p1", 10, "5000"))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   3,
	})
	require.NoError(t, err)

	// Lo guardado en el repositorio, no solo la respuesta, lleva los totales.
	guardada, err := ventasRepo.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.True(t, guardada.PrecioTotal.Equal(decimal.RequireFromString("15000")),
		"precio_total persistido debe ser 3 × 5000, fue %s", guardada.PrecioTotal)
	assert.True(t, guardada.Ganancia.IsZero())
}

func TestRegistrarVentaConPrecioYCostoExplicitos(t *testing.T) {
	uc, _, _ := setupVentas(productoDePrueba("p1", 10, "5000"))

	precio := decimal.RequireFromString("6000")
	costo := decimal.RequireFromString("3500")
	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID:     "p1",
		Cantidad:       2,
		PrecioUnitario: &precio,
		CostoUnitario:  &costo,
	})
	require.NoError(t, err)

	assert.True(t, resp.PrecioTotal.Equal(decimal.RequireFromString("12000")))
	assert.True(t, resp.Ganancia.Equal(decimal.RequireFromString("5000")))
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	uc, productosRepo, ventasRepo := setupVentas(productoDePrueba("p1", 2, "5000"))

	_, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El stock queda intacto y no se registra la venta.
	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(2), producto.Cantidad)
	ventas, _ := ventasRepo.List()
	assert.Empty(t, ventas)
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	uc, _, _ := setupVentas()

	_, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "no-existe",
		Cantidad:   1,
	})
	assert.ErrorIs(t, err, domain.ErrProductoNoEncontrado)
}

func TestActualizarVentaAjustaStockPorDiferencia(t *testing.T) {
	uc, productosRepo, _ := setupVentas(productoDePrueba("p1", 10, "5000"))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   3,
	})
	require.NoError(t, err)

	// De 3 a 5 unidades: el stock baja de 7 a 5.
	actualizada, err := uc.Actualizar(context.Background(), resp.ID, dto.ActualizarVentaRequest{
		ProductoID: "p1",
		Cantidad:   5,
	})
	require.NoError(t, err)

	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(5), producto.Cantidad)
	// El total se recalcula con la cantidad nueva.
	assert.True(t, actualizada.PrecioTotal.Equal(decimal.RequireFromString("25000")),
		"5 × 5000 = 25000, fue %s", actualizada.PrecioTotal)
}

func TestActualizarVentaCambiaDeProducto(t *testing.T) {
	p2 := productoDePrueba("p2", 4, "8000")
	p2.Nombre = "Té Verde"
	uc, productosRepo, _ := setupVentas(productoDePrueba("p1", 10, "5000"), p2)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   3,
	})
	require.NoError(t, err)

	actualizada, err := uc.Actualizar(context.Background(), resp.ID, dto.ActualizarVentaRequest{
		ProductoID: "p2",
		Cantidad:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Té Verde", actualizada.NombreProducto)

	// p1 recupera sus 3 unidades, p2 pierde 2.
	p1Actual, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(10), p1Actual.Cantidad)
	p2Actual, _ := productosRepo.GetByID("p2")
	assert.Equal(t, int64(2), p2Actual.Cantidad)
}

func TestEliminarVentaRestauraStock(t *testing.T) {
	uc, productosRepo, ventasRepo := setupVentas(productoDePrueba("p1", 10, "5000"))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   4,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), resp.ID))

	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(10), producto.Cantidad)
	ventas, _ := ventasRepo.List()
	assert.Empty(t, ventas)
}

func TestEliminarVentaInexistente(t *testing.T) {
	uc, _, _ := setupVentas()
	err := uc.Eliminar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTicketVenta(t *testing.T) {
	uc, _, _ := setupVentas(productoDePrueba("p1", 10, "5000"))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   1,
	})
	require.NoError(t, err)

	pdf, err := uc.TicketVenta(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = uc.TicketVenta(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListarHoyFiltraPorDiaCalendario(t *testing.T) {
	uc, _, ventasRepo := setupVentas(productoDePrueba("p1", 100, "5000"))

	ayer := time.Now().AddDate(0, 0, -1)
	require.NoError(t, ventasRepo.Create(&entity.Venta{
		ID:         "v-ayer",
		ProductoID: "p1",
		Cantidad:   1,
		FechaVenta: ayer,
	}))

	resp, err := uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		ProductoID: "p1",
		Cantidad:   1,
	})
	require.NoError(t, err)

	hoy, err := uc.ListarHoy()
	require.NoError(t, err)
	require.Len(t, hoy, 1)
	assert.Equal(t, resp.ID, hoy[0].ID)
}
