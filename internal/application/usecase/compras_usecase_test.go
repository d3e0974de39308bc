package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCompras(productos ...*fakeProductoRepo) (*ComprasUseCase, *fakeProductoRepo, *fakeCompraRepo) {
	var productosRepo *fakeProductoRepo
	if len(productos) > 0 {
		productosRepo = productos[0]
	} else {
		productosRepo = newFakeProductoRepo()
	}
	comprasRepo := newFakeCompraRepo()
	tx := &fakeTxRunner{repos: TxRepos{Productos: productosRepo, Ventas: newFakeVentaRepo(), Compras: comprasRepo}}
	return NewComprasUseCase(tx, comprasRepo), productosRepo, comprasRepo
}

func TestRegistrarCompraIncrementaStockYPrecio(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, _ := setupCompras(productosRepo)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		ProductoID:     "p1",
		NombreProducto: "Café Molido",
		Cantidad:       10,
		CostoUnitario:  decimal.RequireFromString("4200"),
		Proveedor:      "Distribuidora Norte",
	})
	require.NoError(t, err)
	assert.True(t, resp.CostoTotal.Equal(decimal.RequireFromString("42000")))

	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(15), producto.Cantidad)
	// El precio del producto se refresca con el costo de la compra.
	assert.True(t, producto.Precio.Equal(decimal.RequireFromString("4200")))
}

func TestRegistrarCompraPersisteElCostoTotal(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, comprasRepo := setupCompras(productosRepo)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		ProductoID:     "p1",
		NombreProducto: "Café Molido",
		Cantidad:       10,
		CostoUnitario:  decimal.RequireFromString("4200"),
	})
	require.NoError(t, err)

	// El repositorio guarda el total calculado, no cero.
	guardada, err := comprasRepo.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.True(t, guardada.CostoTotal.Equal(decimal.RequireFromString("42000")),
		"costo_total persistido debe ser 10 × 4200, fue %s", guardada.CostoTotal)
}

func TestRegistrarCompraResuelvePorNombreSinAcentos(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, _ := setupCompras(productosRepo)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		NombreProducto: "CAFE molido",
		Cantidad:       2,
		CostoUnitario:  decimal.RequireFromString("4000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.ProductoID)
	assert.Equal(t, "Café Molido", resp.NombreProducto)

	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(7), producto.Cantidad)
}

func TestRegistrarCompraCreaProductoNuevo(t *testing.T) {
	uc, productosRepo, _ := setupCompras()

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		NombreProducto: "Azúcar",
		Cantidad:       20,
		CostoUnitario:  decimal.RequireFromString("1500"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ProductoID)

	producto, _ := productosRepo.GetByID(resp.ProductoID)
	require.NotNil(t, producto)
	assert.Equal(t, "Azúcar", producto.Nombre)
	assert.Equal(t, TipoProductoCompra, producto.Tipo)
	assert.Equal(t, int64(20), producto.Cantidad)
	assert.True(t, producto.Precio.Equal(decimal.RequireFromString("1500")))
}

func TestRegistrarCompraSinCostoNoTocaPrecio(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, _ := setupCompras(productosRepo)

	_, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		ProductoID:     "p1",
		NombreProducto: "Café Molido",
		Cantidad:       3,
	})
	require.NoError(t, err)

	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(8), producto.Cantidad)
	assert.True(t, producto.Precio.Equal(decimal.RequireFromString("5000")))
}

func TestActualizarCompraSoloDatosAdministrativos(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, _ := setupCompras(productosRepo)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		ProductoID:     "p1",
		NombreProducto: "Café Molido",
		Cantidad:       3,
		CostoUnitario:  decimal.RequireFromString("4000"),
	})
	require.NoError(t, err)

	actualizada, err := uc.Actualizar(resp.ID, dto.ActualizarCompraRequest{
		Proveedor:     "Proveedor Sur",
		NumeroFactura: "F-0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Sur", actualizada.Proveedor)
	assert.Equal(t, "F-0042", actualizada.NumeroFactura)
	assert.True(t, actualizada.CostoTotal.Equal(resp.CostoTotal))

	// El stock no cambia al editar datos administrativos.
	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(8), producto.Cantidad)
}

func TestEliminarCompraNoRevierteStock(t *testing.T) {
	productosRepo := newFakeProductoRepo(productoDePrueba("p1", 5, "5000"))
	uc, _, comprasRepo := setupCompras(productosRepo)

	resp, err := uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		ProductoID:     "p1",
		NombreProducto: "Café Molido",
		Cantidad:       3,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(resp.ID))

	compras, _ := comprasRepo.List()
	assert.Empty(t, compras)
	producto, _ := productosRepo.GetByID("p1")
	assert.Equal(t, int64(8), producto.Cantidad)
}

func TestEliminarCompraInexistente(t *testing.T) {
	uc, _, _ := setupCompras()
	assert.ErrorIs(t, uc.Eliminar("no-existe"), domain.ErrNotFound)
}
