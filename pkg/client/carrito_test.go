package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// backendVentas simula POST /api/ventas: registra cada venta y permite
// marcar productos que deben fallar.
type backendVentas struct {
	registradas []dto.RegistrarVentaRequest
	fallan      map[string]bool
	nombres     map[string]string
}

func (b *backendVentas) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/ventas" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var in dto.RegistrarVentaRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if b.fallan[in.ProductoID] {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Stock insuficiente"})
			return
		}
		b.registradas = append(b.registradas, in)
		precio := decimal.Zero
		if in.PrecioUnitario != nil {
			precio = *in.PrecioUnitario
		}
		out := dto.VentaResponse{
			ID:             fmt.Sprintf("v-%d", len(b.registradas)),
			ProductoID:     in.ProductoID,
			NombreProducto: b.nombres[in.ProductoID],
			Cantidad:       in.Cantidad,
			PrecioUnitario: precio,
			PrecioTotal:    precio.Mul(decimal.NewFromInt(in.Cantidad)),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(out)
	})
}

func carritoDePrueba(t *testing.T, backend *backendVentas) *Carrito {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return NewCarrito(NewClient(srv.URL, nil))
}

func TestCarritoAgregarFusionaMismoProducto(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	mouse := producto("Mouse", "Tecnología", 10, 25.0)

	require.NoError(t, ca.AgregarLinea(mouse, 2))
	require.NoError(t, ca.AgregarLinea(mouse, 3))

	lineas := ca.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, int64(5), lineas[0].Cantidad)
	assert.Equal(t, EstadoArmando, ca.Estado())
}

func TestCarritoAgregarRechazaExcesoDeStock(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	mouse := producto("Mouse", "Tecnología", 5, 25.0)

	require.NoError(t, ca.AgregarLinea(mouse, 4))
	err := ca.AgregarLinea(mouse, 2)

	require.ErrorIs(t, err, ErrStockInsuficiente)
	assert.Equal(t, int64(4), ca.Lineas()[0].Cantidad, "el carrito queda intacto")
}

func TestCarritoFijarCantidad(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	mouse := producto("Mouse", "Tecnología", 10, 25.0)
	require.NoError(t, ca.AgregarLinea(mouse, 2))

	require.NoError(t, ca.FijarCantidad(mouse.ID, 7))
	assert.Equal(t, int64(7), ca.Lineas()[0].Cantidad)

	err := ca.FijarCantidad(mouse.ID, 11)
	require.ErrorIs(t, err, ErrStockInsuficiente)
	assert.Equal(t, int64(7), ca.Lineas()[0].Cantidad)

	// Cantidad cero equivale a quitar la línea.
	require.NoError(t, ca.FijarCantidad(mouse.ID, 0))
	assert.Empty(t, ca.Lineas())
	assert.Equal(t, EstadoVacio, ca.Estado())
}

func TestCarritoTotalEsLaSumaDeSubtotales(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	require.NoError(t, ca.AgregarLinea(producto("Mouse", "Tecnología", 10, 10.0), 2))
	require.NoError(t, ca.AgregarLinea(producto("Teclado", "Tecnología", 10, 5.0), 3))

	assert.True(t, ca.Total().Equal(decimal.NewFromInt(35)), "2×10 + 3×5 = 35, fue %s", ca.Total())
}

func TestCarritoEnviarVacio(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	_, err := ca.Enviar(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrCarritoVacio)
}

func TestCarritoEnvioCompleto(t *testing.T) {
	mouse := producto("Mouse", "Tecnología", 10, 10.0)
	teclado := producto("Teclado", "Tecnología", 10, 5.0)
	backend := &backendVentas{nombres: map[string]string{mouse.ID: "Mouse", teclado.ID: "Teclado"}}
	ca := carritoDePrueba(t, backend)
	require.NoError(t, ca.AgregarLinea(mouse, 2))
	require.NoError(t, ca.AgregarLinea(teclado, 3))

	eventos := 0
	ca.c.Bus().Suscribir(EventoInventarioActualizado, func(Evento) { eventos++ })

	ticket, err := ca.Enviar(context.Background(), "Ana", "Efectivo")

	require.NoError(t, err)
	assert.Equal(t, EstadoCompletada, ca.Estado())
	assert.Len(t, backend.registradas, 2)
	require.Len(t, ticket.Lineas, 2)
	assert.True(t, ticket.Total.Equal(decimal.NewFromInt(35)))
	assert.Equal(t, []string{"v-1", "v-2"}, ticket.VentaIDs)
	assert.Equal(t, "Ana", ticket.Cliente)
	assert.Equal(t, 1, eventos, "un solo evento de inventario por envío, no uno por línea")
}

func TestCarritoEnvioParcialYReanudar(t *testing.T) {
	mouse := producto("Mouse", "Tecnología", 10, 10.0)
	teclado := producto("Teclado", "Tecnología", 10, 5.0)
	backend := &backendVentas{
		nombres: map[string]string{mouse.ID: "Mouse", teclado.ID: "Teclado"},
		fallan:  map[string]bool{teclado.ID: true},
	}
	ca := carritoDePrueba(t, backend)
	require.NoError(t, ca.AgregarLinea(mouse, 2))
	require.NoError(t, ca.AgregarLinea(teclado, 3))

	_, err := ca.Enviar(context.Background(), "Ana", "Efectivo")

	var parcial *ErrorEnvioParcial
	require.ErrorAs(t, err, &parcial)
	assert.Equal(t, "Teclado", parcial.ProductoFallido)
	require.Len(t, parcial.Confirmadas, 1, "la primera línea quedó registrada en el servidor")
	assert.Equal(t, mouse.ID, parcial.Confirmadas[0].ProductoID)
	assert.Equal(t, EstadoFallida, ca.Estado())
	require.Len(t, ca.Lineas(), 1, "solo la línea fallida sigue pendiente")
	assert.Equal(t, teclado.ID, ca.Lineas()[0].ProductoID)
	assert.Len(t, backend.registradas, 1, "exactamente una venta persistida")

	// El backend se recupera y el envío se reanuda solo con lo pendiente.
	backend.fallan = nil
	ticket, err := ca.Reanudar(context.Background())

	require.NoError(t, err)
	assert.Equal(t, EstadoCompletada, ca.Estado())
	assert.Len(t, backend.registradas, 2)
	require.Len(t, ticket.Lineas, 2, "el ticket incluye las líneas de ambos envíos")
	assert.True(t, ticket.Total.Equal(decimal.NewFromInt(35)))
}

func TestCarritoReanudarSinFalloPrevio(t *testing.T) {
	ca := NewCarrito(NewClient("http://localhost", nil))
	_, err := ca.Reanudar(context.Background())
	assert.Error(t, err)
}
