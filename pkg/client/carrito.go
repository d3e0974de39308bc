package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// Estados del carrito. Fallida conserva las líneas pendientes para poder
// reanudar el envío.
type EstadoCarrito string

const (
	EstadoVacio      EstadoCarrito = "VACIO"
	EstadoArmando    EstadoCarrito = "ARMANDO"
	EstadoEnviando   EstadoCarrito = "ENVIANDO"
	EstadoCompletada EstadoCarrito = "COMPLETADA"
	EstadoFallida    EstadoCarrito = "FALLIDA"
)

var (
	// ErrCarritoVacio enviar sin líneas.
	ErrCarritoVacio = errors.New("el carrito no tiene líneas")
	// ErrCarritoEnviando mutación u otro envío mientras hay uno en curso.
	ErrCarritoEnviando = errors.New("el carrito ya se está enviando")
	// ErrStockInsuficiente la cantidad pedida supera el stock conocido.
	// Validación local contra el snapshot tomado al agregar la línea.
	ErrStockInsuficiente = errors.New("cantidad supera el stock disponible")
)

// LineaCarrito una línea de la venta en construcción. El stock es un
// snapshot del producto al momento de agregar la línea: el carrito no
// revalida contra el servidor entre líneas.
type LineaCarrito struct {
	ProductoID     string
	NombreProducto string
	Cantidad       int64
	PrecioUnitario decimal.Decimal

	stockDisponible int64
}

// Subtotal cantidad × precio unitario.
func (l LineaCarrito) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(l.Cantidad))
}

// Ticket es el modelo de recibo que produce un envío exitoso.
type Ticket struct {
	Fecha      time.Time
	Cliente    string
	MetodoPago string
	Lineas     []LineaCarrito
	Total      decimal.Decimal
	VentaIDs   []string
}

// ErrorEnvioParcial una línea falló después de que otras quedaron
// registradas en el servidor. No hay rollback compensatorio: las ventas
// confirmadas quedan, y Reanudar reintenta solo las pendientes.
type ErrorEnvioParcial struct {
	ProductoFallido string
	Confirmadas     []dto.VentaResponse
	Causa           error
}

func (e *ErrorEnvioParcial) Error() string {
	return fmt.Sprintf("envío parcial: falló %q con %d línea(s) ya confirmada(s): %v",
		e.ProductoFallido, len(e.Confirmadas), e.Causa)
}

func (e *ErrorEnvioParcial) Unwrap() error { return e.Causa }

// Carrito arma una venta de varias líneas y la envía una línea a la vez.
// No es seguro para uso concurrente: un carrito pertenece a un flujo de
// caja a la vez.
type Carrito struct {
	c *Client

	estado      EstadoCarrito
	lineas      []LineaCarrito
	confirmadas []dto.VentaResponse
	cliente     string
	metodoPago  string
}

// NewCarrito construye un carrito vacío sobre el cliente.
func NewCarrito(c *Client) *Carrito {
	return &Carrito{c: c, estado: EstadoVacio}
}

// Estado el estado actual del carrito.
func (ca *Carrito) Estado() EstadoCarrito { return ca.estado }

// Lineas copia de las líneas pendientes de envío.
func (ca *Carrito) Lineas() []LineaCarrito {
	out := make([]LineaCarrito, len(ca.lineas))
	copy(out, ca.lineas)
	return out
}

// Confirmadas copia de las ventas ya registradas por un envío parcial.
func (ca *Carrito) Confirmadas() []dto.VentaResponse {
	out := make([]dto.VentaResponse, len(ca.confirmadas))
	copy(out, ca.confirmadas)
	return out
}

// Total suma de los subtotales actuales. Se recalcula en cada llamada.
func (ca *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ca.lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}

// AgregarLinea suma el producto al carrito. Si ya tiene línea, incrementa
// su cantidad; la cantidad resultante se valida contra el stock conocido
// del producto y un exceso deja el carrito sin cambios.
func (ca *Carrito) AgregarLinea(producto dto.ProductoResponse, cantidad int64) error {
	if err := ca.mutable(); err != nil {
		return err
	}
	if cantidad < 1 {
		cantidad = 1
	}
	for i := range ca.lineas {
		if ca.lineas[i].ProductoID != producto.ID {
			continue
		}
		nueva := ca.lineas[i].Cantidad + cantidad
		if nueva > ca.lineas[i].stockDisponible {
			return fmt.Errorf("%w: %s (stock %d)", ErrStockInsuficiente,
				ca.lineas[i].NombreProducto, ca.lineas[i].stockDisponible)
		}
		ca.lineas[i].Cantidad = nueva
		ca.estado = EstadoArmando
		return nil
	}
	if cantidad > producto.Cantidad {
		return fmt.Errorf("%w: %s (stock %d)", ErrStockInsuficiente, producto.Nombre, producto.Cantidad)
	}
	ca.lineas = append(ca.lineas, LineaCarrito{
		ProductoID:      producto.ID,
		NombreProducto:  producto.Nombre,
		Cantidad:        cantidad,
		PrecioUnitario:  producto.Precio,
		stockDisponible: producto.Cantidad,
	})
	ca.estado = EstadoArmando
	return nil
}

// FijarCantidad fija la cantidad de una línea. Menos de 1 equivale a
// quitarla; más que el stock conocido se rechaza sin tocar el carrito.
func (ca *Carrito) FijarCantidad(productoID string, cantidad int64) error {
	if err := ca.mutable(); err != nil {
		return err
	}
	if cantidad < 1 {
		ca.QuitarLinea(productoID)
		return nil
	}
	for i := range ca.lineas {
		if ca.lineas[i].ProductoID != productoID {
			continue
		}
		if cantidad > ca.lineas[i].stockDisponible {
			return fmt.Errorf("%w: %s (stock %d)", ErrStockInsuficiente,
				ca.lineas[i].NombreProducto, ca.lineas[i].stockDisponible)
		}
		ca.lineas[i].Cantidad = cantidad
		return nil
	}
	return nil
}

// QuitarLinea elimina la línea del producto. Si era la última, el carrito
// vuelve a Vacío.
func (ca *Carrito) QuitarLinea(productoID string) {
	if ca.mutable() != nil {
		return
	}
	for i := range ca.lineas {
		if ca.lineas[i].ProductoID == productoID {
			ca.lineas = append(ca.lineas[:i], ca.lineas[i+1:]...)
			break
		}
	}
	if len(ca.lineas) == 0 && ca.estado == EstadoArmando {
		ca.estado = EstadoVacio
	}
}

// Enviar registra una venta por línea, en orden y de a una. Al primer
// fallo se detiene y devuelve *ErrorEnvioParcial con las ventas que sí
// quedaron confirmadas; Reanudar continúa con las pendientes. Con todo
// confirmado publica EventoInventarioActualizado una sola vez y devuelve
// el ticket.
func (ca *Carrito) Enviar(ctx context.Context, cliente, metodoPago string) (*Ticket, error) {
	if ca.estado == EstadoEnviando {
		return nil, ErrCarritoEnviando
	}
	if len(ca.lineas) == 0 {
		return nil, ErrCarritoVacio
	}
	ca.cliente, ca.metodoPago = cliente, metodoPago
	return ca.enviarPendientes(ctx)
}

// Reanudar reintenta las líneas que quedaron pendientes tras un envío
// parcial, con el cliente y método de pago del envío original.
func (ca *Carrito) Reanudar(ctx context.Context) (*Ticket, error) {
	if ca.estado != EstadoFallida {
		return nil, fmt.Errorf("no hay envío fallido que reanudar (estado %s)", ca.estado)
	}
	if len(ca.lineas) == 0 {
		return nil, ErrCarritoVacio
	}
	return ca.enviarPendientes(ctx)
}

func (ca *Carrito) enviarPendientes(ctx context.Context) (*Ticket, error) {
	ca.estado = EstadoEnviando

	for len(ca.lineas) > 0 {
		linea := ca.lineas[0]
		venta, err := ca.crearVenta(ctx, linea)
		if err != nil {
			ca.estado = EstadoFallida
			return nil, &ErrorEnvioParcial{
				ProductoFallido: linea.NombreProducto,
				Confirmadas:     ca.Confirmadas(),
				Causa:           err,
			}
		}
		ca.confirmadas = append(ca.confirmadas, *venta)
		ca.lineas = ca.lineas[1:]
	}

	// El ticket se arma desde las ventas confirmadas para que un Reanudar
	// exitoso incluya también las líneas del envío anterior.
	ticket := &Ticket{
		Fecha:      time.Now(),
		Cliente:    ca.cliente,
		MetodoPago: ca.metodoPago,
	}
	for _, v := range ca.confirmadas {
		linea := LineaCarrito{
			ProductoID:     v.ProductoID,
			NombreProducto: v.NombreProducto,
			Cantidad:       v.Cantidad,
			PrecioUnitario: v.PrecioUnitario,
		}
		ticket.Lineas = append(ticket.Lineas, linea)
		ticket.Total = ticket.Total.Add(linea.Subtotal())
		ticket.VentaIDs = append(ticket.VentaIDs, v.ID)
	}

	ca.estado = EstadoCompletada
	ca.confirmadas = nil
	ca.c.bus.Publicar(EventoInventarioActualizado, ticket)
	return ticket, nil
}

// crearVenta registra una línea directamente contra la API. No pasa por
// el servicio Ventas para no publicar un evento de inventario por línea:
// el carrito notifica una sola vez al completar.
func (ca *Carrito) crearVenta(ctx context.Context, linea LineaCarrito) (*dto.VentaResponse, error) {
	precio := linea.PrecioUnitario
	in := dto.RegistrarVentaRequest{
		ProductoID:     linea.ProductoID,
		Cantidad:       linea.Cantidad,
		PrecioUnitario: &precio,
		Cliente:        ca.cliente,
		MetodoPago:     ca.metodoPago,
	}
	var out dto.VentaResponse
	if err := ca.c.do(ctx, http.MethodPost, "/api/ventas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ca *Carrito) mutable() error {
	if ca.estado == EstadoEnviando {
		return ErrCarritoEnviando
	}
	return nil
}
