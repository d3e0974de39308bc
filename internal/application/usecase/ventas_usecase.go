package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

// TicketPDFGenerator genera el comprobante en PDF de una venta.
type TicketPDFGenerator interface {
	GenerarTicketVenta(ctx context.Context, venta *entity.Venta) ([]byte, error)
}

// VentasUseCase registra ventas descontando stock dentro de una transacción.
// Eliminar una venta devuelve el stock; actualizar ajusta la diferencia.
type VentasUseCase struct {
	tx     TxRunner
	ventas repository.VentaRepository
	pdf    TicketPDFGenerator
}

// NewVentasUseCase construye el caso de uso.
func NewVentasUseCase(tx TxRunner, ventas repository.VentaRepository, pdf TicketPDFGenerator) *VentasUseCase {
	return &VentasUseCase{tx: tx, ventas: ventas, pdf: pdf}
}

// TicketVenta genera el comprobante PDF de una venta existente.
// Devuelve ErrNotFound si la venta no existe.
func (uc *VentasUseCase) TicketVenta(ctx context.Context, id string) ([]byte, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerarTicketVenta(ctx, venta)
}

// Listar devuelve todas las ventas registradas.
func (uc *VentasUseCase) Listar() ([]dto.VentaResponse, error) {
	list, err := uc.ventas.List()
	if err != nil {
		return nil, err
	}
	return toVentaResponses(list), nil
}

// ListarHoy devuelve las ventas del día calendario actual (zona local).
func (uc *VentasUseCase) ListarHoy() ([]dto.VentaResponse, error) {
	inicio, fin := rangoHoy(time.Now())
	list, err := uc.ventas.ListBetween(inicio, fin)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(list), nil
}

// ObtenerPorID devuelve una venta o nil si no existe.
func (uc *VentasUseCase) ObtenerPorID(id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	resp := toVentaResponse(venta)
	return &resp, nil
}

// Registrar crea una venta y descuenta el stock del producto en la misma
// transacción. Si el stock no alcanza, nada se persiste.
func (uc *VentasUseCase) Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var creada *entity.Venta
	err := uc.tx.RunInTx(ctx, func(repos TxRepos) error {
		producto, err := repos.Productos.GetByID(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductoNoEncontrado
		}
		if err := repos.Productos.IncrementarCantidad(producto.ID, -in.Cantidad); err != nil {
			return err
		}

		precioUnitario := producto.Precio
		if in.PrecioUnitario != nil {
			precioUnitario = *in.PrecioUnitario
		}
		// Sin costo explícito se asume el precio vigente: la ganancia queda en cero
		// hasta que se registre el costo real.
		costoUnitario := producto.Precio
		if in.CostoUnitario != nil {
			costoUnitario = *in.CostoUnitario
		}
		fechaVenta := time.Now()
		if in.FechaVenta != nil {
			fechaVenta = *in.FechaVenta
		}

		venta := &entity.Venta{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       in.Cantidad,
			PrecioUnitario: precioUnitario,
			CostoUnitario:  costoUnitario,
			Cliente:        in.Cliente,
			MetodoPago:     in.MetodoPago,
			FechaVenta:     fechaVenta,
			Observaciones:  in.Observaciones,
		}
		venta.PrecioTotal = venta.CalcularPrecioTotal()
		venta.Ganancia = venta.CalcularGanancia()
		if err := repos.Ventas.Create(venta); err != nil {
			return err
		}
		creada = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toVentaResponse(creada)
	return &resp, nil
}

// Actualizar modifica una venta existente. Si cambia el producto o la cantidad,
// el stock se reajusta: se devuelve lo descontado y se descuenta lo nuevo.
func (uc *VentasUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var actualizada *entity.Venta
	err := uc.tx.RunInTx(ctx, func(repos TxRepos) error {
		venta, err := repos.Ventas.GetByID(id)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}

		if in.ProductoID != venta.ProductoID || in.Cantidad != venta.Cantidad {
			// Devolver el stock de la venta original antes de descontar el nuevo.
			if err := repos.Productos.IncrementarCantidad(venta.ProductoID, venta.Cantidad); err != nil {
				return err
			}
			producto, err := repos.Productos.GetByID(in.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrProductoNoEncontrado
			}
			if err := repos.Productos.IncrementarCantidad(producto.ID, -in.Cantidad); err != nil {
				return err
			}
			venta.ProductoID = producto.ID
			venta.NombreProducto = producto.Nombre
			venta.Cantidad = in.Cantidad
		}

		if in.PrecioUnitario != nil {
			venta.PrecioUnitario = *in.PrecioUnitario
		}
		if in.CostoUnitario != nil {
			venta.CostoUnitario = *in.CostoUnitario
		}
		venta.Cliente = in.Cliente
		venta.MetodoPago = in.MetodoPago
		if in.FechaVenta != nil {
			venta.FechaVenta = *in.FechaVenta
		}
		venta.Observaciones = in.Observaciones
		venta.PrecioTotal = venta.CalcularPrecioTotal()
		venta.Ganancia = venta.CalcularGanancia()

		if err := repos.Ventas.Update(venta); err != nil {
			return err
		}
		actualizada = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toVentaResponse(actualizada)
	return &resp, nil
}

// Eliminar borra una venta y devuelve su cantidad al stock del producto.
func (uc *VentasUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.tx.RunInTx(ctx, func(repos TxRepos) error {
		venta, err := repos.Ventas.GetByID(id)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		producto, err := repos.Productos.GetByID(venta.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return fmt.Errorf("restaurar stock de venta %s: %w", id, domain.ErrProductoNoEncontrado)
		}
		if err := repos.Productos.IncrementarCantidad(producto.ID, venta.Cantidad); err != nil {
			return err
		}
		return repos.Ventas.Delete(id)
	})
}

// rangoHoy devuelve los límites [00:00:00, 23:59:59.999999999] del día de t.
func rangoHoy(t time.Time) (time.Time, time.Time) {
	inicio := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	fin := inicio.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return inicio, fin
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:             v.ID,
		ProductoID:     v.ProductoID,
		NombreProducto: v.NombreProducto,
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		PrecioTotal:    v.PrecioTotal,
		CostoUnitario:  v.CostoUnitario,
		Ganancia:       v.Ganancia,
		Cliente:        v.Cliente,
		MetodoPago:     v.MetodoPago,
		FechaVenta:     v.FechaVenta,
		Observaciones:  v.Observaciones,
	}
}

func toVentaResponses(list []*entity.Venta) []dto.VentaResponse {
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toVentaResponse(v))
	}
	return items
}
