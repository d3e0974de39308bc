package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

// TipoProductoCompra es el tipo asignado a productos creados automáticamente
// al registrar una compra de un producto que aún no existe en el inventario.
const TipoProductoCompra = "Compra"

// ComprasUseCase registra compras sumando stock. El producto se resuelve por
// ID, por nombre (sin mayúsculas ni acentos) o se crea si no existe.
type ComprasUseCase struct {
	tx      TxRunner
	compras repository.CompraRepository
}

// NewComprasUseCase construye el caso de uso.
func NewComprasUseCase(tx TxRunner, compras repository.CompraRepository) *ComprasUseCase {
	return &ComprasUseCase{tx: tx, compras: compras}
}

// Listar devuelve todas las compras registradas.
func (uc *ComprasUseCase) Listar() ([]dto.CompraResponse, error) {
	list, err := uc.compras.List()
	if err != nil {
		return nil, err
	}
	return toCompraResponses(list), nil
}

// ObtenerPorID devuelve una compra o nil si no existe.
func (uc *ComprasUseCase) ObtenerPorID(id string) (*dto.CompraResponse, error) {
	compra, err := uc.compras.GetByID(id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, nil
	}
	resp := toCompraResponse(compra)
	return &resp, nil
}

// Registrar crea una compra e incrementa el stock del producto en la misma
// transacción. Con costo unitario positivo también refresca el precio del
// producto para que las ventas siguientes usen el costo más reciente.
func (uc *ComprasUseCase) Registrar(ctx context.Context, in dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.CostoUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var creada *entity.Compra
	err := uc.tx.RunInTx(ctx, func(repos TxRepos) error {
		producto, err := resolverProducto(repos.Productos, in)
		if err != nil {
			return err
		}

		if producto == nil {
			now := time.Now()
			producto = &entity.Producto{
				ID:        uuid.New().String(),
				Nombre:    in.NombreProducto,
				Tipo:      TipoProductoCompra,
				Cantidad:  in.Cantidad,
				Precio:    in.CostoUnitario,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repos.Productos.Create(producto); err != nil {
				return err
			}
		} else {
			if err := repos.Productos.IncrementarCantidad(producto.ID, in.Cantidad); err != nil {
				return err
			}
			if in.CostoUnitario.IsPositive() {
				if err := repos.Productos.ActualizarPrecio(producto.ID, in.CostoUnitario); err != nil {
					return err
				}
			}
		}

		fechaCompra := time.Now()
		if in.FechaCompra != nil {
			fechaCompra = *in.FechaCompra
		}
		compra := &entity.Compra{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       in.Cantidad,
			CostoUnitario:  in.CostoUnitario,
			Proveedor:      in.Proveedor,
			MetodoPago:     in.MetodoPago,
			NumeroFactura:  in.NumeroFactura,
			FechaCompra:    fechaCompra,
			Observaciones:  in.Observaciones,
		}
		compra.CostoTotal = compra.CalcularCostoTotal()
		if err := repos.Compras.Create(compra); err != nil {
			return err
		}
		creada = compra
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toCompraResponse(creada)
	return &resp, nil
}

// Actualizar edita los datos administrativos de una compra (proveedor, pago,
// factura, fecha, notas). No toca stock ni montos.
func (uc *ComprasUseCase) Actualizar(id string, in dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	compra, err := uc.compras.GetByID(id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, nil
	}
	compra.Proveedor = in.Proveedor
	compra.MetodoPago = in.MetodoPago
	compra.NumeroFactura = in.NumeroFactura
	if in.FechaCompra != nil {
		compra.FechaCompra = *in.FechaCompra
	}
	compra.Observaciones = in.Observaciones
	if err := uc.compras.Update(compra); err != nil {
		return nil, err
	}
	resp := toCompraResponse(compra)
	return &resp, nil
}

// Eliminar borra una compra sin revertir el stock: la mercancía recibida
// sigue en bodega aunque el registro administrativo se elimine.
func (uc *ComprasUseCase) Eliminar(id string) error {
	compra, err := uc.compras.GetByID(id)
	if err != nil {
		return err
	}
	if compra == nil {
		return domain.ErrNotFound
	}
	return uc.compras.Delete(id)
}

// resolverProducto busca por ID y luego por nombre normalizado. Devuelve nil
// si el producto no existe todavía.
func resolverProducto(productos repository.ProductoRepository, in dto.RegistrarCompraRequest) (*entity.Producto, error) {
	if in.ProductoID != "" {
		producto, err := productos.GetByID(in.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto != nil {
			return producto, nil
		}
	}
	return productos.GetByNombre(in.NombreProducto)
}

func toCompraResponse(c *entity.Compra) dto.CompraResponse {
	return dto.CompraResponse{
		ID:             c.ID,
		ProductoID:     c.ProductoID,
		NombreProducto: c.NombreProducto,
		Cantidad:       c.Cantidad,
		CostoUnitario:  c.CostoUnitario,
		CostoTotal:     c.CostoTotal,
		Proveedor:      c.Proveedor,
		MetodoPago:     c.MetodoPago,
		NumeroFactura:  c.NumeroFactura,
		FechaCompra:    c.FechaCompra,
		Observaciones:  c.Observaciones,
	}
}

func toCompraResponses(list []*entity.Compra) []dto.CompraResponse {
	items := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompraResponse(c))
	}
	return items
}
