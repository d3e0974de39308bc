package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// Repositorios en memoria para probar los casos de uso sin base de datos.

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		copia := *p
		r.productos[p.ID] = &copia
	}
	return r
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	buscado := domain.NormalizarNombre(nombre)
	for _, p := range r.productos {
		if domain.NormalizarNombre(p.Nombre) == buscado {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) IncrementarCantidad(id string, delta int64) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if delta < 0 && p.Cantidad+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Cantidad += delta
	return nil
}

func (r *fakeProductoRepo) ActualizarPrecio(id string, precio decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Precio = precio
	return nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.productos, id)
	return nil
}

type fakeVentaRepo struct {
	ventas map[string]*entity.Venta
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[string]*entity.Venta)}
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	copia := *v
	r.ventas[v.ID] = &copia
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (r *fakeVentaRepo) List() ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		copia := *v
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeVentaRepo) ListBetween(inicio, fin time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if !v.FechaVenta.Before(inicio) && !v.FechaVenta.After(fin) {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) Update(v *entity.Venta) error {
	if _, ok := r.ventas[v.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *v
	r.ventas[v.ID] = &copia
	return nil
}

func (r *fakeVentaRepo) Delete(id string) error {
	delete(r.ventas, id)
	return nil
}

type fakeCompraRepo struct {
	compras map[string]*entity.Compra
}

func newFakeCompraRepo() *fakeCompraRepo {
	return &fakeCompraRepo{compras: make(map[string]*entity.Compra)}
}

func (r *fakeCompraRepo) Create(c *entity.Compra) error {
	copia := *c
	r.compras[c.ID] = &copia
	return nil
}

func (r *fakeCompraRepo) GetByID(id string) (*entity.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCompraRepo) List() ([]*entity.Compra, error) {
	out := make([]*entity.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeCompraRepo) ListBetween(inicio, fin time.Time) ([]*entity.Compra, error) {
	var out []*entity.Compra
	for _, c := range r.compras {
		if !c.FechaCompra.Before(inicio) && !c.FechaCompra.After(fin) {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeCompraRepo) Update(c *entity.Compra) error {
	if _, ok := r.compras[c.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *c
	r.compras[c.ID] = &copia
	return nil
}

func (r *fakeCompraRepo) Delete(id string) error {
	delete(r.compras, id)
	return nil
}

type fakeTicketGenerator struct{}

func (fakeTicketGenerator) GenerarTicketVenta(_ context.Context, _ *entity.Venta) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repositorios en
// memoria; no simula rollback.
type fakeTxRunner struct {
	repos TxRepos
}

func (f *fakeTxRunner) RunInTx(_ context.Context, fn func(TxRepos) error) error {
	return fn(f.repos)
}
