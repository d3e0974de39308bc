package usecase

import (
	"context"

	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios ligados a una misma transacción.
type TxRepos struct {
	Productos repository.ProductoRepository
	Ventas    repository.VentaRepository
	Compras   repository.CompraRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se hace
// rollback; en caso contrario commit. Los repositorios recibidos operan sobre
// la misma transacción.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(repos TxRepos) error) error
}
