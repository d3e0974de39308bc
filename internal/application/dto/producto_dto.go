package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoFormRequest entrada para crear o actualizar un producto.
// Los nombres JSON son el contrato con los frontends históricos (camelCase en español).
type ProductoFormRequest struct {
	Nombre   string          `json:"nombre" validate:"required,min=1,max=100"`
	Tipo     string          `json:"tipo" validate:"required,min=1,max=50"`
	Cantidad int64           `json:"cantidad" validate:"min=0"`
	Precio   decimal.Decimal `json:"precio"`
}

// ProductoResponse salida de un producto. ValorTotal es cantidad × precio.
type ProductoResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Tipo       string          `json:"tipo"`
	Cantidad   int64           `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	ValorTotal decimal.Decimal `json:"valorTotal"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
