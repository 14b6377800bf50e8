package dto

import (
	"tallerctl/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Write payloads are flat by construction: foreign-key ids and scalars only.
// Nombre/categoría/matrícula are resolved at read time and never sent back.

type ItemPresupuestoRequest struct {
	ProductoID int `json:"producto_id" validate:"required,min=1"`
	Cantidad   int `json:"cantidad"    validate:"required,min=1"`
}

type CrearPresupuestoRequest struct {
	ClienteID     *int                     `json:"cliente_id"     validate:"omitempty,min=1"`
	VehiculoID    *int                     `json:"vehiculo_id"    validate:"omitempty,min=1"`
	Estado        string                   `json:"estado"         validate:"required,oneof=PENDIENTE CANCELADO REALIZADO"`
	TotalEstimado decimal.Decimal          `json:"total_estimado" validate:"min=0"`
	Productos     []ItemPresupuestoRequest `json:"productos"      validate:"dive"`
}

// ActualizarPresupuestoRequest is a partial patch: nil fields are left
// untouched by the server. Productos nil means "keep the current lines";
// an empty non-nil slice clears them.
type ActualizarPresupuestoRequest struct {
	ClienteID     *int                     `json:"cliente_id,omitempty"     validate:"omitempty,min=1"`
	VehiculoID    *int                     `json:"vehiculo_id,omitempty"    validate:"omitempty,min=1"`
	Estado        *string                  `json:"estado,omitempty"         validate:"omitempty,oneof=PENDIENTE CANCELADO REALIZADO"`
	TotalEstimado *decimal.Decimal         `json:"total_estimado,omitempty" validate:"omitempty,min=0"`
	Productos     []ItemPresupuestoRequest `json:"productos,omitempty"      validate:"omitempty,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SnapshotResponse is the combined payload of GET /presupuestos/data: every
// entity needed to denormalize the grid in one round trip.
type SnapshotResponse struct {
	Presupuestos []model.Presupuesto `json:"presupuestos"`
	Clientes     []model.Cliente     `json:"clientes"`
	Vehiculos    []model.Vehiculo    `json:"vehiculos"`
	Productos    []model.Producto    `json:"productos"`
}
