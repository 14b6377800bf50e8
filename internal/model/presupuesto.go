package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un presupuesto. El backend sólo conoce estos tres.
const (
	EstadoPendiente = "PENDIENTE"
	EstadoCancelado = "CANCELADO"
	EstadoRealizado = "REALIZADO"
)

// Cantidad is an int that tolerates quoted numbers on the wire ("3" and 3
// both decode). Some API variants serialize line-item quantities as strings.
type Cantidad int

func (c *Cantidad) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*c = Cantidad(n)
	return nil
}

func (c Cantidad) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(c))
}

// Presupuesto is the flat record exactly as the API serves it: foreign keys
// and scalars only. Denormalized display data lives in the presupuesto
// package, never here.
type Presupuesto struct {
	ID             int               `json:"id"`
	ClienteID      *int              `json:"cliente_id"`
	VehiculoID     *int              `json:"vehiculo_id"`
	TotalEstimado  decimal.Decimal   `json:"total_estimado"`
	Estado         string            `json:"estado"`
	FechaCreacion  time.Time         `json:"fecha_creacion"`
	FechaRealizado *time.Time        `json:"fecha_realizado"`
	Productos      []ItemPresupuesto `json:"productos"`
}

// ItemPresupuesto is one line of a presupuesto on the wire.
type ItemPresupuesto struct {
	ProductoID int      `json:"producto_id"`
	Cantidad   Cantidad `json:"cantidad"`
}
