package presupuesto

import (
	"fmt"
	"strings"

	"tallerctl/internal/model"
)

// Sentinel display strings for unresolved references. The join never fails:
// a missing catalog entry degrades to one of these.
const (
	NoAsignado   = "No asignado"
	NoRealizado  = "No realizado"
	SinProductos = "Sin productos"
	Desconocido  = "Desconocido"
)

// ItemView is a presupuesto line with its product resolved for display.
// Nombre and Categoria are derived at join time from the catalog snapshot;
// only ProductoID and Cantidad are authoritative.
type ItemView struct {
	ProductoID int
	Cantidad   int
	Nombre     string
	Categoria  string
}

// View is one denormalized grid row: the flat record plus its resolved
// references. Cliente and Vehiculo stay nil when the presupuesto has no
// assignment or the snapshot no longer contains the referenced entity.
type View struct {
	model.Presupuesto

	Cliente  *model.Cliente
	Vehiculo *model.Vehiculo
	Items    []ItemView
}

func (v View) ClienteNombre() string {
	if v.Cliente == nil {
		return NoAsignado
	}
	return v.Cliente.Nombre
}

func (v View) VehiculoMatricula() string {
	if v.Vehiculo == nil {
		return NoAsignado
	}
	return v.Vehiculo.Matricula
}

// TotalTexto formats the estimated total with two decimals.
func (v View) TotalTexto() string {
	return "$" + v.TotalEstimado.StringFixed(2)
}

func (v View) FechaRealizadoTexto() string {
	if v.FechaRealizado == nil {
		return NoRealizado
	}
	return v.FechaRealizado.Format("2006-01-02")
}

// ItemsTexto renders the line items as "Aceite 10W40 (x2), Filtro (x1)".
func (v View) ItemsTexto() string {
	if len(v.Items) == 0 {
		return SinProductos
	}
	parts := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", it.Nombre, it.Cantidad))
	}
	return strings.Join(parts, ", ")
}
