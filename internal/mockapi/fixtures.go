package mockapi

import (
	"time"

	"tallerctl/internal/model"

	"github.com/shopspring/decimal"
)

func intPtr(n int) *int { return &n }

// SeedDemo loads a small realistic fixture set for local development.
func (s *Server) SeedDemo() {
	creado := time.Date(2026, 3, 12, 10, 30, 0, 0, time.UTC)
	realizado := creado.Add(48 * time.Hour)

	s.Seed(
		[]model.Presupuesto{
			{
				ID:            1,
				ClienteID:     intPtr(5),
				VehiculoID:    intPtr(3),
				TotalEstimado: decimal.NewFromFloat(185.50),
				Estado:        model.EstadoPendiente,
				FechaCreacion: creado,
				Productos: []model.ItemPresupuesto{
					{ProductoID: 1, Cantidad: 2},
					{ProductoID: 2, Cantidad: 1},
				},
			},
			{
				ID:             2,
				ClienteID:      intPtr(6),
				TotalEstimado:  decimal.NewFromFloat(420),
				Estado:         model.EstadoRealizado,
				FechaCreacion:  creado,
				FechaRealizado: &realizado,
				Productos: []model.ItemPresupuesto{
					{ProductoID: 4, Cantidad: 4},
				},
			},
			{
				// sin cliente ni vehículo asignados
				ID:            3,
				TotalEstimado: decimal.NewFromFloat(0),
				Estado:        model.EstadoCancelado,
				FechaCreacion: creado,
			},
		},
		[]model.Cliente{
			{ID: 5, Nombre: "Juan Pérez"},
			{ID: 6, Nombre: "María González"},
		},
		[]model.Vehiculo{
			{ID: 3, Matricula: "ABC 1234"},
			{ID: 4, Matricula: "XYZ 9876"},
		},
		[]model.Producto{
			{ID: 1, Nombre: "Aceite 10W40", Categoria: "Lubricantes"},
			{ID: 2, Nombre: "Filtro de aceite", Categoria: "Filtros"},
			{ID: 4, Nombre: "Pastillas de freno", Categoria: "Frenos"},
		},
	)
}
