package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tallerctl/internal/dto"
	"tallerctl/internal/model"
	"tallerctl/internal/presupuesto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagClienteID  int
	flagVehiculoID int
	flagEstado     string
	flagTotal      string
	flagProductos  []string
)

var crearCmd = &cobra.Command{
	Use:   "crear",
	Short: "Crea un presupuesto nuevo",
	Example: `  tallerctl crear --cliente-id 5 --vehiculo-id 3 --total 185.50 \
      --producto 1:2 --producto 2:1`,
	RunE: runCrear,
}

func init() {
	crearCmd.Flags().IntVar(&flagClienteID, "cliente-id", 0, "id del cliente (0 = sin asignar)")
	crearCmd.Flags().IntVar(&flagVehiculoID, "vehiculo-id", 0, "id del vehículo (0 = sin asignar)")
	crearCmd.Flags().StringVar(&flagEstado, "estado", model.EstadoPendiente, "PENDIENTE | CANCELADO | REALIZADO")
	crearCmd.Flags().StringVar(&flagTotal, "total", "0", "total estimado")
	crearCmd.Flags().StringArrayVar(&flagProductos, "producto", nil, "línea producto_id:cantidad (repetible)")
	rootCmd.AddCommand(crearCmd)
}

func runCrear(cmd *cobra.Command, _ []string) error {
	total, err := decimal.NewFromString(flagTotal)
	if err != nil {
		return fmt.Errorf("total inválido %q: %w", flagTotal, err)
	}
	items, err := parsearProductos(flagProductos)
	if err != nil {
		return err
	}

	req := dto.CrearPresupuestoRequest{
		Estado:        strings.ToUpper(flagEstado),
		TotalEstimado: total,
		Productos:     items,
	}
	if flagClienteID > 0 {
		req.ClienteID = &flagClienteID
	}
	if flagVehiculoID > 0 {
		req.VehiculoID = &flagVehiculoID
	}

	app, err := nuevaApp(presupuesto.LogNotifier{})
	if err != nil {
		return err
	}
	return app.Presupuestos.Crear(cmd.Context(), req)
}

// parsearProductos turns repeated "id:cantidad" flags into request lines.
func parsearProductos(raw []string) ([]dto.ItemPresupuestoRequest, error) {
	var items []dto.ItemPresupuestoRequest
	for _, entrada := range raw {
		id, cantidad, ok := strings.Cut(entrada, ":")
		if !ok {
			return nil, fmt.Errorf("producto inválido %q: se espera producto_id:cantidad", entrada)
		}
		pid, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("producto inválido %q: %w", entrada, err)
		}
		cant, err := strconv.Atoi(cantidad)
		if err != nil {
			return nil, fmt.Errorf("producto inválido %q: %w", entrada, err)
		}
		items = append(items, dto.ItemPresupuestoRequest{ProductoID: pid, Cantidad: cant})
	}
	return items, nil
}
