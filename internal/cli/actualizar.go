package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tallerctl/internal/dto"
	"tallerctl/internal/presupuesto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var actualizarCmd = &cobra.Command{
	Use:   "actualizar <id>",
	Short: "Actualiza un presupuesto existente (sólo los campos indicados)",
	Args:  cobra.ExactArgs(1),
	RunE:  runActualizar,
}

func init() {
	actualizarCmd.Flags().Int("cliente-id", 0, "nuevo cliente")
	actualizarCmd.Flags().Int("vehiculo-id", 0, "nuevo vehículo")
	actualizarCmd.Flags().String("estado", "", "PENDIENTE | CANCELADO | REALIZADO")
	actualizarCmd.Flags().String("total", "", "nuevo total estimado")
	actualizarCmd.Flags().StringArray("producto", nil, "reemplaza las líneas: producto_id:cantidad (repetible)")
	rootCmd.AddCommand(actualizarCmd)
}

func runActualizar(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido %q", args[0])
	}

	// Only the flags the user touched travel in the patch.
	var req dto.ActualizarPresupuestoRequest
	if cmd.Flags().Changed("cliente-id") {
		v, _ := cmd.Flags().GetInt("cliente-id")
		req.ClienteID = &v
	}
	if cmd.Flags().Changed("vehiculo-id") {
		v, _ := cmd.Flags().GetInt("vehiculo-id")
		req.VehiculoID = &v
	}
	if cmd.Flags().Changed("estado") {
		v, _ := cmd.Flags().GetString("estado")
		estado := strings.ToUpper(v)
		req.Estado = &estado
	}
	if cmd.Flags().Changed("total") {
		v, _ := cmd.Flags().GetString("total")
		total, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("total inválido %q: %w", v, err)
		}
		req.TotalEstimado = &total
	}
	if cmd.Flags().Changed("producto") {
		raw, _ := cmd.Flags().GetStringArray("producto")
		items, err := parsearProductos(raw)
		if err != nil {
			return err
		}
		if items == nil {
			items = []dto.ItemPresupuestoRequest{}
		}
		req.Productos = items
	}

	app, err := nuevaApp(presupuesto.LogNotifier{})
	if err != nil {
		return err
	}
	// The view-model requires the record to exist locally before patching.
	if err := app.Presupuestos.Cargar(cmd.Context()); err != nil {
		return err
	}
	return app.Presupuestos.Actualizar(cmd.Context(), id, req)
}
