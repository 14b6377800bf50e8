package cli

import (
	"fmt"
	"strconv"

	"tallerctl/internal/presupuesto"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagSinConfirmar bool

var eliminarCmd = &cobra.Command{
	Use:   "eliminar <id>",
	Short: "Elimina un presupuesto (pide confirmación)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEliminar,
}

func init() {
	eliminarCmd.Flags().BoolVar(&flagSinConfirmar, "si", false, "no preguntar (uso en scripts)")
	rootCmd.AddCommand(eliminarCmd)
}

func runEliminar(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido %q", args[0])
	}

	// The remote delete must only ever run after explicit confirmation.
	if !flagSinConfirmar {
		confirmado := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("¿Estás seguro de que deseas eliminar el presupuesto %d?", id)).
				Affirmative("Eliminar").
				Negative("Cancelar").
				Value(&confirmado),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmado {
			fmt.Println("Operación cancelada")
			return nil
		}
	}

	app, err := nuevaApp(presupuesto.LogNotifier{})
	if err != nil {
		return err
	}
	if err := app.Presupuestos.Cargar(cmd.Context()); err != nil {
		return err
	}
	return app.Presupuestos.Eliminar(cmd.Context(), id)
}
