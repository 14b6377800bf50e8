package cli

import (
	"fmt"

	"tallerctl/internal/presupuesto"

	"github.com/spf13/cobra"
)

var (
	flagBuscar string
	flagPagina int
)

var listarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista los presupuestos con cliente, vehículo y productos resueltos",
	RunE:  runListar,
}

func init() {
	listarCmd.Flags().StringVar(&flagBuscar, "buscar", "", "filtra por estado o nombre de cliente")
	listarCmd.Flags().IntVar(&flagPagina, "pagina", 1, "página a mostrar (desde 1)")
	rootCmd.AddCommand(listarCmd)
}

func runListar(cmd *cobra.Command, _ []string) error {
	app, err := nuevaApp(presupuesto.LogNotifier{})
	if err != nil {
		return err
	}

	if err := app.Presupuestos.Cargar(cmd.Context()); err != nil {
		return err
	}

	filtrados := app.Presupuestos.Filtrar(flagBuscar)
	pagina := presupuesto.Paginar(filtrados, flagPagina, app.Config.PageSize)
	if len(pagina) == 0 {
		fmt.Println("No se encontraron presupuestos")
		return nil
	}

	fmt.Print(renderTabla(pagina))
	fmt.Printf("Página %d de %d (%d presupuestos)\n",
		flagPagina, presupuesto.TotalPaginas(len(filtrados), app.Config.PageSize), len(filtrados))
	return nil
}
