package cli

import (
	"fmt"

	"tallerctl/internal/presupuesto"
	"tallerctl/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Abre la grilla interactiva de presupuestos",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	avisos := &presupuesto.Buffer{}
	app, err := nuevaApp(avisos)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(app, avisos), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error en la interfaz: %w", err)
	}
	return nil
}
