package cli

import (
	"strconv"
	"strings"

	"tallerctl/internal/presupuesto"

	"github.com/charmbracelet/lipgloss"
)

var (
	estiloCabecera = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	estiloCelda    = lipgloss.NewStyle().PaddingRight(2)
	estiloEstado   = map[string]lipgloss.Style{
		"PENDIENTE": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"CANCELADO": lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		"REALIZADO": lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// renderTabla prints one page of denormalized rows as a plain aligned table.
func renderTabla(filas []presupuesto.View) string {
	cabeceras := []string{"ID", "Cliente", "Vehículo", "Estado", "Total", "Realizado", "Productos"}
	anchos := make([]int, len(cabeceras))
	for i, h := range cabeceras {
		anchos[i] = lipgloss.Width(h)
	}

	celdas := make([][]string, 0, len(filas))
	for _, v := range filas {
		fila := []string{
			strconv.Itoa(v.ID),
			v.ClienteNombre(),
			v.VehiculoMatricula(),
			v.Estado,
			v.TotalTexto(),
			v.FechaRealizadoTexto(),
			v.ItemsTexto(),
		}
		for i, c := range fila {
			if w := lipgloss.Width(c); w > anchos[i] {
				anchos[i] = w
			}
		}
		celdas = append(celdas, fila)
	}

	var b strings.Builder
	for i, h := range cabeceras {
		b.WriteString(estiloCabecera.Render(rellenar(h, anchos[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, fila := range celdas {
		for i, c := range fila {
			texto := rellenar(c, anchos[i])
			if i == 3 {
				if st, ok := estiloEstado[c]; ok {
					texto = st.Render(texto)
				}
			}
			b.WriteString(estiloCelda.Render(texto))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func rellenar(s string, ancho int) string {
	if falta := ancho - lipgloss.Width(s); falta > 0 {
		return s + strings.Repeat(" ", falta)
	}
	return s
}
