// Package tui renders the interactive presupuesto grid. It is a thin layer:
// every piece of data it shows comes out of the view-model already joined,
// filtered and paginated; the TUI only decides which page is on screen.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"tallerctl/internal/presupuesto"
	"tallerctl/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	estiloTitulo = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	estiloPie    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	estiloAviso  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	estiloError  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
	estiloDialog = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type cargadoMsg struct{ err error }
type operacionMsg struct{ err error }

// Model is the bubbletea model of the grid.
type Model struct {
	app    *store.App
	avisos *presupuesto.Buffer

	tabla  table.Model
	filtro textinput.Model
	spin   spinner.Model

	pagina      int
	texto       string // filtro aplicado
	filtrando   bool
	confirmando bool
	idEliminar  int
	cargando    bool

	aviso      string
	avisoEsErr bool
	ancho      int
}

func New(app *store.App, avisos *presupuesto.Buffer) Model {
	filtro := textinput.New()
	filtro.Placeholder = "estado o cliente…"
	filtro.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	columnas := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Cliente", Width: 18},
		{Title: "Vehículo", Width: 10},
		{Title: "Estado", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Realizado", Width: 12},
		{Title: "Productos", Width: 34},
	}
	t := table.New(table.WithColumns(columnas), table.WithFocused(true), table.WithHeight(12))

	return Model{
		app:    app,
		avisos: avisos,
		tabla:  t,
		filtro: filtro,
		spin:   sp,
		pagina: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.cargar(), m.spin.Tick)
}

// ─── Comandos ────────────────────────────────────────────────────────────────

func (m Model) cargar() tea.Cmd {
	vm := m.app.Presupuestos
	return func() tea.Msg {
		return cargadoMsg{err: vm.Cargar(context.Background())}
	}
}

func (m Model) eliminar(id int) tea.Cmd {
	vm := m.app.Presupuestos
	return func() tea.Msg {
		return operacionMsg{err: vm.Eliminar(context.Background(), id)}
	}
}

// ─── Update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.ancho = msg.Width
		alto := msg.Height - 7
		if alto < 3 {
			alto = 3
		}
		m.tabla.SetHeight(alto)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case cargadoMsg, operacionMsg:
		m.cargando = false
		m.aviso, m.avisoEsErr = m.avisos.Ultimo()
		m.refrescarTabla()
		return m, nil

	case tea.KeyMsg:
		return m.manejarTecla(msg)
	}

	var cmd tea.Cmd
	m.tabla, cmd = m.tabla.Update(msg)
	return m, cmd
}

func (m Model) manejarTecla(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirm dialog swallows everything except its two answers.
	if m.confirmando {
		switch msg.String() {
		case "y", "s", "enter":
			m.confirmando = false
			m.cargando = true
			return m, m.eliminar(m.idEliminar)
		case "n", "esc":
			m.confirmando = false
		}
		return m, nil
	}

	if m.filtrando {
		switch msg.String() {
		case "enter":
			m.filtrando = false
			m.texto = m.filtro.Value()
			m.pagina = 1
			m.refrescarTabla()
		case "esc":
			m.filtrando = false
			m.filtro.SetValue(m.texto)
		default:
			var cmd tea.Cmd
			m.filtro, cmd = m.filtro.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.cargando = true
		return m, m.cargar()
	case "/":
		m.filtrando = true
		m.filtro.Focus()
		return m, textinput.Blink
	case "esc":
		m.texto = ""
		m.filtro.SetValue("")
		m.pagina = 1
		m.refrescarTabla()
	case "left", "h":
		if m.pagina > 1 {
			m.pagina--
			m.refrescarTabla()
		}
	case "right", "l":
		total := presupuesto.TotalPaginas(len(m.filtrados()), m.app.Config.PageSize)
		if m.pagina < total {
			m.pagina++
			m.refrescarTabla()
		}
	case "d", "delete":
		if id, ok := m.idSeleccionado(); ok && !m.app.Presupuestos.EnEdicion(id) {
			m.confirmando = true
			m.idEliminar = id
		}
	}

	var cmd tea.Cmd
	m.tabla, cmd = m.tabla.Update(msg)
	return m, cmd
}

// ─── Datos ───────────────────────────────────────────────────────────────────

func (m Model) filtrados() []presupuesto.View {
	return m.app.Presupuestos.Filtrar(m.texto)
}

// refrescarTabla recomputes the visible page. When a filter or a delete
// shrinks the result set below the current page, the page clamps to the last
// valid one instead of showing an empty grid.
func (m *Model) refrescarTabla() {
	filtrados := m.filtrados()
	m.pagina = clampPagina(m.pagina, presupuesto.TotalPaginas(len(filtrados), m.app.Config.PageSize))

	visibles := presupuesto.Paginar(filtrados, m.pagina, m.app.Config.PageSize)
	filas := make([]table.Row, 0, len(visibles))
	for _, v := range visibles {
		filas = append(filas, table.Row{
			strconv.Itoa(v.ID),
			v.ClienteNombre(),
			v.VehiculoMatricula(),
			v.Estado,
			v.TotalTexto(),
			v.FechaRealizadoTexto(),
			v.ItemsTexto(),
		})
	}
	m.tabla.SetRows(filas)
}

// clampPagina keeps pagina inside [1, total].
func clampPagina(pagina, total int) int {
	if pagina > total {
		return total
	}
	if pagina < 1 {
		return 1
	}
	return pagina
}

func (m Model) idSeleccionado() (int, bool) {
	fila := m.tabla.SelectedRow()
	if fila == nil {
		return 0, false
	}
	id, err := strconv.Atoi(fila[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

// ─── View ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	titulo := estiloTitulo.Render("Gestión de Presupuestos")
	if m.cargando || m.app.Presupuestos.Cargando() {
		titulo += " " + m.spin.View()
	}

	if m.confirmando {
		dialogo := estiloDialog.Render(fmt.Sprintf(
			"¿Estás seguro de que deseas eliminar el presupuesto %d?\n\n[s] eliminar   [n] cancelar",
			m.idEliminar,
		))
		return lipgloss.JoinVertical(lipgloss.Left, titulo, dialogo)
	}

	filtrados := m.filtrados()
	pie := estiloPie.Render(fmt.Sprintf(
		"página %d/%d · %d presupuestos · / filtrar · r recargar · d eliminar · q salir",
		m.pagina, presupuesto.TotalPaginas(len(filtrados), m.app.Config.PageSize), len(filtrados),
	))

	partes := []string{titulo}
	if m.filtrando {
		partes = append(partes, estiloPie.Render("buscar: ")+m.filtro.View())
	} else if m.texto != "" {
		partes = append(partes, estiloPie.Render("filtro: "+m.texto+" (esc para limpiar)"))
	}
	partes = append(partes, m.tabla.View(), pie)

	if m.aviso != "" {
		estilo := estiloAviso
		if m.avisoEsErr {
			estilo = estiloError
		}
		partes = append(partes, estilo.Render(m.aviso))
	}
	return lipgloss.JoinVertical(lipgloss.Left, partes...)
}
