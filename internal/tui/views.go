package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"admin-dashboard/internal/analytics"
	"admin-dashboard/internal/form"
	"admin-dashboard/internal/liststate"
	domain "admin-dashboard/internal/model"
	"admin-dashboard/internal/section"
	"admin-dashboard/internal/settings"
)

const chartWidth = 30

// View implements tea.Model.
func (model Model) View() string {
	main := lipgloss.JoinVertical(lipgloss.Left,
		model.renderHeader(),
		model.renderSection(),
	)
	if model.notice != "" {
		main = lipgloss.JoinVertical(lipgloss.Left, main, model.styles.errorText.Render(model.notice))
	}
	if model.focus == FocusConfirm {
		main = lipgloss.JoinVertical(lipgloss.Left, main, model.renderConfirm())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, model.renderSidebar(), main)
	helpLine := model.styles.help.Render(model.help.View(model.keys.bindingsFor(model.focus, string(model.active.ID()))))
	return lipgloss.JoinVertical(lipgloss.Left, body, helpLine)
}

func (model Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(model.styles.title.Render("Admin Panel"))
	b.WriteString("\n\n")
	for i, item := range section.Menu {
		line := fmt.Sprintf("%d %s", i+1, item.Label)
		switch {
		case i == model.menuIndex:
			line = model.styles.menuActive.Render(line)
		case model.focus == FocusSidebar && i == model.menuCursor:
			line = model.styles.accent.Render("› " + line)
		default:
			line = model.styles.menuItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return model.styles.sidebar.Render(b.String())
}

func (model Model) renderHeader() string {
	ranges := make([]string, len(TimeRanges))
	for i, r := range TimeRanges {
		if i == model.timeRange {
			ranges[i] = model.styles.accent.Render("[" + r + "]")
		} else {
			ranges[i] = model.styles.faint.Render(r)
		}
	}
	line := fmt.Sprintf("%s   %s   Notificaciones (%d)",
		model.styles.title.Render(section.Title(model.active.ID())),
		strings.Join(ranges, " "),
		Notifications,
	)
	return model.styles.header.Render(line)
}

func (model Model) renderSection() string {
	switch s := model.active.(type) {
	case *section.Analytics:
		return renderState(model, s.List.State(), model.renderAnalytics)
	case *section.Users:
		return model.renderUsers(s)
	case *section.Products:
		return model.renderProducts(s)
	case *section.Sales:
		return model.renderSales(s)
	case *section.Settings:
		return model.renderSettings(s)
	}
	return ""
}

// renderState renders the loading and error phases, and hands the ready
// snapshot to render.
func renderState[S any](model Model, state liststate.State[S], render func(S) string) string {
	if state.Loading() {
		return model.spinner.View() + " Cargando..."
	}
	if message, ok := state.Message(); ok {
		return model.styles.errorText.Render(message) + "\n" + model.styles.faint.Render("r para reintentar")
	}
	data, _ := state.Data()
	return render(data)
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func (model Model) renderAnalytics(d analytics.Dashboard) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		model.card("Usuarios Totales", strconv.Itoa(d.Summary.NewUsers)),
		model.card("Ventas Totales", money(d.Summary.TotalSales)),
		model.card("Pedidos Completados", strconv.Itoa(d.Summary.Orders)),
		model.card("Conversión", strconv.FormatFloat(d.Summary.Conversion, 'f', 1, 64)+"%"),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		model.styles.panel.Render(model.renderChart(d.Chart)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			model.styles.panel.Render(model.renderTopProducts(d.TopProducts)),
			model.styles.panel.Render(model.renderActivity(d.Activity)),
		),
	)
}

func (model Model) card(label, value string) string {
	return model.styles.card.Render(model.styles.faint.Render(label) + "\n" + model.styles.title.Render(value))
}

func bar(value, peak float64) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := int(value / peak * chartWidth)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func (model Model) renderChart(points []domain.ChartPoint) string {
	var peakSales, peakUsers float64
	for _, p := range points {
		peakSales = max(peakSales, p.Ventas)
		peakUsers = max(peakUsers, p.Usuarios)
	}
	sales := lipgloss.NewStyle().Foreground(model.theme.SalesBar)
	users := lipgloss.NewStyle().Foreground(model.theme.UsersBar)

	var b strings.Builder
	b.WriteString(model.styles.tableHeader.Render("Ventas y Usuarios"))
	b.WriteString("\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%-4s %s %s\n", truncate(p.Name, 4), sales.Render(bar(p.Ventas, peakSales)), model.styles.faint.Render(strconv.FormatFloat(p.Ventas, 'f', -1, 64)))
		fmt.Fprintf(&b, "%-4s %s %s\n", "", users.Render(bar(p.Usuarios, peakUsers)), model.styles.faint.Render(strconv.FormatFloat(p.Usuarios, 'f', -1, 64)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (model Model) renderTopProducts(products []domain.TopProduct) string {
	var total float64
	for _, p := range products {
		total += p.Ventas
	}
	var b strings.Builder
	b.WriteString(model.styles.tableHeader.Render("Productos Más Vendidos"))
	for _, p := range products {
		share := 0.0
		if total > 0 {
			share = p.Ventas / total * 100
		}
		fmt.Fprintf(&b, "\n%-24s %6s %5.1f%%", truncate(p.Name, 24), strconv.FormatFloat(p.Ventas, 'f', -1, 64), share)
	}
	return b.String()
}

func (model Model) renderActivity(entries []domain.ActivityEntry) string {
	var b strings.Builder
	b.WriteString(model.styles.tableHeader.Render("Actividad Reciente"))
	for _, a := range entries {
		user := a.User
		if user == "" {
			user = "Sistema"
		}
		fmt.Fprintf(&b, "\n%s %s %s", model.styles.accent.Render("["+a.Initials()+"]"), user, a.Action)
		if a.Amount != "" {
			b.WriteString(" " + model.styles.title.Render(string(a.Amount)))
		}
		b.WriteString(" " + model.styles.faint.Render(a.Time))
	}
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// renderTable lays rows out in fixed-width columns with the cursor row
// highlighted.
func (model Model) renderTable(headers []string, widths []int, rows [][]string) string {
	cell := func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%-*s", widths[i], truncate(v, widths[i]))
		}
		return strings.Join(parts, " ")
	}
	lines := []string{model.styles.tableHeader.Render(cell(headers))}
	for i, row := range rows {
		line := cell(row)
		if i == model.cursor && model.focus != FocusSidebar {
			line = model.styles.selectedRow.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (model Model) searchLine() string {
	if model.focus == FocusSearch {
		return model.search.View()
	}
	if v := model.search.Value(); v != "" {
		return model.styles.faint.Render("Buscar: " + v)
	}
	return model.styles.faint.Render("/ para buscar")
}

func (model Model) renderUsers(s *section.Users) string {
	filters := fmt.Sprintf("Rol: %s   %s", model.styles.accent.Render(s.Role), model.searchLine())
	table := renderState(model, s.List.State(), func([]domain.User) string {
		users := s.Visible()
		if len(users) == 0 {
			return model.styles.faint.Render(section.UsersEmpty)
		}
		rows := make([][]string, len(users))
		for i, u := range users {
			rows[i] = []string{strconv.Itoa(u.ID), u.Name, u.Email, u.Role, u.DisplayStatus(), u.JoinedDate}
		}
		return model.renderTable(
			[]string{"ID", "Nombre", "Email", "Rol", "Estado", "Registro"},
			[]int{4, 20, 26, 10, 10, 10},
			rows,
		)
	})
	parts := []string{filters, table}
	if model.focus == FocusForm {
		mode, _ := s.Form.Mode()
		title := "Nuevo Usuario"
		label := "Crear Usuario"
		if mode == form.ModeEdit {
			title, label = "Editar Usuario", "Guardar Cambios"
		}
		parts = append(parts, model.renderForm(title, label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (model Model) renderProducts(s *section.Products) string {
	table := renderState(model, s.List.State(), func([]domain.Product) string {
		products := s.Visible()
		if len(products) == 0 {
			return model.styles.faint.Render(section.ProductsEmpty)
		}
		rows := make([][]string, len(products))
		for i, p := range products {
			rows[i] = []string{strconv.Itoa(p.ID), p.Name, "$" + p.Price.String(), strconv.Itoa(p.Stock)}
		}
		return model.renderTable(
			[]string{"ID", "Nombre", "Precio", "Stock"},
			[]int{4, 28, 12, 6},
			rows,
		)
	})
	parts := []string{model.searchLine(), table}
	if model.focus == FocusForm {
		mode, _ := s.Form.Mode()
		title := "Nuevo Producto"
		if mode == form.ModeEdit {
			title = "Editar Producto"
		}
		parts = append(parts, model.renderForm(title, s.SubmitLabel()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (model Model) renderSales(s *section.Sales) string {
	table := renderState(model, s.List.State(), func([]domain.Sale) string {
		sales := s.Visible()
		if len(sales) == 0 {
			return model.styles.faint.Render(section.SalesEmpty)
		}
		rows := make([][]string, len(sales))
		for i, sale := range sales {
			rows[i] = []string{sale.Product, sale.Customer, sale.CustomerEmail, "$" + sale.Amount.String(), sale.Date}
		}
		return model.renderTable(
			[]string{"Producto", "Cliente", "Email", "Monto", "Fecha"},
			[]int{22, 18, 24, 10, 10},
			rows,
		)
	})
	return lipgloss.JoinVertical(lipgloss.Left, model.searchLine(), table)
}

func (model Model) renderSettings(s *section.Settings) string {
	if model.focus == FocusForm {
		return model.renderForm("Configuración General", "Guardar Cambios")
	}
	return renderState(model, s.List.State(), func(st settings.Settings) string {
		rows := [][2]string{
			{"Nombre de la Empresa", st.CompanyName},
			{"Email de Contacto", st.ContactEmail},
			{"Zona Horaria", st.Timezone},
			{"Notificaciones por Email", toggle(st.Notifications.Email)},
			{"Notificaciones Push", toggle(st.Notifications.Push)},
			{"Reportes Semanales", toggle(st.Notifications.WeeklyReports)},
		}
		var b strings.Builder
		b.WriteString(model.styles.tableHeader.Render("Configuración General"))
		for _, r := range rows {
			fmt.Fprintf(&b, "\n%-26s %s", r[0], r[1])
		}
		b.WriteString("\n" + model.styles.faint.Render("e para editar"))
		return model.styles.panel.Render(b.String())
	})
}

func (model Model) renderForm(title, submitLabel string) string {
	if model.editor == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(model.styles.tableHeader.Render(title))
	for i, f := range model.editor.Fields() {
		label := fmt.Sprintf("%-26s", f.Label)
		if i == model.field {
			label = model.styles.accent.Render(label)
		}
		value := model.inputs[i].View()
		if len(f.Options) > 0 {
			value = "‹ " + model.editor.Get(f.Name) + " ›"
		}
		b.WriteString("\n" + label + " " + value)
	}
	caption := submitLabel
	if model.busy {
		caption = model.spinner.View() + " " + caption
	}
	b.WriteString("\n\n" + model.styles.title.Render("[ "+caption+" ]"))
	return model.styles.panel.Render(b.String())
}

func (model Model) renderConfirm() string {
	prompt := section.UsersDeletePrompt
	if model.active.ID() == section.ProductsID {
		prompt = section.ProductsDeletePrompt
	}
	return model.styles.modal.Render(prompt + "\n\n[y] Sí   [n] No")
}
