package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/orderbook/internal/orderbook"
)

const journalPanelLines = 6

type theme struct {
	header     lipgloss.Style
	title      lipgloss.Style
	accent     lipgloss.Style
	finished   lipgloss.Style
	unfinished lipgloss.Style
	muted      lipgloss.Style
	box        lipgloss.Style
	footer     lipgloss.Style
}

func newTheme(accent string) theme {
	color := lipgloss.Color(accent)
	return theme{
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginBottom(1),
		title:      lipgloss.NewStyle().Bold(true).Foreground(color),
		accent:     lipgloss.NewStyle().Foreground(color).Bold(true),
		finished:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		unfinished: lipgloss.NewStyle().Foreground(color),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1),
	}
}

// resultView is a read-only listing shown after a query command.
type resultView struct {
	title    string
	orders   []orderbook.Order
	lines    []string
	empty    string
	isOrders bool
}

func (r *resultView) View(t theme) string {
	out := []string{t.title.Render(r.title), ""}
	switch {
	case r.isOrders && len(r.orders) > 0:
		for _, order := range r.orders {
			style := t.unfinished
			if order.IsFinished() {
				style = t.finished
			}
			out = append(out, style.Render(order.String()))
		}
	case !r.isOrders && len(r.lines) > 0:
		out = append(out, r.lines...)
	default:
		out = append(out, t.muted.Render(r.empty))
	}
	return strings.Join(out, "\n")
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(28, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}

	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateForm:
		if a.form != nil {
			content = a.form.View(a.theme)
		}
	case stateResult:
		if a.result != nil {
			content = a.result.View(a.theme)
		}
	}

	leftBox := a.theme.box.Width(max(20, leftWidth)).Render(content)
	body := leftBox
	if rightWidth > 0 {
		rightBox := a.theme.box.Width(max(20, rightWidth)).Render(a.renderSummaryPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	}
	sections := []string{a.theme.header.Render("⬡ ORDERBOOK"), body}
	if panel := a.renderLogPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, a.theme.footer.Render(a.statusMsg))
	return strings.Join(sections, "\n")
}

// renderSummaryPanel shows running totals so the board is useful without
// opening a listing.
func (a *App) renderSummaryPanel() string {
	orders := a.registry.AllOrders()
	finished, hoursDone, hoursOpen := 0, 0, 0
	for _, order := range orders {
		if order.IsFinished() {
			finished++
			hoursDone += order.Workload()
		} else {
			hoursOpen += order.Workload()
		}
	}
	lines := []string{
		a.theme.title.Render(fmt.Sprintf("Orders (%d)", len(orders))),
		fmt.Sprintf("finished:   %d", finished),
		fmt.Sprintf("unfinished: %d", len(orders)-finished),
		fmt.Sprintf("hours done: %d", hoursDone),
		fmt.Sprintf("scheduled:  %d", hoursOpen),
		fmt.Sprintf("workers:    %d", len(a.registry.Workers())),
		"",
		a.theme.muted.Render("0-6 run a command · q quit"),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(journalPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s", fileName))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return a.theme.box.Render(fmt.Sprintf("%s\n%s", head, body))
}
