package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/orderbook/internal/config"
	"github.com/kingrea/orderbook/internal/logbook"
	"github.com/kingrea/orderbook/internal/orderbook"
)

func TestAddOrderThroughForm(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("1"))
	if app.state != stateForm || app.form == nil {
		t.Fatalf("expected add-order form, got state %d", app.state)
	}
	app = typeText(t, app, "Fix bug")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.form == nil || app.form.active != 1 {
		t.Fatalf("enter should move to the second field")
	}
	app = typeText(t, app, "alice 5")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.state != stateMainMenu {
		t.Fatalf("expected return to menu after submit, got state %d", app.state)
	}
	orders := app.registry.AllOrders()
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if got := orders[0].String(); got != "1: Fix bug (5 hours), worker alice NOT FINISHED" {
		t.Fatalf("unexpected order %q", got)
	}
	if !strings.HasPrefix(app.statusMsg, "added!") {
		t.Fatalf("status = %q", app.statusMsg)
	}
}

func TestAddOrderRejectsBadWorkload(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("1"))
	app = typeText(t, app, "Fix bug")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	app = typeText(t, app, "alice five")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.state != stateForm {
		t.Fatalf("form should stay open after bad input, got state %d", app.state)
	}
	if app.statusMsg != "erroneous input" {
		t.Fatalf("status = %q", app.statusMsg)
	}
	if app.registry.Len() != 0 {
		t.Fatalf("no order should be added")
	}
	lines, _ := app.logbook.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN") {
		t.Fatalf("expected warning in journal, got %v", lines)
	}
}

func TestMarkFinishedAndListings(t *testing.T) {
	app := newTestApp(t)
	mustAdd(t, app, "Fix bug", "alice", 5)
	mustAdd(t, app, "Write docs", "bob", 3)

	app = press(t, app, keyRunes("4"))
	app = typeText(t, app, "1")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateMainMenu {
		t.Fatalf("expected menu after marking, got state %d", app.state)
	}

	app = press(t, app, keyRunes("2"))
	if app.state != stateResult || app.result == nil {
		t.Fatalf("expected finished listing")
	}
	if len(app.result.orders) != 1 || app.result.orders[0].ID() != 1 {
		t.Fatalf("unexpected finished orders: %v", app.result.orders)
	}

	app = press(t, app, keyRunes("3"))
	if len(app.result.orders) != 1 || app.result.orders[0].ID() != 2 {
		t.Fatalf("unexpected unfinished orders: %v", app.result.orders)
	}
	if !strings.Contains(app.View(), "2: Write docs (3 hours), worker bob NOT FINISHED") {
		t.Fatalf("listing not rendered:\n%s", app.View())
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.state != stateMainMenu {
		t.Fatalf("esc should return to menu")
	}
}

func TestMarkFinishedUnknownID(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("4"))
	app = typeText(t, app, "99")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.statusMsg != "erroneous input" {
		t.Fatalf("status = %q", app.statusMsg)
	}
}

func TestWorkersAndStatus(t *testing.T) {
	app := newTestApp(t)
	mustAdd(t, app, "Fix bug", "carol", 5)
	mustAdd(t, app, "Review", "alice", 2)
	if err := app.registry.MarkFinished(1); err != nil {
		t.Fatal(err)
	}

	app = press(t, app, keyRunes("5"))
	if got := strings.Join(app.result.lines, ","); got != "alice,carol" {
		t.Fatalf("workers = %s", got)
	}

	app = press(t, app, keyRunes("6"))
	app = typeText(t, app, "carol")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateResult {
		t.Fatalf("expected status result, got state %d", app.state)
	}
	want := "tasks: finished 1 not finished 0, hours: done 5 scheduled 0"
	if len(app.result.lines) != 1 || app.result.lines[0] != want {
		t.Fatalf("status lines = %v", app.result.lines)
	}
}

func TestWorkersEmptyShowsPlaceholder(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("5"))
	if app.state != stateResult || len(app.result.lines) != 0 {
		t.Fatalf("expected empty workers result, got state %d", app.state)
	}
	if !strings.Contains(app.View(), "no workers yet") {
		t.Fatalf("placeholder not rendered:\n%s", app.View())
	}
}

func TestWorkerStatusUnknownWorker(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("6"))
	app = typeText(t, app, "nobody")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateForm || app.statusMsg != "erroneous input" {
		t.Fatalf("expected rejection, got state %d status %q", app.state, app.statusMsg)
	}
}

func TestEscCancelsForm(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("1"))
	app = typeText(t, app, "half typed")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.state != stateMainMenu || app.form != nil {
		t.Fatalf("esc should drop the form")
	}
	if app.registry.Len() != 0 {
		t.Fatalf("cancel must not add an order")
	}
}

func TestQuitKeys(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"zero":   keyRunes("0"),
		"q":      keyRunes("q"),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		t.Run(name, func(t *testing.T) {
			app := newTestApp(t)
			_, cmd := app.Update(msg)
			if cmd == nil {
				t.Fatalf("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatalf("expected tea.QuitMsg")
			}
		})
	}
}

func TestQInsideFormIsText(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("6"))
	app = typeText(t, app, "q")
	if app.state != stateForm {
		t.Fatalf("typing q in a form must not leave it")
	}
	if got := app.form.values()[0]; got != "q" {
		t.Fatalf("form value = %q", got)
	}
}

func TestMenuEnterRunsSelectedCommand(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateForm || app.form.command.Label() != "add order" {
		t.Fatalf("first menu item should open add order")
	}
}

func TestAccentFromConfig(t *testing.T) {
	t.Setenv("ORDERBOOK_ACCENT", "#123456")
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	app := NewApp(orderbook.NewRegistry(), WithConfig(cfg))
	if got := app.theme.title.GetForeground(); got != lipgloss.Color("#123456") {
		t.Fatalf("accent = %v", got)
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	lb, err := logbook.New(filepath.Join(t.TempDir(), "journal.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	return NewApp(orderbook.NewRegistry(), WithLogbook(lb))
}

func mustAdd(t *testing.T, app *App, description, worker string, workload int) {
	t.Helper()
	if _, err := app.registry.AddOrder(description, worker, workload); err != nil {
		t.Fatalf("add order: %v", err)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, app *App, text string) *App {
	t.Helper()
	return press(t, app, keyRunes(text))
}

func press(t *testing.T, app *App, msg tea.KeyMsg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return next
}
