// internal/tui/app.go
//
// This is the full-screen front-end for orderbook. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: the App struct below
// 2. Update: turns key presses into registry calls and screen changes
// 3. View: renders the current screen to a string
//
// The registry is only touched from Update, so every command runs to
// completion before the next key is handled.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/orderbook/internal/config"
	"github.com/kingrea/orderbook/internal/console"
	"github.com/kingrea/orderbook/internal/logbook"
	"github.com/kingrea/orderbook/internal/orderbook"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Numbered command menu
	stateForm                     // Collecting arguments for a command
	stateResult                   // Showing a listing or a worker status
)

const defaultAccent = "#5B8DEF"

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithConfig applies UI preferences from the loaded config.
func WithConfig(cfg *config.Config) AppOption {
	return func(a *App) {
		if cfg != nil {
			a.config = cfg
		}
	}
}

// WithLogbook journals command outcomes and shows the tail in a panel.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	config   *config.Config
	registry *orderbook.Registry
	logbook  *logbook.Logbook
	theme    theme

	// UI components
	mainMenu  list.Model
	form      *orderForm
	result    *resultView
	statusMsg string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	command console.Command
	desc    string
}

func (i menuItem) Title() string {
	return fmt.Sprintf("%s · %s", i.command.Code(), i.command.Label())
}
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.command.Label() }

// NewApp creates a new App over the given registry.
func NewApp(registry *orderbook.Registry, opts ...AppOption) *App {
	app := &App{
		state:    stateMainMenu,
		registry: registry,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	accent := defaultAccent
	if app.config != nil && strings.TrimSpace(app.config.Accent()) != "" {
		accent = app.config.Accent()
	}
	app.theme = newTheme(accent)

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 40, 20)
	mainMenu.Title = "⬡ ORDERS"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.SetShowHelp(false)
	app.mainMenu = mainMenu

	app.logInfo("TUI session opened")
	return app
}

// buildMainMenu lists the commands in the order the console help shows them,
// with exit last.
func buildMainMenu() []list.Item {
	descriptions := map[console.Command]string{
		console.CommandAddOrder:     "Record a description, worker and estimate",
		console.CommandFinished:     "Orders already done",
		console.CommandUnfinished:   "Orders still open",
		console.CommandMarkFinished: "Close an order by id",
		console.CommandWorkers:      "Everyone with at least one order",
		console.CommandWorkerStatus: "Counts and hours for one worker",
		console.CommandExit:         "Quit orderbook",
	}
	items := []list.Item{}
	for _, cmd := range console.Commands[1:] {
		items = append(items, menuItem{command: cmd, desc: descriptions[cmd]})
	}
	items = append(items, menuItem{command: console.CommandExit, desc: descriptions[console.CommandExit]})
	return items
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(20, msg.Width/2), max(8, msg.Height-14))
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			a.logInfo("TUI session closed")
			return a, tea.Quit
		}
		switch a.state {
		case stateMainMenu:
			return a.handleMenuKey(msg)
		case stateForm:
			return a.handleFormKey(msg)
		case stateResult:
			switch key {
			case "esc", "enter", "q":
				return a.returnToMainMenu()
			}
			if cmd, ok := console.ParseCommand(key); ok {
				return a.runCommand(cmd)
			}
			return a, nil
		}
	}

	return a, nil
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return a.runCommand(console.CommandExit)
	case "enter":
		item, ok := a.mainMenu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		return a.runCommand(item.command)
	}
	if cmd, ok := console.ParseCommand(key); ok {
		return a.runCommand(cmd)
	}
	var menuCmd tea.Cmd
	a.mainMenu, menuCmd = a.mainMenu.Update(msg)
	return a, menuCmd
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		return a.returnToMainMenu()
	}
	switch msg.String() {
	case "esc":
		a.statusMsg = "Cancelled"
		return a.returnToMainMenu()
	case "tab", "down":
		return a, a.form.next()
	case "shift+tab", "up":
		return a, a.form.prev()
	case "enter":
		if !a.form.onLast() {
			return a, a.form.next()
		}
		return a.submitForm()
	}
	return a, a.form.update(msg)
}

// runCommand starts the numbered command the user picked.
func (a *App) runCommand(cmd console.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case console.CommandExit:
		a.logInfo("TUI session closed")
		return a, tea.Quit
	case console.CommandAddOrder, console.CommandMarkFinished, console.CommandWorkerStatus:
		a.form = newOrderForm(cmd)
		a.state = stateForm
		a.statusMsg = fmt.Sprintf("%s · enter to continue, esc to cancel", cmd.Label())
		return a, a.form.focus(0)
	case console.CommandFinished:
		a.showOrders("Finished orders", a.registry.FinishedOrders(), "no finished tasks")
	case console.CommandUnfinished:
		a.showOrders("Unfinished orders", a.registry.UnfinishedOrders(), "no unfinished tasks")
	case console.CommandWorkers:
		workers := a.registry.Workers()
		a.showLines("Workers", workers, "no workers yet")
	}
	return a, nil
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	form := a.form
	values := form.values()
	switch form.command {
	case console.CommandAddOrder:
		worker, workload, err := console.ParseWorkerWorkload(values[1])
		if err != nil {
			return a.rejectInput(err)
		}
		id, err := a.registry.AddOrder(values[0], worker, workload)
		if err != nil {
			return a.rejectInput(err)
		}
		a.logInfo("Order %d added · %s · %d h", id, worker, workload)
		a.statusMsg = fmt.Sprintf("added! order %d for %s", id, worker)
		return a.returnToMainMenu()

	case console.CommandMarkFinished:
		id, err := console.ParseID(values[0])
		if err != nil {
			return a.rejectInput(err)
		}
		if err := a.registry.MarkFinished(id); err != nil {
			return a.rejectInput(fmt.Errorf("mark %d finished: %w", id, err))
		}
		a.logInfo("Order %d marked finished", id)
		a.statusMsg = fmt.Sprintf("marked order %d as finished", id)
		return a.returnToMainMenu()

	case console.CommandWorkerStatus:
		worker := values[0]
		status, err := a.registry.StatusOfWorker(worker)
		if err != nil {
			return a.rejectInput(fmt.Errorf("status of %q: %w", worker, err))
		}
		a.showLines(fmt.Sprintf("Status · %s", worker), []string{console.FormatStatus(status)}, "")
		return a, nil
	}
	return a.returnToMainMenu()
}

// rejectInput keeps the form open so the user can correct the entry.
func (a *App) rejectInput(err error) (tea.Model, tea.Cmd) {
	a.logWarn("Rejected input: %v", err)
	a.statusMsg = console.ErrInvalidInput.Error()
	return a, nil
}

func (a *App) showOrders(title string, orders []orderbook.Order, empty string) {
	a.result = &resultView{title: title, orders: orders, empty: empty, isOrders: true}
	a.state = stateResult
	a.form = nil
	a.statusMsg = "enter or esc → back to menu"
}

func (a *App) showLines(title string, lines []string, empty string) {
	a.result = &resultView{title: title, lines: lines, empty: empty}
	a.state = stateResult
	a.form = nil
	a.statusMsg = "enter or esc → back to menu"
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	a.form = nil
	a.result = nil
	return a, nil
}
