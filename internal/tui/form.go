package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/orderbook/internal/console"
)

type formField struct {
	label       string
	placeholder string
}

var formFields = map[console.Command][]formField{
	console.CommandAddOrder: {
		{label: "description", placeholder: "Fix login bug"},
		{label: "worker and workload estimate", placeholder: "alice 5"},
	},
	console.CommandMarkFinished: {
		{label: "id", placeholder: "1"},
	},
	console.CommandWorkerStatus: {
		{label: "worker", placeholder: "alice"},
	},
}

// orderForm collects the arguments for one command, one line per field.
type orderForm struct {
	command console.Command
	labels  []string
	inputs  []textinput.Model
	active  int
}

func newOrderForm(cmd console.Command) *orderForm {
	fields := formFields[cmd]
	form := &orderForm{command: cmd}
	for _, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.Prompt = "› "
		input.CharLimit = 256
		form.labels = append(form.labels, field.label)
		form.inputs = append(form.inputs, input)
	}
	return form
}

func (f *orderForm) focus(idx int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.inputs) {
		idx = len(f.inputs) - 1
	}
	f.inputs[f.active].Blur()
	f.active = idx
	return f.inputs[f.active].Focus()
}

func (f *orderForm) next() tea.Cmd { return f.focus(f.active + 1) }

func (f *orderForm) prev() tea.Cmd { return f.focus(f.active - 1) }

func (f *orderForm) onLast() bool { return f.active >= len(f.inputs)-1 }

func (f *orderForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return cmd
}

func (f *orderForm) values() []string {
	out := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		out[i] = input.Value()
	}
	return out
}

func (f *orderForm) View(t theme) string {
	lines := []string{t.title.Render(f.command.Label()), ""}
	for i, input := range f.inputs {
		label := f.labels[i] + ":"
		if i == f.active {
			label = t.accent.Render(label)
		} else {
			label = t.muted.Render(label)
		}
		lines = append(lines, label, input.View(), "")
	}
	lines = append(lines, t.muted.Render("enter=next/submit  tab=switch field  esc=cancel"))
	return strings.Join(lines, "\n")
}
