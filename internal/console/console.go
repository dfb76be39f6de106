package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kingrea/orderbook/internal/logbook"
	"github.com/kingrea/orderbook/internal/orderbook"
)

// Console runs the numbered command loop over a line reader and writer.
type Console struct {
	registry *orderbook.Registry
	in       *bufio.Scanner
	out      io.Writer
	journal  *logbook.Logbook
}

// Option customizes a Console.
type Option func(*Console)

// WithJournal records command outcomes to the given logbook.
func WithJournal(book *logbook.Logbook) Option {
	return func(c *Console) {
		c.journal = book
	}
}

// New builds a console over the registry.
func New(registry *orderbook.Registry, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Run prints the help and loops until the exit command or end of input.
func (c *Console) Run() error {
	c.journal.Info("Console session opened")
	c.help()
	for {
		c.println("")
		line, ok := c.prompt("command: ")
		if !ok {
			break
		}
		cmd, known := ParseCommand(line)
		if !known {
			c.help()
			continue
		}
		if cmd == CommandExit {
			break
		}
		if !c.dispatch(cmd) {
			break
		}
	}
	c.journal.Info("Console session closed")
	return c.in.Err()
}

// dispatch runs one command and reports false when input ran out mid-way.
func (c *Console) dispatch(cmd Command) bool {
	switch cmd {
	case CommandAddOrder:
		return c.addOrder()
	case CommandFinished:
		c.listOrders(c.registry.FinishedOrders(), "no finished tasks")
	case CommandUnfinished:
		c.listOrders(c.registry.UnfinishedOrders(), "no unfinished tasks")
	case CommandMarkFinished:
		return c.markFinished()
	case CommandWorkers:
		for _, name := range c.registry.Workers() {
			c.println(name)
		}
	case CommandWorkerStatus:
		return c.workerStatus()
	}
	return true
}

func (c *Console) help() {
	c.println("commands: ")
	for _, cmd := range Commands {
		c.println(fmt.Sprintf("%s %s", cmd.Code(), cmd.Label()))
	}
}

func (c *Console) addOrder() bool {
	description, ok := c.prompt("description: ")
	if !ok {
		return false
	}
	line, ok := c.prompt("worker and workload estimate: ")
	if !ok {
		return false
	}
	worker, workload, err := ParseWorkerWorkload(line)
	if err != nil {
		c.reject(err)
		return true
	}
	id, err := c.registry.AddOrder(description, worker, workload)
	if err != nil {
		c.reject(err)
		return true
	}
	c.journal.Info("Order %d added · %s · %d h", id, worker, workload)
	c.println("added!")
	return true
}

func (c *Console) listOrders(orders []orderbook.Order, empty string) {
	if len(orders) == 0 {
		c.println(empty)
		return
	}
	for _, order := range orders {
		c.println(order.String())
	}
}

func (c *Console) markFinished() bool {
	line, ok := c.prompt("id: ")
	if !ok {
		return false
	}
	id, err := ParseID(line)
	if err != nil {
		c.reject(err)
		return true
	}
	if err := c.registry.MarkFinished(id); err != nil {
		c.reject(fmt.Errorf("mark %d finished: %w", id, err))
		return true
	}
	c.journal.Info("Order %d marked finished", id)
	c.println("marked as finished")
	return true
}

func (c *Console) workerStatus() bool {
	worker, ok := c.prompt("worker: ")
	if !ok {
		return false
	}
	status, err := c.registry.StatusOfWorker(worker)
	if err != nil {
		c.reject(fmt.Errorf("status of %q: %w", worker, err))
		return true
	}
	c.println(FormatStatus(status))
	return true
}

// FormatStatus renders a worker status line.
func FormatStatus(s orderbook.WorkerStatus) string {
	return fmt.Sprintf("tasks: finished %d not finished %d, hours: done %d scheduled %d",
		s.Finished, s.Unfinished, s.FinishedHours, s.UnfinishedHours)
}

func (c *Console) reject(err error) {
	c.journal.Warn("Rejected input: %v", err)
	c.println(ErrInvalidInput.Error())
	c.help()
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
