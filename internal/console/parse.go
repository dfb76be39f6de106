package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput marks a line that could not be turned into arguments.
var ErrInvalidInput = errors.New("erroneous input")

// Command is one of the numbered menu entries.
type Command int

const (
	CommandExit Command = iota
	CommandAddOrder
	CommandFinished
	CommandUnfinished
	CommandMarkFinished
	CommandWorkers
	CommandWorkerStatus
)

// Commands lists every command in menu order.
var Commands = []Command{
	CommandExit,
	CommandAddOrder,
	CommandFinished,
	CommandUnfinished,
	CommandMarkFinished,
	CommandWorkers,
	CommandWorkerStatus,
}

// Label is the help text for the command.
func (c Command) Label() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandAddOrder:
		return "add order"
	case CommandFinished:
		return "list finished tasks"
	case CommandUnfinished:
		return "list unfinished tasks"
	case CommandMarkFinished:
		return "mark task as finished"
	case CommandWorkers:
		return "workers"
	case CommandWorkerStatus:
		return "status of worker"
	default:
		return "unknown"
	}
}

// Code is the digit the user types for the command.
func (c Command) Code() string {
	return strconv.Itoa(int(c))
}

// ParseCommand maps a typed code to a command.
func ParseCommand(line string) (Command, bool) {
	code := strings.TrimSpace(line)
	for _, cmd := range Commands {
		if cmd.Code() == code {
			return cmd, true
		}
	}
	return 0, false
}

// ParseWorkerWorkload splits "worker workload" into its two parts. The line
// must hold exactly two single-space separated tokens, the worker token must
// not be empty and the workload must be a non-negative integer.
func ParseWorkerWorkload(line string) (string, int, error) {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), " ")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("expected \"worker workload\", got %q: %w", line, ErrInvalidInput)
	}
	workload, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("workload %q is not an integer: %w", parts[1], ErrInvalidInput)
	}
	if workload < 0 {
		return "", 0, fmt.Errorf("workload %d is negative: %w", workload, ErrInvalidInput)
	}
	return parts[0], workload, nil
}

// ParseID reads an order id.
func ParseID(line string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("id %q is not an integer: %w", strings.TrimSpace(line), ErrInvalidInput)
	}
	return id, nil
}
