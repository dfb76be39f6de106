package orderbook

import "fmt"

// Order is one unit of work assigned to a worker. Identity fields are fixed
// at construction; only the completion flag changes, and only once.
type Order struct {
	id          int
	description string
	worker      string
	workload    int
	finished    bool
}

func newOrder(id int, description, worker string, workload int) Order {
	return Order{
		id:          id,
		description: description,
		worker:      worker,
		workload:    workload,
	}
}

// ID returns the sequential identifier assigned by the registry.
func (o Order) ID() int { return o.id }

// Description returns the free-text description of the work.
func (o Order) Description() string { return o.description }

// Worker returns the assignee name.
func (o Order) Worker() string { return o.worker }

// Workload returns the estimated hours.
func (o Order) Workload() int { return o.workload }

// IsFinished reports whether the order has been marked finished.
func (o Order) IsFinished() bool { return o.finished }

// MarkFinished sets the order finished. Calling it again is a no-op.
func (o *Order) MarkFinished() { o.finished = true }

// String renders the order for listings.
func (o Order) String() string {
	state := "NOT FINISHED"
	if o.finished {
		state = "FINISHED"
	}
	return fmt.Sprintf("%d: %s (%d hours), worker %s %s", o.id, o.description, o.workload, o.worker, state)
}
