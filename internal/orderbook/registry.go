package orderbook

import (
	"fmt"
	"sort"
	"sync"
)

// WorkerStatus aggregates one worker's orders by completion state.
type WorkerStatus struct {
	Finished        int
	Unfinished      int
	FinishedHours   int
	UnfinishedHours int
}

// Orders returns the total number of orders counted.
func (s WorkerStatus) Orders() int {
	return s.Finished + s.Unfinished
}

// Registry owns every order created in a session. Orders are kept in
// insertion order and are never removed or reordered.
type Registry struct {
	mu      sync.RWMutex
	orders  []Order
	workers map[string]struct{}
	nextID  int
}

// NewRegistry returns an empty registry whose first order gets id 1.
func NewRegistry() *Registry {
	return &Registry{
		workers: map[string]struct{}{},
		nextID:  1,
	}
}

// AddOrder records a new unfinished order and returns its id. Any worker
// name is accepted, including the empty string.
func (r *Registry) AddOrder(description, worker string, workload int) (int, error) {
	if workload < 0 {
		return 0, fmt.Errorf("orderbook: workload %d is negative: %w", workload, ErrInvalidOrder)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	order := newOrder(r.nextID, description, worker, workload)
	r.nextID++
	r.orders = append(r.orders, order)
	r.workers[worker] = struct{}{}
	return order.id, nil
}

// AllOrders returns a copy of every order in insertion order.
func (r *Registry) AllOrders() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Len returns the number of orders held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// Has reports whether an order with the given id exists.
func (r *Registry) Has(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// Workers returns the distinct worker names in lexicographic order.
func (r *Registry) Workers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.workers))
	for name := range r.workers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarkFinished marks the order with the given id finished. Marking an
// already finished order succeeds without change.
func (r *Registry) MarkFinished(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return orderNotFound(id)
	}
	r.orders[idx].MarkFinished()
	return nil
}

// FinishedOrders returns copies of the finished orders in insertion order.
func (r *Registry) FinishedOrders() []Order {
	return r.filter(true)
}

// UnfinishedOrders returns copies of the unfinished orders in insertion order.
func (r *Registry) UnfinishedOrders() []Order {
	return r.filter(false)
}

// StatusOfWorker counts the worker's orders and sums their workloads by
// completion state. A worker with no orders is reported as not found.
func (r *Registry) StatusOfWorker(worker string) (WorkerStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var status WorkerStatus
	for _, order := range r.orders {
		if order.worker != worker {
			continue
		}
		if order.finished {
			status.Finished++
			status.FinishedHours += order.workload
		} else {
			status.Unfinished++
			status.UnfinishedHours += order.workload
		}
	}
	if status.Orders() == 0 {
		return WorkerStatus{}, workerNotFound(worker)
	}
	return status, nil
}

func (r *Registry) filter(finished bool) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Order{}
	for _, order := range r.orders {
		if order.finished == finished {
			out = append(out, order)
		}
	}
	return out
}

// indexOf scans every held order; callers must hold the lock.
func (r *Registry) indexOf(id int) int {
	for i := range r.orders {
		if r.orders[i].id == id {
			return i
		}
	}
	return -1
}
