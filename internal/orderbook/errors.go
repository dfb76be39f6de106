package orderbook

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel wrapped by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrder is returned by AddOrder when its arguments break the
	// order invariants (a negative workload).
	ErrInvalidOrder = errors.New("invalid order")
)

// Kind identifies what a lookup failed to find.
type Kind string

const (
	KindOrder  Kind = "order"
	KindWorker Kind = "worker"
)

// NotFoundError reports a failed lookup of an order id or a worker name.
type NotFoundError struct {
	Kind Kind
	Key  any
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case KindOrder:
		return "order not found"
	case KindWorker:
		return "worker does not exist"
	default:
		return fmt.Sprintf("%s not found", e.Kind)
	}
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func orderNotFound(id int) error {
	return &NotFoundError{Kind: KindOrder, Key: id}
}

func workerNotFound(name string) error {
	return &NotFoundError{Kind: KindWorker, Key: name}
}

// IsOrderNotFound reports whether err is a failed order lookup.
func IsOrderNotFound(err error) bool {
	return isKind(err, KindOrder)
}

// IsWorkerNotFound reports whether err is a failed worker lookup.
func IsWorkerNotFound(err error) bool {
	return isKind(err, KindWorker)
}

func isKind(err error, kind Kind) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	return nf.Kind == kind
}
