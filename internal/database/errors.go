package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The unique index on orders.order_number is the
// only concurrency-correctness mechanism for duplicate submissions, so racing
// inserts are resolved here rather than by in-process locking.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrProductNotFound)
}
