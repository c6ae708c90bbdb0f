// Package notify fans an order-created event out to independent notification
// handlers. Notification is strictly best-effort: the order row is the durable
// fact, and no handler failure may unwind or mask a successful submission.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/safar/storefront/internal/models"
	"go.uber.org/zap"
)

// Event describes a freshly persisted order. BaseURL is the storefront origin
// used for links back into the admin dashboard.
type Event struct {
	Order   *models.Order
	BaseURL string
}

// Handler delivers one notification for an order-created event. Each handler
// is its own failure domain.
type Handler interface {
	Name() string
	Notify(ctx context.Context, ev Event) error
}

// Result is the soft outcome reported back to the submission response.
type Result struct {
	Sent bool
	Err  string
}

type Dispatcher struct {
	handlers []Handler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger, handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers, logger: logger}
}

// OrderCreated runs every handler once, in order, awaiting each. Failures are
// logged with full detail and aggregated into the Result; they are never
// returned as errors. There is no retry.
func (d *Dispatcher) OrderCreated(ctx context.Context, ev Event) Result {
	if len(d.handlers) == 0 {
		d.logger.Info("no notification handlers configured, skipping",
			zap.String("order_number", ev.Order.OrderNumber))
		return Result{}
	}

	var failures []string
	for _, h := range d.handlers {
		if err := h.Notify(ctx, ev); err != nil {
			d.logger.Error("notification handler failed",
				zap.String("handler", h.Name()),
				zap.String("order_number", ev.Order.OrderNumber),
				zap.Error(err))
			failures = append(failures, fmt.Sprintf("%s: %s", h.Name(), err))
			continue
		}
		d.logger.Info("notification sent",
			zap.String("handler", h.Name()),
			zap.String("order_number", ev.Order.OrderNumber))
	}

	if len(failures) > 0 {
		return Result{Sent: false, Err: strings.Join(failures, "; ")}
	}
	return Result{Sent: true}
}
