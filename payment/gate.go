package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/paidform/pkg/cache"
	"github.com/dmitrymomot/paidform/pkg/logger"
	"github.com/dmitrymomot/paidform/pkg/paypal"
)

const captureTimeout = 30 * time.Second

// Processor is the hosted payment provider behind the gate.
type Processor interface {
	CreateOrder(ctx context.Context, amount paypal.Amount, customID string) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// Gate tracks whether each form session has paid.
//
//	NotStarted -> Approved -> Completed
//	    ^            |
//	    +--failure---+
//
// Completed holds until Reset after a successful submission.
type Gate struct {
	store     cache.Cache[State]
	processor Processor
	logger    *slog.Logger
	now       func() time.Time
	captures  singleflight.Group
	config    Config
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the gate logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) { g.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a Gate storing per-session state in store.
func NewGate(store cache.Cache[State], processor Processor, cfg Config, opts ...Option) *Gate {
	g := &Gate{
		store:     store,
		processor: processor,
		config:    cfg,
		logger:    logger.NewNope(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Price returns the fixed charge.
func (g *Gate) Price() paypal.Amount {
	return paypal.Amount{CurrencyCode: g.config.Currency, Value: g.config.Amount}
}

// CreateOrder asks the provider for a CAPTURE order at the fixed price,
// tagged with the session ID as custom_id. Session state is not touched.
func (g *Gate) CreateOrder(ctx context.Context, sessionID string) (*paypal.Order, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	order, err := g.processor.CreateOrder(ctx, g.Price(), sessionID)
	if err != nil {
		g.logger.ErrorContext(ctx, "create order failed", slog.String("error", err.Error()))
		return nil, errors.Join(ErrCreateOrderFailed, err)
	}
	g.logger.InfoContext(ctx, "order created", slog.String("order_id", order.ID))
	return order, nil
}

// Approve handles buyer approval of orderID: the order must belong to the
// session and carry the fixed price, then the session moves to Approved, the
// order is captured, and the session ends Completed on success or NotStarted
// on failure. Concurrent approvals of one order by one session share a single
// capture call. A session that is already Completed is returned as is.
func (g *Gate) Approve(ctx context.Context, sessionID, orderID string) (State, error) {
	if sessionID == "" {
		return State{}, ErrMissingSession
	}
	if orderID == "" {
		return State{}, ErrMissingOrderID
	}

	if cur, err := g.State(ctx, sessionID); err != nil {
		return State{}, err
	} else if cur.Completed() {
		return cur, nil
	}

	order, err := g.processor.GetOrder(ctx, orderID)
	if err != nil {
		g.logger.WarnContext(ctx, "order lookup failed",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return State{Status: StatusNotStarted}, errors.Join(ErrCaptureFailed, err)
	}
	if err := g.verify(order, sessionID, false); err != nil {
		g.logger.WarnContext(ctx, "order rejected before capture",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return State{Status: StatusNotStarted}, errors.Join(ErrCaptureFailed, err)
	}

	approved, err := g.store.Update(ctx, sessionID, g.config.StateTTL, func(cur State, _ bool) (State, error) {
		if cur.Completed() {
			return cur, errAlreadyCompleted
		}
		return State{Status: StatusApproved, OrderID: orderID, UpdatedAt: g.now()}, nil
	})
	if errors.Is(err, errAlreadyCompleted) {
		return approved, nil
	}
	if err != nil {
		return State{}, errors.Join(ErrStateUnavailable, err)
	}

	v, err, shared := g.captures.Do(sessionID+"/"+orderID, func() (any, error) {
		// Capture outlives the caller so state matches the provider.
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), captureTimeout)
		defer cancel()
		return g.processor.CaptureOrder(cctx, orderID)
	})
	if err != nil {
		g.logger.WarnContext(ctx, "capture failed",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		g.abandon(ctx, sessionID, orderID)
		return State{Status: StatusNotStarted}, errors.Join(ErrCaptureFailed, err)
	}

	captured, _ := v.(*paypal.Order)
	if err := g.verify(captured, sessionID, true); err != nil {
		g.logger.ErrorContext(ctx, "captured order does not match session, refund required",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		g.abandon(ctx, sessionID, orderID)
		return State{Status: StatusNotStarted}, errors.Join(ErrCaptureFailed, err)
	}

	completed := State{Status: StatusCompleted, OrderID: orderID, CaptureID: captured.CaptureID()}
	st, err := g.transition(ctx, sessionID, orderID, completed)
	if errors.Is(err, ErrStaleOrder) {
		g.logger.WarnContext(ctx, "capture finished for a replaced order",
			slog.String("order_id", orderID),
			slog.String("current_order_id", st.OrderID),
		)
		return st, err
	}
	if err != nil {
		return State{}, errors.Join(ErrStateUnavailable, err)
	}

	g.logger.InfoContext(ctx, "payment completed",
		slog.String("order_id", orderID),
		slog.String("capture_id", completed.CaptureID),
		slog.Bool("shared_capture", shared),
	)
	return st, nil
}

// verify checks that order was created for sessionID at the fixed price.
// Before capture the purchase unit amount is checked; after capture the
// captured amount is, and a missing custom_id is tolerated since ownership
// was already checked.
func (g *Gate) verify(order *paypal.Order, sessionID string, captured bool) error {
	if order == nil {
		return fmt.Errorf("%w: empty order", ErrOrderMismatch)
	}
	if id := order.CustomID(); id != sessionID && (id != "" || !captured) {
		return fmt.Errorf("%w: order belongs to another session", ErrOrderMismatch)
	}
	amount, ok := order.UnitAmount()
	if captured {
		amount, ok = order.CapturedAmount()
	}
	if !ok {
		return fmt.Errorf("%w: no amount", ErrOrderMismatch)
	}
	if price := g.Price(); !amount.Equal(price) {
		return fmt.Errorf("%w: amount %s %s, want %s %s", ErrOrderMismatch,
			amount.Value, amount.CurrencyCode, price.Value, price.CurrencyCode)
	}
	return nil
}

// abandon returns the session to NotStarted if it still tracks orderID.
func (g *Gate) abandon(ctx context.Context, sessionID, orderID string) {
	_, err := g.transition(ctx, sessionID, orderID, State{Status: StatusNotStarted})
	if err != nil && !errors.Is(err, ErrStaleOrder) {
		g.logger.ErrorContext(ctx, "reset after failed capture", slog.String("error", err.Error()))
	}
}

// Fail records a widget-side error. State is left unchanged.
func (g *Gate) Fail(ctx context.Context, sessionID string, cause string) {
	g.logger.WarnContext(ctx, "payment widget error",
		slog.Bool("has_session", sessionID != ""),
		slog.String("cause", cause),
	)
}

// State returns the session's current state; unknown sessions are NotStarted.
func (g *Gate) State(ctx context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		return State{Status: StatusNotStarted}, nil
	}
	st, err := g.store.Get(ctx, sessionID)
	if errors.Is(err, cache.ErrNotFound) {
		return State{Status: StatusNotStarted}, nil
	}
	if err != nil {
		return State{}, errors.Join(ErrStateUnavailable, err)
	}
	st.Status = st.status()
	return st, nil
}

// Require returns the completed state or ErrNotCompleted.
func (g *Gate) Require(ctx context.Context, sessionID string) (State, error) {
	st, err := g.State(ctx, sessionID)
	if err != nil {
		return st, err
	}
	if !st.Completed() {
		return st, ErrNotCompleted
	}
	return st, nil
}

// Reset returns the session to NotStarted after a successful submission.
func (g *Gate) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := g.store.Delete(ctx, sessionID); err != nil {
		return errors.Join(ErrStateUnavailable, err)
	}
	return nil
}

var errAlreadyCompleted = errors.New("payment: already completed")

// transition sets next only while the session still tracks orderID.
// Otherwise the current state is returned with ErrStaleOrder.
func (g *Gate) transition(ctx context.Context, sessionID, orderID string, next State) (State, error) {
	next.UpdatedAt = g.now()
	st, err := g.store.Update(ctx, sessionID, g.config.StateTTL, func(cur State, _ bool) (State, error) {
		if cur.OrderID != orderID {
			return cur, ErrStaleOrder
		}
		return next, nil
	})
	return st, err
}
