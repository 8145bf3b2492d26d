package internal

// Handler declares routes on a router.
//
//	type PaymentHandler struct{ gate *payment.Gate }
//
//	func (h *PaymentHandler) Routes(r paidform.Router) {
//	    r.POST("/api/orders", h.createOrder)
//	    r.POST("/api/orders/{id}/capture", h.capture)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A non-nil error is passed to the
// app's ErrorHandler unless a response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
