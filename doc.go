// Package paidform serves a single-page request form that takes a fixed
// PayPal payment before the request is emailed to the owner.
//
// The package is the public face of the HTTP kernel: type aliases for
// [App], [Context], [Router] and friends, the option functions used to
// build an App, [Config] and [HandleError].
//
//	cfg, err := paidform.LoadConfig(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app := paidform.New(
//	    paidform.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    paidform.WithHandlers(
//	        handlers.NewPage(gate, cfg.Payment, cfg.PayPal.ClientID),
//	        handlers.NewPayment(gate, cfg.Payment, cfg.PayPal.ClientID),
//	        handlers.NewSubmit(gate, relay),
//	    ),
//	    paidform.WithErrorHandler(paidform.HandleError),
//	)
//
//	err = app.Run(cfg.Addr)
//
// # Handlers
//
// Handlers implement [Handler] to declare routes:
//
//	func (h *Payment) Routes(r paidform.Router) {
//	    r.Route("/api", func(r paidform.Router) {
//	        r.POST("/orders", h.createOrder)
//	    })
//	}
//
// # Errors
//
// Handlers return errors instead of writing them. [HandleError] turns
// *HTTPError values, validation errors, timeouts and panics into a toast
// for HTMX requests, {"error": "..."} for /api routes and plain text
// elsewhere.
//
// # Shutdown
//
// Run stops on SIGINT/SIGTERM and runs ShutdownHook functions in order:
//
//	app.Run(cfg.Addr, paidform.ShutdownHook(redis.Shutdown(client)))
package paidform
