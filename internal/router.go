package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router declares routes. Route-level middleware listed on GET or POST
// runs in order, after every Use middleware of the enclosing groups.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)

	// Group scopes Use to the routes declared in fn.
	Group(fn func(r Router))
	// Route is Group with a path prefix.
	Route(prefix string, fn func(r Router))
	Use(mw ...Middleware)
}

type chiRouter struct {
	mux chi.Router
	app *App
}

func (r *chiRouter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, path, h, mw)
}

func (r *chiRouter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, path, h, mw)
}

func (r *chiRouter) handle(method, path string, h HandlerFunc, mw []Middleware) {
	h = chain(h, mw)
	r.mux.Method(method, path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.app.serve(w, req, h)
	}))
}

func (r *chiRouter) Group(fn func(Router)) {
	r.mux.Group(r.scoped(fn))
}

func (r *chiRouter) Route(prefix string, fn func(Router)) {
	r.mux.Route(prefix, r.scoped(fn))
}

func (r *chiRouter) scoped(fn func(Router)) func(chi.Router) {
	return func(sub chi.Router) {
		fn(&chiRouter{mux: sub, app: r.app})
	}
}

func (r *chiRouter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.mux.Use(r.app.adaptMiddleware(m))
	}
}

// chain wraps h so that mw[0] is the outermost.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// adaptMiddleware runs mw as chi middleware. Handler errors returned
// through mw are handled here; the next chi handler sees the request as
// mw left it, including Context.Set values.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.serve(w, r, mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}))
		})
	}
}
