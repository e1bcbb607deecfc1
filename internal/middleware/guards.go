package middleware

import "net/http"

// RouteGuards wraps single routes with the owner gate and the contract send rate limit.
// A nil guard lets the request through. Preflight requests are answered by the guard
// chain and never reach the handler.
type RouteGuards struct {
	OwnerOnly func(next http.Handler) http.Handler
	SendLimit func(next http.Handler) http.Handler
}

// Owner guards a route only the blog owner may use.
func (g RouteGuards) Owner(h http.HandlerFunc) http.Handler {
	return Preflight(wrap(h, g.OwnerOnly))
}

// Send guards a route that sends a contract transaction.
func (g RouteGuards) Send(h http.HandlerFunc) http.Handler {
	return Preflight(wrap(h, g.SendLimit))
}

// OwnerSend guards an owner route that sends a contract transaction.
// The owner check runs first.
func (g RouteGuards) OwnerSend(h http.HandlerFunc) http.Handler {
	return Preflight(wrap(wrap(h, g.SendLimit), g.OwnerOnly))
}

// Preflight answers OPTIONS requests with the allowed methods.
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			writePreflight(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writePreflight(w http.ResponseWriter) {
	w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	w.WriteHeader(http.StatusOK)
}

func wrap(h http.Handler, mw func(next http.Handler) http.Handler) http.Handler {
	if mw == nil {
		return h
	}
	return mw(h)
}
