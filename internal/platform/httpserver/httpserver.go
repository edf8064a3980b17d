// Package httpserver configures the http.Server the caseflow entry point
// runs. Timeouts are sized for short ledger-read request cycles.
package httpserver

import (
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	// Evaluations and summaries are bounded by two ledger reads; anything
	// slower should be cut off rather than pile up.
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// New builds the server for the given listen address and root handler.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
