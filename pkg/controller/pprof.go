package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/gorilla/mux"
)

// RegisterPprof mounts the runtime profiling endpoints on router under prefix,
// e.g. "/debug/pprof". Named profiles such as heap or goroutine are served by
// the index handler.
func RegisterPprof(router *mux.Router, prefix string) {
	prefix = strings.TrimSuffix(prefix, "/")
	debug := router.PathPrefix(prefix).Subrouter()

	debug.HandleFunc("/cmdline", pprof.Cmdline).Methods(http.MethodGet)
	debug.HandleFunc("/profile", pprof.Profile).Methods(http.MethodGet)
	debug.HandleFunc("/symbol", pprof.Symbol).Methods(http.MethodGet, http.MethodPost)
	debug.HandleFunc("/trace", pprof.Trace).Methods(http.MethodGet)
	debug.PathPrefix("/").HandlerFunc(pprof.Index).Methods(http.MethodGet)
}
