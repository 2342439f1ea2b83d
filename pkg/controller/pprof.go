package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a mux exposing the runtime profiling endpoints. Mount it
// under /debug/pprof/ in the main server; pprof.Index resolves named profiles
// (heap, goroutine, ...) from the request path itself.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	mux.HandleFunc("/", pprof.Index)

	return mux
}
