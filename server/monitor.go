package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/pprof"
)

// runtimeMonitor writes runtime information about the server.
type runtimeMonitor struct {
	hasTLS bool
}

// ServeHTTP writes memory statistics and goroutine information to the response.
func (m runtimeMonitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ms := new(runtime.MemStats)
	runtime.ReadMemStats(ms)
	p := pprof.Lookup("goroutine")
	writeMemoryStats(w, ms)
	fmt.Fprintln(w)
	m.writeGoroutineExpectations(w)
	fmt.Fprintln(w)
	writeGoroutineStackTraces(w, p)
}

// writeMemoryStats writes the memory runtime statistics of the server.
func writeMemoryStats(w io.Writer, m *runtime.MemStats) {
	fmt.Fprintln(w, "--- Memory Stats ---")
	fmt.Fprintln(w, "Alloc (bytes on heap)", m.Alloc)
	fmt.Fprintln(w, "TotalAlloc (total heap size)", m.TotalAlloc)
	fmt.Fprintln(w, "Sys (bytes used to run server)", m.Sys)
	fmt.Fprintln(w, "Live object count (Mallocs - Frees)", m.Mallocs-m.Frees)
}

// writeGoroutineExpectations writes a message about the expected goroutines.
func (m runtimeMonitor) writeGoroutineExpectations(w io.Writer) {
	fmt.Fprintln(w, "--- Goroutine Expectations ---")
	switch {
	case m.hasTLS:
		fmt.Fprintln(w, "Six (6) goroutines are expected on an idling server.")
		fmt.Fprintln(w, "Note that the tls goroutine creates extra threads for each tls connection.")
		fmt.Fprintln(w, "* a goroutine to handle tls connections")
		fmt.Fprintln(w, "* a goroutine to run the http server that redirects to https")
	default:
		fmt.Fprintln(w, "Four (4) goroutines are expected on an idling server.")
	}
	fmt.Fprintln(w, "* a goroutine listening for interrupt/termination signals so the server can stop gracefully")
	fmt.Fprintln(w, "* a goroutine to run the https server")
	fmt.Fprintln(w, "* a goroutine to run the main procedure")
	fmt.Fprintln(w, "* a goroutine to write profiling information about goroutines")
	fmt.Fprintln(w, "Each request renders the board on the goroutine that serves it.")
}

// writeGoroutineStackTraces writes the goroutine runitme profile's stack traces.
func writeGoroutineStackTraces(w io.Writer, p *pprof.Profile) {
	fmt.Fprintln(w, "--- Goroutine Stack Traces ---")
	p.WriteTo(w, 1)
}
