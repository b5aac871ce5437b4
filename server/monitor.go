package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/pprof"
	"sync/atomic"
)

// runtimeMonitor writes runtime information about the server.
type runtimeMonitor struct {
	// sessions is the number of boards being played.
	sessions *atomic.Int64
}

// ServeHTTP writes runtime information to the response.
func (rm runtimeMonitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m := new(runtime.MemStats)
	runtime.ReadMemStats(m)
	p := pprof.Lookup("goroutine")
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	writeMemoryStats(w, m)
	fmt.Fprintln(w)
	rm.writeGoroutineExpectations(w)
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
func (rm runtimeMonitor) writeGoroutineExpectations(w io.Writer) {
	fmt.Fprintln(w, "--- Goroutine Expectations ---")
	fmt.Fprintln(w, "Five (5) goroutines are expected on an idling server.")
	fmt.Fprintln(w, "* a goroutine listening for interrupt/termination signals so the server can stop gracefully")
	fmt.Fprintln(w, "* a goroutine to run the http server")
	fmt.Fprintln(w, "* a goroutine to serve the monitor request")
	fmt.Fprintln(w, "* a goroutine to run the main procedure")
	fmt.Fprintln(w, "* a goroutine to write profiling information about goroutines")
	fmt.Fprintln(w, "SQL and mongo databases add goroutines to manage their connection pools.")
	var n int64
	if rm.sessions != nil {
		n = rm.sessions.Load()
	}
	fmt.Fprintln(w, "Boards being played:", n)
	fmt.Fprintln(w, "Each board being played should have four (4) goroutines: one to serve the request, one to play the board, and two to read and write websocket messages.")
}

// writeGoroutineStackTraces writes the goroutine runtime profile's stack traces.
func writeGoroutineStackTraces(w io.Writer, p *pprof.Profile) {
	fmt.Fprintln(w, "--- Goroutine Stack Traces ---")
	p.WriteTo(w, 1)
}
