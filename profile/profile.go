package profile

// Profiler describes one profiling session.
type Profiler struct {
	Mode  string // One of [Modes]; empty disables profiling
	Path  string // Output directory; empty uses the working directory
	Quiet bool   // Suppress pkg/profile's own log output
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling as described by p.
//
// Start returns a no-op [Stopper] when p.Mode is empty or unknown, or when
// built without the pprof tag. Both Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
