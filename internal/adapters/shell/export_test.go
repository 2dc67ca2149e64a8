package shell

// ResolveEnvironment exposes resolveEnvironment for tests.
var ResolveEnvironment = resolveEnvironment

// LookPath exposes lookPath for tests.
var LookPath = lookPath

// NewExecutorWithEnviron creates an Executor with a fixed system environment.
func NewExecutorWithEnviron(env []string) *Executor {
	return &Executor{environ: func() []string { return env }}
}
