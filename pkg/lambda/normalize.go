package lambda

// Option configures a Normalize run.
type Option func(*config)

type config struct {
	maxSteps int
	stop     func(Term) bool
	trace    TraceFunc
	step     func(n int, t Term)
}

// WithMaxSteps bounds the number of driver iterations. Zero or negative
// means unbounded, which is the default: the core itself imposes no limit,
// so a term with no normal form keeps the loop running until an external
// bound kicks in.
func WithMaxSteps(n int) Option {
	return func(c *config) { c.maxSteps = n }
}

// WithStop installs a predicate checked against the current term before
// each step; when it returns true the run stops there.
func WithStop(stop func(Term) bool) Option {
	return func(c *config) { c.stop = stop }
}

// WithTrace installs a hook observing every Substitute, Apply and Reduce
// performed during the run.
func WithTrace(tr TraceFunc) Option {
	return func(c *config) { c.trace = tr }
}

// WithStepFunc installs a callback invoked after each driver iteration
// with the step number (starting at 1) and the new current term.
func WithStepFunc(fn func(n int, t Term)) Option {
	return func(c *config) { c.step = fn }
}

// Normalize drives start to beta-normal form by repeated reduction,
// stopping when one more Reduce leaves the canonical rendering unchanged.
// The returned Stats record how much work the run performed.
func Normalize(start Term, opts ...Option) (Term, Stats) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats Stats
	tr := func(ev TraceEvent) {
		stats.observe(ev)
		if cfg.trace != nil {
			cfg.trace(ev)
		}
	}

	current := start
	rendering := current.Render()
	for steps := 0; cfg.maxSteps <= 0 || steps < cfg.maxSteps; steps++ {
		if cfg.stop != nil && cfg.stop(current) {
			break
		}
		next := reduce(current, tr)
		nextRendering := next.Render()
		if nextRendering == rendering {
			break
		}
		current, rendering = next, nextRendering
		stats.Steps++
		if cfg.step != nil {
			cfg.step(int(stats.Steps), current)
		}
	}
	return current, stats
}
