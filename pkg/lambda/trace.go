package lambda

// Op identifies which core operation produced a trace event.
type Op int

const (
	OpUnknown Op = iota
	OpSubstitute
	OpApply
	OpReduce
)

func (o Op) String() string {
	switch o {
	case OpSubstitute:
		return "substitute"
	case OpApply:
		return "apply"
	case OpReduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// TraceEvent describes one completed core operation. Term is the primary
// input, With the secondary input (the replacement for substitute, the
// argument for apply, nil for reduce), Result the freshly built output.
type TraceEvent struct {
	Op     Op
	Term   Term
	With   Term
	Result Term
}

// TraceFunc observes core operations. The core never performs output
// itself; tracing happens only through a hook passed by the caller.
type TraceFunc func(TraceEvent)

func emit(tr TraceFunc, op Op, term, with, result Term) {
	if tr == nil {
		return
	}
	tr(TraceEvent{Op: op, Term: term, With: with, Result: result})
}

// Stats counts operations performed during a normalization run.
type Stats struct {
	Steps         uint64 // driver iterations
	Substitutions uint64
	Applies       uint64
	Reduces       uint64
}

// TotalOps returns the combined operation count, excluding driver steps.
func (s Stats) TotalOps() uint64 {
	return s.Substitutions + s.Applies + s.Reduces
}

func (s *Stats) observe(ev TraceEvent) {
	switch ev.Op {
	case OpSubstitute:
		s.Substitutions++
	case OpApply:
		s.Applies++
	case OpReduce:
		s.Reduces++
	}
}
