package api

// Outcome tells where the value of a Result came from
type Outcome int

const (
	// OutcomeRemote means the backend answered
	OutcomeRemote Outcome = iota
	// OutcomeDegraded means a local substitute was served
	OutcomeDegraded
	// OutcomeIgnored means the failure was swallowed and there is no value
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRemote:
		return "remote"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Result is the return value of operations that have a fallback.
// Err holds the request error that triggered the fallback, if any.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

// Remote reports whether the value came from the backend
func (r Result[T]) Remote() bool {
	return r.Outcome == OutcomeRemote
}

func remote[T any](v T) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeRemote}
}

func degraded[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Outcome: OutcomeDegraded, Err: err}
}

func ignored[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeIgnored, Err: err}
}
