package core

// ChoiceSet is an ephemeral menu of options constructed from a perception and
// mutated in place by evaluation. Like perceptions, choice sets have no
// lifecycle beyond a single Act invocation.
type ChoiceSet interface {
	// Evaluate attaches scores or utilities to the options in place. It must
	// be a pure function of the choice set's own fields (no environment side
	// effects) and idempotent: re-evaluating with unchanged inputs yields
	// unchanged scores.
	Evaluate() error
}

// TriggerFunc is the constructor shape for choice sets: given the agent and
// its perception, determine the reachable option set. Triggers must be
// deterministic given their inputs; randomness, if any, must come from an
// explicitly supplied source so replays stay reproducible.
type TriggerFunc[A Agent, P Perception, C ChoiceSet] func(agent A, perception P) (C, error)

// Option pairs an option value with the score attached during evaluation.
type Option[T any] struct {
	Value T
	Score float64
}

// Best returns the index of the highest-scoring option, or -1 for an empty
// slice. Ties resolve to the earliest option so outcomes do not depend on
// map iteration or other incidental order.
func Best[T any](options []Option[T]) int {
	best := -1
	for i, o := range options {
		if best < 0 || o.Score > options[best].Score {
			best = i
		}
	}
	return best
}
