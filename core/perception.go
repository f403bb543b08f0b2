package core

import "fmt"

// Perception is an agent's ephemeral view of the environment, produced fresh
// each cycle. It is not registered and not addressable by id; it exists only
// for the duration of one Act invocation.
//
// Construction is two-phase: an ExtractFunc populates the perception from
// environment truth, then Distort mutates the perception's own fields to
// introduce agent-specific bias or noise. Distort must not read or write
// environment state; its only legitimate inputs are the agent's declared bias
// parameters and the perception's current fields. Extraction always precedes
// distortion.
type Perception interface {
	// Distort mutates the perception in place using the agent's bias
	// parameters.
	Distort(agent Agent) error
}

// ExtractFunc builds a perception from environment truth. It must not mutate
// the environment or the agent.
type ExtractFunc[A Agent, P Perception] func(agent A, env Environment) (P, error)

// Perceive composes the two perception phases: extract, then distort. Every
// concrete perception type routes through this entry point so the ordering
// guarantee holds for all agents.
func Perceive[A Agent, P Perception](agent A, env Environment, extract ExtractFunc[A, P]) (P, error) {
	var zero P

	perception, err := extract(agent, env)
	if err != nil {
		return zero, fmt.Errorf("extract: %w", err)
	}

	if err := perception.Distort(agent); err != nil {
		return zero, fmt.Errorf("distort: %w", err)
	}

	return perception, nil
}
