package core

import "fmt"

// Agent is a registrable entity with a decision cycle. Each invocation of the
// cycle runs four ordered phases with no state persisted between invocations:
//
//  1. Perceive:      build an ephemeral view of the environment (§ perception
//     contract: objective extraction followed by agent-specific distortion).
//  2. TriggerChoice: construct the menu of options reachable from the
//     perception. Must not mutate the environment.
//  3. Evaluate:      score the options in place (driven by the choice set).
//  4. Choose:        act on the evaluated options. The only phase permitted
//     to mutate shared state.
//
// Act composes the phases in this fixed order; implementations supply phases
// 1, 2 and 4 and typically delegate 3 to the choice set they construct.
type Agent interface {
	Registrable

	// Perceive builds the agent's view of the environment for this cycle.
	Perceive(env Environment) (Perception, error)

	// TriggerChoice constructs the option menu available given the
	// perception. It must not mutate the environment.
	TriggerChoice(perception Perception) (ChoiceSet, error)

	// Choose acts on the evaluated options. All effects are side effects on
	// the registry's live entities; there is no return value beyond failure.
	Choose(options ChoiceSet, perception Perception) error
}

// Act runs one full decision cycle for the agent. A structural failure in any
// phase aborts the cycle and propagates to the caller; silently skipping an
// agent would leave that step's report set incomplete.
func Act(a Agent, env Environment) error {
	perception, err := a.Perceive(env)
	if err != nil {
		return fmt.Errorf("perceive: %w", err)
	}

	options, err := a.TriggerChoice(perception)
	if err != nil {
		return fmt.Errorf("trigger choice: %w", err)
	}

	if err := options.Evaluate(); err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if err := a.Choose(options, perception); err != nil {
		return fmt.Errorf("choose: %w", err)
	}

	return nil
}
