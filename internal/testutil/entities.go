package testutil

import (
	"fmt"

	"github.com/simweave/simweave/core"
)

// StubAsset is a passive entity carrying a numeric value and optional
// declared references.
type StubAsset struct {
	core.Entity
	Value float64
	Refs  []core.Ident
}

// NewStubAsset builds a StubAsset of kind "StubAsset". Panics on invalid raw
// ids; fixtures use literals.
func NewStubAsset(raw string, refs ...core.Ident) *StubAsset {
	e, err := core.NewEntity("StubAsset", raw)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return &StubAsset{Entity: e, Refs: refs}
}

// References returns the declared dependencies.
func (a *StubAsset) References() []core.Ident { return a.Refs }

// Report extends the base snapshot with the asset's value.
func (a *StubAsset) Report() core.Snapshot {
	return a.Entity.Report().Extend(a.Kind(), core.Fields{"value": a.Value})
}

// NopPerception is a perception with no distortion.
type NopPerception struct{}

// Distort implements core.Perception.
func (NopPerception) Distort(core.Agent) error { return nil }

// NopChoices is a choice set whose evaluation does nothing.
type NopChoices struct{}

// Evaluate implements core.ChoiceSet.
func (NopChoices) Evaluate() error { return nil }

// FuncAgent scripts the cycle phases with function fields; nil fields fall
// back to no-op behavior so tests only wire what they assert on.
type FuncAgent struct {
	core.Entity
	PerceiveFn func(env core.Environment) (core.Perception, error)
	TriggerFn  func(p core.Perception) (core.ChoiceSet, error)
	ChooseFn   func(o core.ChoiceSet, p core.Perception) error
}

// NewFuncAgent builds a FuncAgent of kind "FuncAgent".
func NewFuncAgent(raw string) *FuncAgent {
	e, err := core.NewEntity("FuncAgent", raw)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return &FuncAgent{Entity: e}
}

// Perceive implements core.Agent.
func (a *FuncAgent) Perceive(env core.Environment) (core.Perception, error) {
	if a.PerceiveFn != nil {
		return a.PerceiveFn(env)
	}
	return NopPerception{}, nil
}

// TriggerChoice implements core.Agent.
func (a *FuncAgent) TriggerChoice(p core.Perception) (core.ChoiceSet, error) {
	if a.TriggerFn != nil {
		return a.TriggerFn(p)
	}
	return NopChoices{}, nil
}

// Choose implements core.Agent.
func (a *FuncAgent) Choose(o core.ChoiceSet, p core.Perception) error {
	if a.ChooseFn != nil {
		return a.ChooseFn(o, p)
	}
	return nil
}

// TransferAgent moves one unit of wealth to a fixed partner each step while
// it has any left. It exercises same-step mutation visibility: the partner's
// balance changes before the partner acts.
type TransferAgent struct {
	core.Entity
	Wealth    float64
	PartnerID core.Ident
}

// NewTransferAgent builds a TransferAgent of kind "TransferAgent".
func NewTransferAgent(raw string, wealth float64) *TransferAgent {
	e, err := core.NewEntity("TransferAgent", raw)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return &TransferAgent{Entity: e, Wealth: wealth}
}

// Report extends the base snapshot with the current wealth.
func (a *TransferAgent) Report() core.Snapshot {
	return a.Entity.Report().Extend(a.Kind(), core.Fields{"wealth": a.Wealth})
}

// transferPerception carries the partner resolved from the environment.
type transferPerception struct {
	NopPerception
	partner *TransferAgent
}

// transferChoices scores the two reachable moves: keep or transfer one unit.
type transferChoices struct {
	Moves []core.Option[float64]
	funds float64
}

func (c *transferChoices) Evaluate() error {
	for i := range c.Moves {
		if c.Moves[i].Value <= c.funds {
			c.Moves[i].Score = c.Moves[i].Value
		} else {
			c.Moves[i].Score = -1
		}
	}
	return nil
}

// Perceive implements core.Agent.
func (a *TransferAgent) Perceive(env core.Environment) (core.Perception, error) {
	return core.Perceive(a, env, func(a *TransferAgent, env core.Environment) (*transferPerception, error) {
		p := &transferPerception{}
		if a.PartnerID.IsZero() {
			return p, nil
		}
		obj, err := env.Get(a.PartnerID)
		if err != nil {
			return nil, err
		}
		partner, ok := obj.(*TransferAgent)
		if !ok {
			return nil, fmt.Errorf("partner '%s' is not a TransferAgent", a.PartnerID)
		}
		p.partner = partner
		return p, nil
	})
}

// TriggerChoice implements core.Agent.
func (a *TransferAgent) TriggerChoice(p core.Perception) (core.ChoiceSet, error) {
	return &transferChoices{
		Moves: []core.Option[float64]{{Value: 0}, {Value: 1}},
		funds: a.Wealth,
	}, nil
}

// Choose implements core.Agent.
func (a *TransferAgent) Choose(options core.ChoiceSet, perception core.Perception) error {
	choices, ok := options.(*transferChoices)
	if !ok {
		return fmt.Errorf("unexpected choice set %T", options)
	}
	p, ok := perception.(*transferPerception)
	if !ok {
		return fmt.Errorf("unexpected perception %T", perception)
	}
	best := core.Best(choices.Moves)
	if best < 0 || p.partner == nil {
		return nil
	}
	amount := choices.Moves[best].Value
	a.Wealth -= amount
	p.partner.Wealth += amount
	return nil
}
