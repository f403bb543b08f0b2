package main

import (
	"github.com/simweave/simweave/core"
	"github.com/simweave/simweave/tabular"
)

const walkerSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"wealth": {"type": "number", "minimum": 0}
	},
	"required": ["name", "wealth"]
}`

// Walker is the demo agent: each year it perceives a random shock and either
// saves or spends, drifting its wealth up or down.
type Walker struct {
	core.Entity
	Wealth float64
}

// NewWalker builds a walker of kind "Walker".
func NewWalker(name string, wealth float64) (*Walker, error) {
	e, err := core.NewEntity("Walker", name)
	if err != nil {
		return nil, err
	}
	return &Walker{Entity: e, Wealth: wealth}, nil
}

func buildWalkerRow(row tabular.Row) (*Walker, error) {
	name, err := row.Text("name")
	if err != nil {
		return nil, err
	}
	wealth, err := row.Float("wealth")
	if err != nil {
		return nil, err
	}
	return NewWalker(name, wealth)
}

// Report extends the base snapshot with the current wealth.
func (w *Walker) Report() core.Snapshot {
	return w.Entity.Report().Extend(w.Kind(), core.Fields{"wealth": w.Wealth})
}

// shockPerception carries the year's income shock.
type shockPerception struct {
	shock float64
}

func (p *shockPerception) Distort(core.Agent) error { return nil }

// walkChoices scores saving against spending under the perceived shock.
type walkChoices struct {
	Moves []core.Option[string]

	shock  float64
	wealth float64
}

func (c *walkChoices) Evaluate() error {
	for i := range c.Moves {
		switch c.Moves[i].Value {
		case "save":
			c.Moves[i].Score = c.shock
		case "spend":
			c.Moves[i].Score = c.wealth / 100
		}
	}
	return nil
}

func (w *Walker) Perceive(env core.Environment) (core.Perception, error) {
	return &shockPerception{shock: env.Rand().Float64()}, nil
}

func (w *Walker) TriggerChoice(perception core.Perception) (core.ChoiceSet, error) {
	view := perception.(*shockPerception)
	return &walkChoices{
		Moves:  []core.Option[string]{{Value: "save"}, {Value: "spend"}},
		shock:  view.shock,
		wealth: w.Wealth,
	}, nil
}

func (w *Walker) Choose(choices core.ChoiceSet, perception core.Perception) error {
	c := choices.(*walkChoices)
	view := perception.(*shockPerception)

	if c.Moves[core.Best(c.Moves)].Value == "save" {
		w.Wealth += 10 * view.shock
	} else {
		w.Wealth -= 5
		if w.Wealth < 0 {
			w.Wealth = 0
		}
	}
	return nil
}
