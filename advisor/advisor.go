// Package advisor defines an interface for scoring discrete choice options
// with a language model. It is an optional layer for generative-agent
// experiments: agents that want model-guided decisions call an Advisor from
// their choice set's Evaluate method, while the simulation engine itself
// never depends on this package.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// Request describes a single ranking task: the role the model should play,
// the situation the agent observed, and the options under consideration.
type Request struct {
	// Instructions frames the decision maker, e.g. "You are a household
	// deciding on a heating system."
	Instructions string

	// Context is the agent's view of the world, typically rendered from a
	// perception.
	Context string

	// Options are the candidate choices, in the order the caller will
	// index them.
	Options []string
}

// Ranking is the advisor's verdict on a request.
type Ranking struct {
	// Scores holds one score per option, aligned with Request.Options.
	Scores []float64 `json:"scores"`

	// Best is the index of the preferred option.
	Best int `json:"best"`

	// Rationale is a short free-text justification.
	Rationale string `json:"rationale"`
}

// Info identifies an advisor implementation.
type Info struct {
	Provider string
	Model    string
}

// Advisor scores a set of options. Implementations must leave the request
// unmodified so callers can retry or fan out to multiple advisors.
type Advisor interface {
	Rank(ctx context.Context, req Request) (Ranking, error)
	Info() Info
}

// BuildPrompt renders a request into the user prompt shared by the provider
// implementations. The model is asked for strict JSON so ParseRanking can
// decode the reply.
func BuildPrompt(req Request) string {
	var sb strings.Builder
	if req.Context != "" {
		sb.WriteString("Situation:\n")
		sb.WriteString(req.Context)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Options:\n")
	for i, opt := range req.Options {
		fmt.Fprintf(&sb, "%d. %s\n", i, opt)
	}
	sb.WriteString("\nScore every option between 0 and 1 and pick the best one. ")
	sb.WriteString(`Reply with JSON only, in the form {"scores": [..], "best": N, "rationale": ".."}.`)
	return sb.String()
}

// ParseRanking decodes a model reply into a Ranking and validates it against
// the number of options ranked. Replies wrapped in markdown code fences are
// unwrapped first.
func ParseRanking(raw string, numOptions int) (Ranking, error) {
	text := strings.TrimSpace(raw)
	if i := strings.Index(text, "{"); i > 0 {
		text = text[i:]
	}
	if i := strings.LastIndex(text, "}"); i >= 0 {
		text = text[:i+1]
	}

	var ranking Ranking
	if err := json.Unmarshal([]byte(text), &ranking); err != nil {
		return Ranking{}, fmt.Errorf("decode ranking: %w", err)
	}
	if len(ranking.Scores) != numOptions {
		return Ranking{}, fmt.Errorf("ranking has %d scores for %d options", len(ranking.Scores), numOptions)
	}
	if ranking.Best < 0 || ranking.Best >= numOptions {
		return Ranking{}, fmt.Errorf("ranking best index %d out of range", ranking.Best)
	}
	return ranking, nil
}

// Mock is a deterministic advisor for tests and dry runs. It scores each
// option by hashing its text, so rankings are stable across processes
// without any network access.
type Mock struct {
	// Preferred, when non-empty, forces the option containing this
	// substring to win.
	Preferred string
}

// NewMock creates a deterministic mock advisor.
func NewMock() *Mock {
	return &Mock{}
}

// Rank implements Advisor.
func (m *Mock) Rank(_ context.Context, req Request) (Ranking, error) {
	if len(req.Options) == 0 {
		return Ranking{}, fmt.Errorf("no options to rank")
	}

	ranking := Ranking{
		Scores:    make([]float64, len(req.Options)),
		Rationale: "mock ranking",
	}
	for i, opt := range req.Options {
		h := fnv.New32a()
		h.Write([]byte(opt))
		ranking.Scores[i] = float64(h.Sum32()%1000) / 1000
		if m.Preferred != "" && strings.Contains(opt, m.Preferred) {
			ranking.Scores[i] = 1
		}
		if ranking.Scores[i] > ranking.Scores[ranking.Best] {
			ranking.Best = i
		}
	}
	return ranking, nil
}

// Info implements Advisor.
func (m *Mock) Info() Info {
	return Info{Provider: "mock", Model: "deterministic"}
}

var _ Advisor = (*Mock)(nil)
