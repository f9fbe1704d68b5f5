package annotate

import "errors"

// Result is the structured annotation produced for one journal entry.
type Result struct {
	Mood           string `json:"mood"`
	Subject        string `json:"subject"`
	Summary        string `json:"summary"`
	Color          string `json:"color"`
	Negative       bool   `json:"negative"`
	SentimentScore int    `json:"sentiment_score"`
}

var (
	// ErrNoProvider means no enabled AI provider is configured. This is a
	// deployment problem, not a per-request one.
	ErrNoProvider = errors.New("no enabled AI provider")

	// ErrInvalidOutput means the provider answered with something that does
	// not parse or validate as an annotation.
	ErrInvalidOutput = errors.New("invalid annotation output from AI")
)
