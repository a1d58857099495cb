// Package printable derives print characteristics of a task: text size,
// estimated line count, math content and answer space.
package printable

// Complexity buckets a task by how much room its statement takes.
type Complexity string

const (
	ComplexityShort  Complexity = "short"
	ComplexityMedium Complexity = "medium"
	ComplexityLong   Complexity = "long"
)

// rank orders complexity tiers.
func (c Complexity) rank() int {
	switch c {
	case ComplexityMedium:
		return 1
	case ComplexityLong:
		return 2
	default:
		return 0
	}
}

// AtLeast reports whether c is the same tier as o or above it.
func (c Complexity) AtLeast(o Complexity) bool { return c.rank() >= o.rank() }

// AnswerSpace is a hint for how much blank space to leave for the answer.
type AnswerSpace string

const (
	AnswerSpaceInline AnswerSpace = "inline"
	AnswerSpaceShort  AnswerSpace = "short"
	AnswerSpaceMedium AnswerSpace = "medium"
)

// Print holds the measured and estimated print metrics of a statement.
type Print struct {
	TextChars       int         `json:"textChars"`
	LineBreaks      int         `json:"lineBreaks"`
	HasKatex        bool        `json:"hasKatex"`
	HasInlineMath   bool        `json:"hasInlineMath"`
	HasDisplayMath  bool        `json:"hasDisplayMath"`
	HasFractionLike bool        `json:"hasFractionLike"`
	EstimatedLines  int         `json:"estimatedLines"`
	Complexity      Complexity  `json:"complexity"`
	AnswerSpaceHint AnswerSpace `json:"answerSpaceHint"`
}

// Task is the print view of a task inside a variant. It is derived on
// demand and never persisted as a source of truth.
type Task struct {
	TaskID       string `json:"taskId"`
	OrderIndex   int    `json:"orderIndex"`
	SectionLabel string `json:"sectionLabel,omitempty"`
	Statement    string `json:"statement"`

	// Answer is empty when HasAnswer is false.
	Answer    string `json:"answer,omitempty"`
	HasAnswer bool   `json:"hasAnswer"`

	Print Print `json:"print"`
}
