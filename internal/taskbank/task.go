// Package taskbank holds the immutable task pool that worksheets are
// assembled from, indexed by ID, skill and topic.
package taskbank

// Task is a single content unit from the task bank. Tasks are never mutated
// by the worksheet core.
type Task struct {
	ID      string `json:"id"`
	TopicID string `json:"topic_id"`
	SkillID string `json:"skill_id"`

	// StatementMD is markdown that may embed inline $...$ and display
	// $$...$$ math plus light lists and emphasis.
	StatementMD string `json:"statement_md"`

	// AnswerMD is an optional pre-rendered answer. It takes precedence over
	// Answer when printing answer keys.
	AnswerMD string `json:"answer_md,omitempty"`

	Answer     *Answer `json:"answer,omitempty"`
	Difficulty int     `json:"difficulty"`
}

// AnswerKind tags the variant held by an Answer.
type AnswerKind string

const (
	AnswerNumeric  AnswerKind = "numeric"
	AnswerFraction AnswerKind = "fraction"
	AnswerRatio    AnswerKind = "ratio"
)

// Answer is a tagged union of the answer shapes the bank stores.
type Answer struct {
	Kind AnswerKind `json:"kind"`

	// Numeric
	Value float64 `json:"value,omitempty"`

	// Fraction
	Numerator   int64 `json:"numerator,omitempty"`
	Denominator int64 `json:"denominator,omitempty"`

	// Ratio
	Left  int64 `json:"left,omitempty"`
	Right int64 `json:"right,omitempty"`
}

// NumericAnswer builds a numeric answer.
func NumericAnswer(v float64) *Answer {
	return &Answer{Kind: AnswerNumeric, Value: v}
}

// FractionAnswer builds a fraction answer.
func FractionAnswer(num, den int64) *Answer {
	return &Answer{Kind: AnswerFraction, Numerator: num, Denominator: den}
}

// RatioAnswer builds a ratio answer.
func RatioAnswer(left, right int64) *Answer {
	return &Answer{Kind: AnswerRatio, Left: left, Right: right}
}
