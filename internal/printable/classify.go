package printable

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/worksheet/internal/taskbank"
)

// Classification thresholds.
const (
	CharsPerLine = 55

	longChars   = 220
	longLines   = 7
	mediumChars = 90
	mediumLines = 4

	listBonusLines    = 1
	displayBonusLines = 2
)

var (
	displayMathRe = regexp.MustCompile(`(?s)\$\$.+?\$\$`)
	inlineMathRe  = regexp.MustCompile(`\$[^$\n]+\$`)
	listMarkerRe  = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+[.)])[ \t]+\S`)

	fractionLikeTokens = []string{`\frac`, `\dfrac`, `\tfrac`, `\sqrt`, `\sum`, `\int`}
)

// Metrics computes the print metrics of a markdown statement.
func Metrics(statement string) Print {
	p := Print{
		TextChars:  utf8.RuneCountInString(statement),
		LineBreaks: strings.Count(statement, "\n"),
	}

	p.HasDisplayMath = displayMathRe.MatchString(statement)
	p.HasInlineMath = inlineMathRe.MatchString(displayMathRe.ReplaceAllString(statement, " "))
	for _, tok := range fractionLikeTokens {
		if strings.Contains(statement, tok) {
			p.HasFractionLike = true
			break
		}
	}
	p.HasKatex = p.HasDisplayMath || p.HasInlineMath || p.HasFractionLike

	lines := int(math.Ceil(float64(p.TextChars)/CharsPerLine)) + p.LineBreaks
	if listMarkerRe.MatchString(statement) {
		lines += listBonusLines
	}
	if p.HasDisplayMath {
		lines += displayBonusLines
	}
	p.EstimatedLines = max(lines, 1)

	switch {
	case p.TextChars >= longChars || p.EstimatedLines >= longLines:
		p.Complexity = ComplexityLong
	case p.TextChars >= mediumChars || p.EstimatedLines >= mediumLines || p.HasDisplayMath:
		p.Complexity = ComplexityMedium
	default:
		p.Complexity = ComplexityShort
	}

	switch {
	case p.Complexity == ComplexityShort && !p.HasKatex:
		p.AnswerSpaceHint = AnswerSpaceInline
	case p.Complexity == ComplexityLong:
		p.AnswerSpaceHint = AnswerSpaceMedium
	default:
		p.AnswerSpaceHint = AnswerSpaceShort
	}

	return p
}

// AnswerText picks the printable answer: the explicit markdown answer
// first, then the structured answer stringified. The boolean is false when
// the task has neither.
func AnswerText(t taskbank.Task) (string, bool) {
	if s := strings.TrimSpace(t.AnswerMD); s != "" {
		return s, true
	}
	if t.Answer != nil {
		if s := t.Answer.String(); s != "" {
			return s, true
		}
	}
	return "", false
}

// Classify builds the print view of a bank task placed at orderIndex of a
// variant section.
func Classify(t taskbank.Task, orderIndex int, sectionLabel string) Task {
	answer, ok := AnswerText(t)
	return Task{
		TaskID:       t.ID,
		OrderIndex:   orderIndex,
		SectionLabel: sectionLabel,
		Statement:    t.StatementMD,
		Answer:       answer,
		HasAnswer:    ok,
		Print:        Metrics(t.StatementMD),
	}
}
