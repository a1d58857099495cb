package taskbank

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the answer the way it is printed on answer keys.
//
//   - numeric: shortest decimal form ("3.5", "12")
//   - fraction: reduced "n/d" with the sign on the numerator
//   - ratio: "l:r"
func (a *Answer) String() string {
	if a == nil {
		return ""
	}
	switch a.Kind {
	case AnswerNumeric:
		return strconv.FormatFloat(a.Value, 'f', -1, 64)
	case AnswerFraction:
		num, den := a.Numerator, a.Denominator
		if den == 0 {
			return fmt.Sprintf("%d/0", num)
		}
		if den < 0 {
			num, den = -num, -den
		}
		if g := gcd(abs(num), den); g > 1 {
			num /= g
			den /= g
		}
		return fmt.Sprintf("%d/%d", num, den)
	case AnswerRatio:
		return fmt.Sprintf("%d:%d", a.Left, a.Right)
	default:
		return ""
	}
}

// ParseAnswer parses the printed form back into an Answer. It accepts
// "a/b" fractions, "a:b" ratios and plain numbers.
func ParseAnswer(s string) (*Answer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty answer")
	}

	if strings.Contains(s, "/") {
		num, den, err := parsePair(s, "/")
		if err != nil {
			return nil, fmt.Errorf("invalid fraction %q: %w", s, err)
		}
		if den == 0 {
			return nil, fmt.Errorf("invalid fraction %q: zero denominator", s)
		}
		return FractionAnswer(num, den), nil
	}

	if strings.Contains(s, ":") {
		l, r, err := parsePair(s, ":")
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		return RatioAnswer(l, r), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return NumericAnswer(v), nil
}

// parsePair parses "a<sep>b" into two integers.
func parsePair(s, sep string) (int64, int64, error) {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two parts")
	}
	a, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("left part: %w", err)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("right part: %w", err)
	}
	return a, b, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
