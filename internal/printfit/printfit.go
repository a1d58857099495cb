// Package printfit aggregates print metrics across the variants of a work
// and decides whether a two-up layout is safe.
package printfit

import (
	"fmt"

	"github.com/abhisek/worksheet/internal/printable"
	"github.com/abhisek/worksheet/internal/printprofile"
)

// Policy thresholds.
const (
	// Two-up is disallowed when any variant reaches one of these.
	MaxTaskCharsTwoUp   = 220
	TotalTextCharsTwoUp = 1400
	TaskCountTwoUp      = 18

	// Soft warning for math-heavy variants.
	MathHeavyTaskCount = 14
	MathHeavyTextChars = 1000
)

// VariantInput is one variant's printable tasks.
type VariantInput struct {
	VariantID string
	Tasks     []printable.Task
}

// VariantMetrics aggregates the print metrics of one variant.
type VariantMetrics struct {
	VariantID        string `json:"variantId"`
	TaskCount        int    `json:"taskCount"`
	TotalTextChars   int    `json:"totalTextChars"`
	MaxTaskChars     int    `json:"maxTaskChars"`
	TotalLines       int    `json:"totalEstimatedLines"`
	MathTaskCount    int    `json:"mathTaskCount"`
	DisplayMathCount int    `json:"displayMathCount"`
	LongTaskCount    int    `json:"longTaskCount"`
}

// MathHeavy reports whether half or more of the tasks carry math, or any
// task has a display block.
func (m VariantMetrics) MathHeavy() bool {
	if m.TaskCount == 0 {
		return false
	}
	return m.DisplayMathCount > 0 || m.MathTaskCount*2 >= m.TaskCount
}

// WorkMetrics is the work-level aggregate: maxima across variants.
type WorkMetrics struct {
	VariantCount      int              `json:"variantCount"`
	MaxTaskCount      int              `json:"maxTaskCount"`
	MaxTotalTextChars int              `json:"maxTotalTextChars"`
	MaxTaskChars      int              `json:"maxTaskChars"`
	MathHeavy         bool             `json:"mathHeavy"`
	Variants          []VariantMetrics `json:"variants"`
}

// Verdict is the work-level print fit decision.
type Verdict struct {
	RecommendedLayout printprofile.Layout `json:"recommendedLayout"`
	AllowTwoUp        bool                `json:"allowTwoUp"`
	Reasons           []string            `json:"reasons"`
	Metrics           WorkMetrics         `json:"metrics"`
}

// Snapshot is the compact form stored in a print profile.
func (v Verdict) Snapshot() *printprofile.FitSnapshot {
	return &printprofile.FitSnapshot{
		RecommendedLayout: v.RecommendedLayout,
		AllowTwoUp:        v.AllowTwoUp,
		Reasons:           append([]string(nil), v.Reasons...),
		MaxTaskCount:      v.Metrics.MaxTaskCount,
		MaxTotalTextChars: v.Metrics.MaxTotalTextChars,
		MaxTaskChars:      v.Metrics.MaxTaskChars,
	}
}

// AnalyzeVariant aggregates the metrics of one variant.
func AnalyzeVariant(v VariantInput) VariantMetrics {
	m := VariantMetrics{VariantID: v.VariantID, TaskCount: len(v.Tasks)}
	for _, t := range v.Tasks {
		p := t.Print
		m.TotalTextChars += p.TextChars
		m.MaxTaskChars = max(m.MaxTaskChars, p.TextChars)
		m.TotalLines += p.EstimatedLines
		if p.HasKatex {
			m.MathTaskCount++
		}
		if p.HasDisplayMath {
			m.DisplayMathCount++
		}
		if p.Complexity == printable.ComplexityLong {
			m.LongTaskCount++
		}
	}
	return m
}

// AnalyzeWork decides the print fit of a whole work.
func AnalyzeWork(workType printprofile.WorkType, variants []VariantInput) Verdict {
	wm := WorkMetrics{VariantCount: len(variants)}
	total := 0
	for _, v := range variants {
		m := AnalyzeVariant(v)
		wm.Variants = append(wm.Variants, m)
		wm.MaxTaskCount = max(wm.MaxTaskCount, m.TaskCount)
		wm.MaxTotalTextChars = max(wm.MaxTotalTextChars, m.TotalTextChars)
		wm.MaxTaskChars = max(wm.MaxTaskChars, m.MaxTaskChars)
		total += m.TaskCount
	}

	if total == 0 {
		return Verdict{
			RecommendedLayout: printprofile.LayoutSingle,
			AllowTwoUp:        true,
			Reasons:           []string{"no data: the work has no tasks to analyze"},
			Metrics:           wm,
		}
	}

	reasons := []string{}
	allow := true
	for _, m := range wm.Variants {
		label := m.VariantID
		if label == "" {
			label = "variant"
		}
		if m.MaxTaskChars >= MaxTaskCharsTwoUp {
			allow = false
			reasons = append(reasons, fmt.Sprintf("%s has a task of %d characters (two-up limit %d)", label, m.MaxTaskChars, MaxTaskCharsTwoUp))
		}
		if m.TotalTextChars >= TotalTextCharsTwoUp {
			allow = false
			reasons = append(reasons, fmt.Sprintf("%s has %d characters of text (two-up limit %d)", label, m.TotalTextChars, TotalTextCharsTwoUp))
		}
		if m.TaskCount >= TaskCountTwoUp {
			allow = false
			reasons = append(reasons, fmt.Sprintf("%s has %d tasks (two-up limit %d)", label, m.TaskCount, TaskCountTwoUp))
		}
		if m.MathHeavy() {
			wm.MathHeavy = true
			if m.TaskCount >= MathHeavyTaskCount || m.TotalTextChars >= MathHeavyTextChars {
				reasons = append(reasons, fmt.Sprintf("%s is math-heavy and long; check the two-up preview before printing", label))
			}
		}
	}

	layout := printprofile.LayoutTwo
	if !allow {
		layout = printprofile.LayoutSingle
	}
	if workType.ForcesSingle() {
		layout = printprofile.LayoutSingle
		reasons = append(reasons, fmt.Sprintf("%s works are printed one variant per page", workType))
	}

	return Verdict{
		RecommendedLayout: layout,
		AllowTwoUp:        allow,
		Reasons:           reasons,
		Metrics:           wm,
	}
}
