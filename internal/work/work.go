// Package work is the Work entity: a named set of variants with shared
// print settings.
package work

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/printfit"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
)

// ErrInvalidEdit is returned by Edit for unknown field values.
var ErrInvalidEdit = errors.New("invalid edit")

// Variant is a stored variant with its identity within the work.
type Variant struct {
	ID string `json:"id"`
	No int    `json:"no"`
	variantplan.Variant
}

// Work is a named collection of variants.
type Work struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	TopicID    string                `json:"topicId"`
	Locale     string                `json:"locale"`
	Type       printprofile.WorkType `json:"type"`
	TemplateID string                `json:"templateId,omitempty"`
	Profile    printprofile.Profile  `json:"profile"`
	Variants   []Variant             `json:"variants"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// NewParams describes a work to create.
type NewParams struct {
	Title        string
	TopicID      string
	Locale       string
	Type         printprofile.WorkType
	Template     variantplan.Template
	Seed         string
	Count        int
	ShuffleOrder bool

	// Layout and Orientation override the recommendation when valid.
	Layout      printprofile.Layout
	Orientation printprofile.Orientation
}

// New assembles the variants of a new work and picks its print profile.
// An empty seed is replaced by a random one, which is stored on every
// variant so the work can be regenerated.
func New(pool *taskbank.Pool, p NewParams) (*Work, error) {
	if p.Count == 0 {
		p.Count = 1
	}
	if p.Seed == "" {
		p.Seed = uuid.NewString()
	}
	if !p.Type.Valid() {
		p.Type = printprofile.WorkLesson
	}

	built, err := variantplan.NewBuilder(pool).BuildVariants(p.Template, p.Seed, p.Count, variantplan.Options{ShuffleOrder: p.ShuffleOrder})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := &Work{
		ID:         uuid.NewString(),
		Title:      p.Title,
		TopicID:    p.TopicID,
		Locale:     p.Locale,
		Type:       p.Type,
		TemplateID: p.Template.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if w.Title == "" {
		w.Title = p.Template.Title
	}
	for i, v := range built {
		w.Variants = append(w.Variants, Variant{ID: uuid.NewString(), No: i + 1, Variant: v})
	}

	rec := w.Recommendation()
	w.Profile = printprofile.DefaultProfile(rec.RecommendedLayout)
	if p.Layout.Valid() {
		w.Profile = w.Profile.WithLayout(p.Layout)
	}
	if p.Orientation.Valid() {
		w.Profile.Orientation = p.Orientation
	}
	if err := w.refreshFit(pool); err != nil {
		return nil, err
	}
	return w, nil
}

// Recommendation runs the layout policy on the work's variants.
func (w *Work) Recommendation() printprofile.Recommendation {
	counts := make([]int, len(w.Variants))
	for i, v := range w.Variants {
		counts[i] = len(v.Tasks)
	}
	return printprofile.Recommend(printprofile.RecommendInput{WorkType: w.Type, VariantTaskCounts: counts})
}

// Fit analyzes the printed size of the work's variants.
func (w *Work) Fit(pool *taskbank.Pool) (printfit.Verdict, error) {
	doc, err := w.Document(pool, Overrides{})
	if err != nil {
		return printfit.Verdict{}, err
	}
	return printfit.AnalyzeWork(w.Type, doc.FitInputs()), nil
}

// refreshFit stores the current fit verdict on the profile. A two-up
// layout the verdict does not allow is kept but flagged as forced.
func (w *Work) refreshFit(pool *taskbank.Pool) error {
	verdict, err := w.Fit(pool)
	if err != nil {
		return err
	}
	w.Profile.Fit = verdict.Snapshot()
	w.Profile.ForceTwoUp = w.Profile.Layout.TwoUp() && !verdict.AllowTwoUp
	return nil
}

// EditParams holds optional changes to a work.
type EditParams struct {
	Title       *string
	Type        *printprofile.WorkType
	Layout      *printprofile.Layout
	Orientation *printprofile.Orientation
}

// Edit applies changes and re-normalizes the print profile. Variants are
// never modified.
func (w *Work) Edit(pool *taskbank.Pool, p EditParams) error {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Type != nil {
		if !p.Type.Valid() {
			return fmt.Errorf("%w: unknown work type %q", ErrInvalidEdit, *p.Type)
		}
		w.Type = *p.Type
	}
	if p.Layout != nil {
		if !p.Layout.Valid() {
			return fmt.Errorf("%w: unknown layout %q", ErrInvalidEdit, *p.Layout)
		}
		w.Profile = w.Profile.WithLayout(*p.Layout)
	}
	if p.Orientation != nil {
		if !p.Orientation.Valid() {
			return fmt.Errorf("%w: unknown orientation %q", ErrInvalidEdit, *p.Orientation)
		}
		w.Profile.Orientation = *p.Orientation
	}
	w.Profile = w.Profile.Normalize()
	w.UpdatedAt = time.Now().UTC()
	return w.refreshFit(pool)
}

// Overrides are per-request print settings, typically query parameters.
// Invalid values are ignored.
type Overrides struct {
	Layout      string
	Orientation string
}

// Resolve returns the print profile after applying overrides.
func (w *Work) Resolve(o Overrides) printdoc.Profile {
	p := w.Profile.Normalize()
	if l, ok := printprofile.ParseLayout(o.Layout); ok {
		p = p.WithLayout(l)
	}
	if or, ok := printprofile.ParseOrientation(o.Orientation); ok {
		p.Orientation = or
	}
	return printdoc.Profile{Layout: p.Layout, Orientation: p.Orientation}
}

// Document builds the printable document of the work.
func (w *Work) Document(pool *taskbank.Pool, o Overrides) (printdoc.Document, error) {
	doc := printdoc.Document{
		WorkID:   w.ID,
		Locale:   w.Locale,
		TopicID:  w.TopicID,
		Title:    w.Title,
		WorkType: w.Type,
		Profile:  w.Resolve(o),
		Variants: make([]printdoc.Variant, 0, len(w.Variants)),
	}
	for _, v := range w.Variants {
		pv, err := printdoc.NewVariant(v.ID, v.No, v.Variant, pool)
		if err != nil {
			return printdoc.Document{}, err
		}
		doc.Variants = append(doc.Variants, pv)
	}
	return doc, nil
}
