// Package printprofile holds the print layout vocabulary, the layout
// recommendation policy and normalization of persisted print profiles.
package printprofile

import "strings"

// Layout is how variants are placed on physical sheets.
type Layout string

const (
	LayoutSingle Layout = "single"  // one variant frame per page
	LayoutTwo    Layout = "two"     // two variants side by side, one-sided
	LayoutTwoCut Layout = "two_cut" // two variants side by side, duplex, cut-safe
	LayoutTwoDup Layout = "two_dup" // the same variant twice on one page
)

// AllLayouts returns every layout in display order.
func AllLayouts() []Layout {
	return []Layout{LayoutSingle, LayoutTwo, LayoutTwoCut, LayoutTwoDup}
}

// TwoUp reports whether the layout puts two frames on one side.
func (l Layout) TwoUp() bool {
	return l == LayoutTwo || l == LayoutTwoCut || l == LayoutTwoDup
}

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	switch l {
	case LayoutSingle, LayoutTwo, LayoutTwoCut, LayoutTwoDup:
		return true
	}
	return false
}

// DefaultOrientation is portrait for single and landscape for two-up.
func (l Layout) DefaultOrientation() Orientation {
	if l.TwoUp() {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// ParseLayout parses a query parameter value. The boolean is false for
// unknown values.
func ParseLayout(s string) (Layout, bool) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Orientation is the page orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == OrientationPortrait || o == OrientationLandscape
}

// ParseOrientation parses a query parameter value.
func ParseOrientation(s string) (Orientation, bool) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	return o, o.Valid()
}

// WorkType is the pedagogical purpose of a work.
type WorkType string

const (
	WorkLesson   WorkType = "lesson"
	WorkQuiz     WorkType = "quiz"
	WorkHomework WorkType = "homework"
	WorkTest     WorkType = "test"
)

// Valid reports whether w is a known work type.
func (w WorkType) Valid() bool {
	switch w {
	case WorkLesson, WorkQuiz, WorkHomework, WorkTest:
		return true
	}
	return false
}

// ForcesSingle reports whether works of this type always print one
// variant per page.
func (w WorkType) ForcesSingle() bool {
	return w == WorkTest || w == WorkHomework
}

// ParseWorkType parses a work type, defaulting unknown values to lesson.
func ParseWorkType(s string) WorkType {
	w := WorkType(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return WorkLesson
	}
	return w
}

// FitSnapshot is the cached print-fit verdict kept alongside a profile.
type FitSnapshot struct {
	RecommendedLayout Layout   `json:"recommendedLayout"`
	AllowTwoUp        bool     `json:"allowTwoUp"`
	Reasons           []string `json:"reasons,omitempty"`
	MaxTaskCount      int      `json:"maxTaskCount"`
	MaxTotalTextChars int      `json:"maxTotalTextChars"`
	MaxTaskChars      int      `json:"maxTaskChars"`
}

// Profile is the persisted print profile of a work.
type Profile struct {
	Layout      Layout       `json:"layout"`
	Orientation Orientation  `json:"orientation"`
	ForceTwoUp  bool         `json:"forceTwoUp,omitempty"`
	Fit         *FitSnapshot `json:"fit,omitempty"`
}

// DefaultProfile returns the profile for a layout with its default
// orientation.
func DefaultProfile(l Layout) Profile {
	if !l.Valid() {
		l = LayoutSingle
	}
	return Profile{Layout: l, Orientation: l.DefaultOrientation()}
}

// WithLayout switches the layout. An explicit orientation is kept only if
// it was overridden away from the previous layout's default.
func (p Profile) WithLayout(l Layout) Profile {
	if !l.Valid() {
		l = LayoutSingle
	}
	overridden := p.Orientation.Valid() && p.Orientation != p.Layout.DefaultOrientation()
	p.Layout = l
	if !overridden {
		p.Orientation = l.DefaultOrientation()
	}
	return p
}
