package printprofile

import (
	"encoding/json"
	"strings"
)

// rawProfile accepts the loosely typed JSON found in persisted rows.
type rawProfile struct {
	Layout      any             `json:"layout"`
	Orientation any             `json:"orientation"`
	ForceTwoUp  any             `json:"forceTwoUp"`
	Fit         json.RawMessage `json:"fit"`
}

// NormalizeProfile coerces arbitrary persisted JSON into a valid profile.
// Missing or unknown layouts become single; a missing or unknown
// orientation is derived from the layout. A bare JSON string is read as a
// layout. Nothing here fails: garbage in yields the single/portrait
// default.
func NormalizeProfile(raw []byte) Profile {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		l, _ := ParseLayout(s)
		return DefaultProfile(l)
	}

	var r rawProfile
	if err := json.Unmarshal(raw, &r); err != nil {
		return DefaultProfile(LayoutSingle)
	}

	l, ok := ParseLayout(asString(r.Layout))
	if !ok {
		l = LayoutSingle
	}
	p := Profile{Layout: l, Orientation: l.DefaultOrientation()}
	if o, ok := ParseOrientation(asString(r.Orientation)); ok {
		p.Orientation = o
	}
	p.ForceTwoUp = asBool(r.ForceTwoUp)

	if len(r.Fit) > 0 {
		var fit FitSnapshot
		if err := json.Unmarshal(r.Fit, &fit); err == nil && fit.RecommendedLayout.Valid() {
			p.Fit = &fit
		}
	}
	return p
}

// Normalize re-validates an in-memory profile the same way.
func (p Profile) Normalize() Profile {
	raw, err := json.Marshal(p)
	if err != nil {
		return DefaultProfile(LayoutSingle)
	}
	return NormalizeProfile(raw)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true") || b == "1"
	case float64:
		return b != 0
	}
	return false
}
