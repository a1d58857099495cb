package printprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Profile
	}{
		{"empty object", `{}`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"null", `null`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"garbage", `not json`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"unknown layout", `{"layout":"four"}`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"wrong type", `{"layout":2,"orientation":true}`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"two derives landscape", `{"layout":"two"}`, Profile{Layout: LayoutTwo, Orientation: OrientationLandscape}},
		{"cut derives landscape", `{"layout":"TWO_CUT"}`, Profile{Layout: LayoutTwoCut, Orientation: OrientationLandscape}},
		{"explicit override kept", `{"layout":"two_dup","orientation":"portrait"}`, Profile{Layout: LayoutTwoDup, Orientation: OrientationPortrait}},
		{"bad orientation derived", `{"layout":"single","orientation":"diagonal"}`, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}},
		{"bare string", `"two"`, Profile{Layout: LayoutTwo, Orientation: OrientationLandscape}},
		{"force flag", `{"layout":"two","forceTwoUp":"true"}`, Profile{Layout: LayoutTwo, Orientation: OrientationLandscape, ForceTwoUp: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProfile([]byte(tt.raw)))
		})
	}
}

func TestNormalizeProfile_FitSnapshot(t *testing.T) {
	p := NormalizeProfile([]byte(`{"layout":"two","fit":{"recommendedLayout":"single","allowTwoUp":false,"maxTaskCount":19}}`))
	require.NotNil(t, p.Fit)
	assert.Equal(t, LayoutSingle, p.Fit.RecommendedLayout)
	assert.Equal(t, 19, p.Fit.MaxTaskCount)

	p = NormalizeProfile([]byte(`{"layout":"two","fit":{"recommendedLayout":"bogus"}}`))
	assert.Nil(t, p.Fit)
}

func TestProfile_WithLayout(t *testing.T) {
	p := DefaultProfile(LayoutSingle)
	p = p.WithLayout(LayoutTwoCut)
	assert.Equal(t, OrientationLandscape, p.Orientation)

	// An explicit override survives a layout change.
	p = Profile{Layout: LayoutTwo, Orientation: OrientationPortrait}.WithLayout(LayoutTwoDup)
	assert.Equal(t, OrientationPortrait, p.Orientation)

	p = DefaultProfile(LayoutTwo).WithLayout("nonsense")
	assert.Equal(t, Profile{Layout: LayoutSingle, Orientation: OrientationPortrait}, p)
}

func TestParseHelpers(t *testing.T) {
	l, ok := ParseLayout(" Two_Dup ")
	assert.True(t, ok)
	assert.Equal(t, LayoutTwoDup, l)

	_, ok = ParseLayout("three")
	assert.False(t, ok)

	o, ok := ParseOrientation("LANDSCAPE")
	assert.True(t, ok)
	assert.Equal(t, OrientationLandscape, o)

	assert.Equal(t, WorkTest, ParseWorkType("test"))
	assert.Equal(t, WorkLesson, ParseWorkType("exam"))
	assert.True(t, WorkHomework.ForcesSingle())
	assert.False(t, WorkQuiz.ForcesSingle())
}
