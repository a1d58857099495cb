package printprofile

import (
	"slices"
	"testing"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		in       RecommendInput
		layout   Layout
		canTwoUp bool
		codes    []ReasonCode
	}{
		{
			name:     "no variants",
			in:       RecommendInput{WorkType: WorkQuiz},
			layout:   LayoutSingle,
			canTwoUp: true,
			codes:    []ReasonCode{ReasonNoData},
		},
		{
			name:     "light quiz",
			in:       RecommendInput{WorkType: WorkQuiz, VariantTaskCounts: []int{8, 10}},
			layout:   LayoutTwo,
			canTwoUp: true,
			codes:    []ReasonCode{ReasonLightVariants},
		},
		{
			name:     "medium lesson",
			in:       RecommendInput{WorkType: WorkLesson, VariantTaskCounts: []int{11, 11}},
			layout:   LayoutTwo,
			canTwoUp: true,
			codes:    []ReasonCode{},
		},
		{
			name:     "max forces single",
			in:       RecommendInput{WorkType: WorkLesson, VariantTaskCounts: []int{4, 16}},
			layout:   LayoutSingle,
			canTwoUp: false,
			codes:    []ReasonCode{ReasonTooManyTasks},
		},
		{
			name:     "average forces single",
			in:       RecommendInput{WorkType: WorkQuiz, VariantTaskCounts: []int{12, 12, 12}},
			layout:   LayoutSingle,
			canTwoUp: false,
			codes:    []ReasonCode{ReasonHighAverage},
		},
		{
			name:     "test is single even when light",
			in:       RecommendInput{WorkType: WorkTest, VariantTaskCounts: []int{5, 5}},
			layout:   LayoutSingle,
			canTwoUp: true,
			codes:    []ReasonCode{ReasonWorkTypeSingle},
		},
		{
			name:     "homework heavy",
			in:       RecommendInput{WorkType: WorkHomework, VariantTaskCounts: []int{20}},
			layout:   LayoutSingle,
			canTwoUp: false,
			codes:    []ReasonCode{ReasonTooManyTasks, ReasonHighAverage, ReasonWorkTypeSingle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.in)
			if got.RecommendedLayout != tt.layout {
				t.Errorf("layout = %q, want %q", got.RecommendedLayout, tt.layout)
			}
			if got.CanUseTwoUp != tt.canTwoUp {
				t.Errorf("CanUseTwoUp = %v, want %v", got.CanUseTwoUp, tt.canTwoUp)
			}
			if !slices.Equal(got.ReasonCodes, tt.codes) {
				t.Errorf("codes = %v, want %v", got.ReasonCodes, tt.codes)
			}
		})
	}
}
