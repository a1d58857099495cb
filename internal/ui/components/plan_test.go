package components

import (
	"strings"
	"testing"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printable"
	"github.com/abhisek/worksheet/internal/printprofile"
)

func inputs(counts ...int) []paginate.Input {
	var out []paginate.Input
	for i, n := range counts {
		in := paginate.Input{VariantID: string(rune('A' + i)), VariantNo: i + 1, Title: "Variant " + string(rune('A'+i))}
		for j := range n {
			in.Tasks = append(in.Tasks, printable.Task{TaskID: "t", OrderIndex: j, Print: printable.Metrics("short")})
		}
		out = append(out, in)
	}
	return out
}

func TestPlanView_TwoCut(t *testing.T) {
	plan, err := paginate.Plan(inputs(3, 40), printprofile.LayoutTwoCut, nil, paginate.DefaultBudget())
	if err != nil {
		t.Fatal(err)
	}
	out := NewPlanView(plan, 100).View()

	for _, want := range []string{"two_cut", "duplex", "Variant A", "Variant B (cont.)", "back"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview does not contain %q", want)
		}
	}
}

func TestPlanView_Single(t *testing.T) {
	plan, err := paginate.Plan(inputs(2), printprofile.LayoutSingle, nil, paginate.DefaultBudget())
	if err != nil {
		t.Fatal(err)
	}
	out := NewPlanView(plan, 80).View()
	if !strings.Contains(out, "simplex") || !strings.Contains(out, "tasks 1–2") {
		t.Errorf("unexpected preview:\n%s", out)
	}
}

func TestCapacityBar_Ratio(t *testing.T) {
	tests := []struct {
		used, capacity, want float64
	}{
		{13, 26, 0.5},
		{0, 26, 0},
		{30, 26, 30.0 / 26},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := NewCapacityBar("", tt.used, tt.capacity, 20).Ratio(); got != tt.want {
			t.Errorf("Ratio(%v/%v) = %v, want %v", tt.used, tt.capacity, got, tt.want)
		}
	}
}
