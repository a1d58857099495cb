package taskbank

import "testing"

func TestAnswerString(t *testing.T) {
	tests := []struct {
		name string
		a    *Answer
		want string
	}{
		{"nil", nil, ""},
		{"integer", NumericAnswer(12), "12"},
		{"decimal", NumericAnswer(3.5), "3.5"},
		{"negative", NumericAnswer(-0.25), "-0.25"},
		{"fraction reduced", FractionAnswer(2, 4), "1/2"},
		{"fraction sign", FractionAnswer(3, -6), "-1/2"},
		{"fraction lowest", FractionAnswer(3, 7), "3/7"},
		{"ratio", RatioAnswer(2, 3), "2:3"},
		{"unknown kind", &Answer{Kind: "matrix"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"42", "42", false},
		{" 0.50 ", "0.5", false},
		{"6/8", "3/4", false},
		{"1 : 2", "1:2", false},
		{"1/0", "", true},
		{"a/b", "", true},
		{"x:1", "", true},
		{"seven", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAnswer(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAnswer(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnswer(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseAnswer(%q) = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}
