package calc

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	t.Parallel()

	cases := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"10 % 3", 1},
		{"2 ^ 10", 1024},
		{"2 ^ 3 ^ 2", 512},
		{"-5 + 3", -2},
		{"-(2 + 3)", -5},
		{"1.5 * 2", 3},
		{"  7  ", 7},
	}
	for _, tc := range cases {
		got, err := Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q) error = %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"",
		"2 +",
		"(2 + 3",
		"1 / 0",
		"5 % 0",
		"two plus two",
		"2; rm -rf /",
		"1 2",
	} {
		if _, err := Eval(expr); err == nil {
			t.Errorf("Eval(%q) expected error, got nil", expr)
		}
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{2.5, "2.5"},
		{1024, "1024"},
		{-5, "-5"},
	}
	for _, tc := range cases {
		if got := FormatResult(tc.in); got != tc.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
