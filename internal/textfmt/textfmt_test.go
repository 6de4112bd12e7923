package textfmt

import (
	"reflect"
	"testing"
)

func TestMock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hElLo"},
		{"MOCKING TEXT", "mOcKiNg tExT"},
		{"", ""},
		{"a", "a"},
	}
	for _, tc := range cases {
		if got := Mock(tc.in); got != tc.want {
			t.Fatalf("Mock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVaporwave(t *testing.T) {
	t.Parallel()

	if got := Vaporwave("abc"); got != "ａｂｃ" {
		t.Fatalf("Vaporwave(abc) = %q", got)
	}
	if got := Vaporwave("a b"); got != "ａ　ｂ" {
		t.Fatalf("Vaporwave(a b) = %q", got)
	}
	// Non-ASCII passes through untouched.
	if got := Vaporwave("日本"); got != "日本" {
		t.Fatalf("Vaporwave(日本) = %q", got)
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"hello", "olleh"},
		{"", ""},
		{"日本語", "語本日"},
	}
	for _, tc := range cases {
		if got := Reverse(tc.in); got != tc.want {
			t.Fatalf("Reverse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := Reverse(Reverse("round trip")); got != "round trip" {
		t.Fatalf("double Reverse = %q", got)
	}
}

func TestSplitChoices(t *testing.T) {
	t.Parallel()

	got := SplitChoices(" a, b ,c,,  ")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitChoices() = %v, want %v", got, want)
	}
	if got := SplitChoices(",,"); len(got) != 0 {
		t.Fatalf("SplitChoices(,,) = %v, want empty", got)
	}
}
