package fold

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"New York", "new york"},
		{"São Paulo", "sao paulo"},
		{"  MIAMI \t FL ", "miami fl"},
		{"Reykjavík", "reykjavik"},
	}
	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	if !Contains("123 5th Ave, New York, NY", "new york") {
		t.Fatalf("expected case-insensitive substring match")
	}
	if Contains("Miami, FL", "new york") {
		t.Fatalf("unexpected match")
	}
	if !Contains("anything", "") {
		t.Fatalf("empty needle must match")
	}
	if Contains("", "x") {
		t.Fatalf("empty haystack must not match a non-empty needle")
	}
	if !Contains("Sao Paulo", "são") {
		t.Fatalf("accented needle should match plain haystack")
	}
}
