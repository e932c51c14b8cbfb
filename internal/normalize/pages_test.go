package normalize

import "testing"

func TestCompressPageRange(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"419-426", "419-26"},
		{"100-109", "100-9"},
		{"419-526", "419-526"}, // first digit differs
		{"98-102", "98-102"},   // different lengths
		{"419-419", "419-419"}, // identical halves
		{"419", "419"},
		{"e0123", "e0123"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CompressPageRange(tc.in); got != tc.want {
			t.Errorf("CompressPageRange(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
