package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:          "Rs 0.00",
		900:        "Rs 900.00",
		3900.5:     "Rs 3,900.50",
		123456.78:  "Rs 1,23,456.78",
		12345678.9: "Rs 1,23,45,678.90",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Errorf("FormatINR(%v) = %q, want %q", in, got, want)
		}
	}
}
