package utils

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping, e.g.
// Rs 1,23,456.78. The rupee sign itself is outside the PDF core
// font set, so "Rs" stands in.
func FormatINR(v float64) string {
	whole := int64(v)
	frac := int64((v-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}

	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(append(parts, tail), ",")
	}
	return fmt.Sprintf("Rs %s.%02d", s, frac)
}
