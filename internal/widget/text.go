package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// fit truncates s to at most width cells without splitting a grapheme
// cluster.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	used := 0
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
		w := runewidth.StringWidth(cluster)
		if used+w > width {
			break
		}
		buf.WriteString(cluster)
		used += w
	}
	return buf.String()
}

// justifyRight fits s into width cells, padding on the left.
func justifyRight(s string, width int) string {
	s = fit(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
