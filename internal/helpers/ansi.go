package helpers

import (
	"unicode/utf8"

	"github.com/acarl005/stripansi"
)

func StripAnsi(s string) string {
	return stripansi.Strip(s)
}

// RuneCountIgnoringAnsi is the printed width of s on a terminal.
func RuneCountIgnoringAnsi(s string) int {
	return utf8.RuneCountInString(stripansi.Strip(s))
}
