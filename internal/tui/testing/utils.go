package testing

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Locate finds the first occurrence of text in a rendered view and returns
// its screen cell position. Wide characters count as two cells.
func Locate(view, text string) (x, y int, ok bool) {
	return LocateBelow(view, text, 0)
}

// LocateBelow is Locate starting the search at line minY.
func LocateBelow(view, text string, minY int) (x, y int, ok bool) {
	for i, line := range strings.Split(StripANSI(view), "\n") {
		if i < minY {
			continue
		}
		if idx := strings.Index(line, text); idx >= 0 {
			return ansi.StringWidth(line[:idx]), i, true
		}
	}
	return 0, 0, false
}

// LineIndex returns the index of the first line containing text, or -1.
func LineIndex(view, text string) int {
	for i, line := range strings.Split(StripANSI(view), "\n") {
		if strings.Contains(line, text) {
			return i
		}
	}
	return -1
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}
