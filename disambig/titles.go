package disambig

import "strconv"

// HantTitle returns the Traditional Chinese title for the given year, e.g.
// "1990年中國".
func HantTitle(year int) string {
	return strconv.Itoa(year) + "年中國"
}

// HansTitle returns the Simplified Chinese title for the given year, e.g.
// "1990年中国".
func HansTitle(year int) string {
	return strconv.Itoa(year) + "年中国"
}

// Titles returns both candidate titles for a year, Traditional first.
func Titles(year int) []string {
	return []string{HantTitle(year), HansTitle(year)}
}
