package disambig

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEraOf(t *testing.T) {
	assert.Equal(t, PreHandover, EraOf(1950))
	assert.Equal(t, PreHandover, EraOf(1996))
	assert.Equal(t, PostHongKongHandover, EraOf(1997))
	assert.Equal(t, PostHongKongHandover, EraOf(1998))
	assert.Equal(t, PostHandover, EraOf(1999))
	assert.Equal(t, PostHandover, EraOf(2024))
}

// TestRender_PreHandover verifies Hong Kong and Macau are listed separately
// under "see also"
func TestRender_PreHandover(t *testing.T) {
	for _, year := range []int{1950, 1989, 1996} {
		text := Render(year)
		main, seeAlso, found := strings.Cut(text, "== 參見 ==")
		assert.True(t, found, "should have a see also section")

		y := strconv.Itoa(year)
		assert.Contains(t, main, "[["+y+"年中國大陸]]")
		assert.Contains(t, main, "[["+y+"年臺灣]]")
		assert.NotContains(t, main, "[["+y+"年香港]]")
		assert.NotContains(t, main, "[["+y+"年澳門]]")
		assert.Contains(t, seeAlso, "[["+y+"年香港]]，"+y+"年英屬香港")
		assert.Contains(t, seeAlso, "[["+y+"年澳門]]，"+y+"年葡屬澳門")
	}
}

// TestRender_PostHongKongHandover verifies Hong Kong is a direct branch while
// Macau stays under "see also"
func TestRender_PostHongKongHandover(t *testing.T) {
	for _, year := range []int{1997, 1998} {
		text := Render(year)
		main, seeAlso, found := strings.Cut(text, "== 參見 ==")
		assert.True(t, found, "should have a see also section")

		y := strconv.Itoa(year)
		assert.Contains(t, main, "** [["+y+"年香港]]，"+y+"年香港特別行政區")
		assert.NotContains(t, main, "[["+y+"年澳門]]")
		assert.Contains(t, seeAlso, "[["+y+"年澳門]]")
		assert.NotContains(t, seeAlso, "[["+y+"年香港]]")
	}
}

// TestRender_PostHandover verifies all four branches are direct and there is
// no "see also"
func TestRender_PostHandover(t *testing.T) {
	for _, year := range []int{1999, 2010} {
		text := Render(year)
		y := strconv.Itoa(year)

		assert.NotContains(t, text, "參見")
		assert.Contains(t, text, "** [["+y+"年中國大陸]]")
		assert.Contains(t, text, "** [["+y+"年香港]]")
		assert.Contains(t, text, "** [["+y+"年澳門]]")
		assert.Contains(t, text, "即[["+y+"年臺灣]]")
	}
}

// TestRender_Common verifies every era is filled in and tagged
func TestRender_Common(t *testing.T) {
	for _, year := range []int{1960, 1997, 2005} {
		text := Render(year)

		assert.NotContains(t, text, yearPlaceholder)
		assert.Contains(t, text, "'''"+strconv.Itoa(year)+"年中國'''")
		assert.True(t, strings.HasSuffix(text, "{{disambig|Cat="+Category+"}}"))
		assert.True(t, IsDisambiguation(text), "rendered page must classify as disambiguation")
		for _, article := range SubArticles(year) {
			assert.Contains(t, text, "[["+article+"]]")
		}
	}
}
