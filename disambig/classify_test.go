package disambig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTitles verifies both script variants are produced, Traditional first
func TestTitles(t *testing.T) {
	assert.Equal(t, "1990年中國", HantTitle(1990))
	assert.Equal(t, "1990年中国", HansTitle(1990))
	assert.Equal(t, []string{"2003年中國", "2003年中国"}, Titles(2003))
}

func TestIsDisambiguation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain disambig", "foo\n{{disambig}}", true},
		{"disambig with params", "{{disambig|Cat=兩岸分治後各年中國消歧義}}", true},
		{"traditional", "{{消歧義}}", true},
		{"simplified", "{{消歧义}}", true},
		{"template prefix", "{{Template:Dab}}", true},
		{"chinese prefix", "{{模板:分歧页}}", true},
		{"short prefix", "{{T:disamb}}", true},
		{"disambiguation page", "{{Disambiguation page}}", true},
		{"aimai", "{{aimai}}", true},
		{"no markup", "'''1990年中國'''是……", false},
		{"redirect", "#REDIRECT [[1990年中國大陸]]", false},
		{"other template", "{{Infobox country}}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDisambiguation(tt.content))
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  string
		ok      bool
	}{
		{"upper", "#REDIRECT [[1990年中國大陸]]", "1990年中國大陸", true},
		{"mixed case", "#Redirect [[Foo]]\n{{R from alternative name}}", "Foo", true},
		{"chinese", "#重定向 [[Bar]]", "Bar", true},
		{"no space", "#REDIRECT[[Baz]]", "Baz", true},
		{"trailing text on line", "#REDIRECT [[Baz]] extra", "", false},
		{"not first line", "text\n#REDIRECT [[Baz]]", "", false},
		{"article", "'''Foo''' is a thing.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := RedirectTarget(tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.target, target)
		})
	}
}

// TestClassify verifies each page state is derived from content
func TestClassify(t *testing.T) {
	assert.Equal(t, PageState{Kind: Missing}, Classify(Page{Title: "x", Missing: true}))
	assert.Equal(t, PageState{Kind: Redirect, Target: "y"}, Classify(Page{Title: "x", Content: "#REDIRECT [[y]]"}))
	assert.Equal(t, PageState{Kind: Disambiguation}, Classify(Page{Title: "x", Content: "{{dab}}"}))
	assert.Equal(t, PageState{Kind: Other}, Classify(Page{Title: "x", Content: "article"}))

	// A redirect carrying disambiguation markup is still a disambiguation
	assert.Equal(t, Disambiguation, Classify(Page{Content: "#REDIRECT [[y]]\n{{disambig}}"}).Kind)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)

	m, err = ParseMode("permissive")
	require.NoError(t, err)
	assert.Equal(t, Permissive, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Strict, m, "empty should default to strict")

	_, err = ParseMode("lenient")
	assert.Error(t, err)
}

// TestPlan_NeitherExists verifies a fresh page is planned at the Traditional
// title
func TestPlan_NeitherExists(t *testing.T) {
	pages := []Page{
		{Title: HantTitle(1990), Missing: true},
		{Title: HansTitle(1990), Missing: true},
	}

	for _, mode := range []Mode{Strict, Permissive} {
		assert.Equal(t, []string{"1990年中國"}, Plan(1990, pages, mode))
	}
}

// TestPlan_DisambigAbandonsYear verifies disambiguation markup on either
// title abandons the year in both modes
func TestPlan_DisambigAbandonsYear(t *testing.T) {
	cases := [][]Page{
		{
			{Title: HantTitle(1990), Content: "{{disambig}}"},
			{Title: HansTitle(1990), Content: "#REDIRECT [[1990年中國]]"},
		},
		{
			{Title: HansTitle(1990), Content: "#REDIRECT [[1990年中國大陸]]"},
			{Title: HantTitle(1990), Content: "{{消歧義}}"},
		},
		{
			{Title: HantTitle(1990), Missing: true},
			{Title: HansTitle(1990), Content: "{{dab}}"},
		},
	}

	for _, pages := range cases {
		assert.Empty(t, Plan(1990, pages, Strict))
		assert.Empty(t, Plan(1990, pages, Permissive))
	}
}

// TestPlan_Redirects verifies redirects are overridable and the Traditional
// title comes first
func TestPlan_Redirects(t *testing.T) {
	pages := []Page{
		{Title: HansTitle(1985), Content: "#REDIRECT [[1985年中國大陸]]"},
		{Title: HantTitle(1985), Content: "#重定向 [[1985年中國大陸]]"},
	}

	assert.Equal(t, []string{"1985年中國", "1985年中国"}, Plan(1985, pages, Strict))
}

// TestPlan_OnlySimplifiedRedirect verifies a lone overridable redirect is the
// only planned title
func TestPlan_OnlySimplifiedRedirect(t *testing.T) {
	pages := []Page{
		{Title: HantTitle(1985), Missing: true},
		{Title: HansTitle(1985), Content: "#REDIRECT [[1985年中國大陸]]"},
	}

	assert.Equal(t, []string{"1985年中国"}, Plan(1985, pages, Strict))
}

// TestPlan_OtherContent verifies strict and permissive handling of pages that
// are neither redirects nor disambiguations
func TestPlan_OtherContent(t *testing.T) {
	pages := []Page{
		{Title: HantTitle(2001), Content: "'''2001年中國'''是……"},
		{Title: HansTitle(2001), Content: "#REDIRECT [[2001年中國]]"},
	}

	assert.Empty(t, Plan(2001, pages, Strict), "strict mode should abandon the year")
	assert.Equal(t, []string{"2001年中國", "2001年中国"}, Plan(2001, pages, Permissive))
}
