package disambig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildQueue_Single verifies a fresh year queues one main edit
func TestBuildQueue_Single(t *testing.T) {
	queue := BuildQueue(1990, []string{"1990年中國"}, []Page{
		{Title: "1990年中國", Missing: true},
		{Title: "1990年中国", Missing: true},
	})

	require.Len(t, queue, 1)
	assert.Equal(t, "1990年中國", queue[0].Title)
	assert.Equal(t, Render(1990), queue[0].Content)
	assert.Equal(t, MainSummary, queue[0].Summary)
	assert.Empty(t, queue[0].Current, "missing page has no current content")
}

// TestBuildQueue_Redirect verifies further titles redirect to the first
func TestBuildQueue_Redirect(t *testing.T) {
	pages := []Page{
		{Title: "1998年中國", Content: "#REDIRECT [[1998年中國大陸]]"},
		{Title: "1998年中国", Content: "#REDIRECT [[1998年中国大陆]]"},
	}
	queue := BuildQueue(1998, []string{"1998年中國", "1998年中国"}, pages)

	require.Len(t, queue, 2)
	assert.Equal(t, Render(1998), queue[0].Content)
	assert.Equal(t, "#REDIRECT [[1998年中國大陸]]", queue[0].Current)

	assert.Equal(t, "1998年中国", queue[1].Title)
	assert.Equal(t, "#REDIRECT [[1998年中國]]", queue[1].Content)
	assert.Equal(t, RedirectSummary, queue[1].Summary)
	assert.Equal(t, "#REDIRECT [[1998年中国大陆]]", queue[1].Current)
}

func TestBuildQueue_Empty(t *testing.T) {
	assert.Nil(t, BuildQueue(1990, nil, nil))
}

func TestReason(t *testing.T) {
	assert.Equal(t, "半自動建立[[Category:兩岸分治後各年中國消歧義|]]：1990年", Reason(1990))
}

// TestFormatLog verifies the header and one line per entry
func TestFormatLog(t *testing.T) {
	text := FormatLog("reason", []LogEntry{
		{Title: "1990年中國", Summary: "main", RevID: 123},
		{Title: "1990年中国", Summary: "redir", RevID: 124},
	})

	expected := "\n* reason ~~~~~\n" +
		"** [[1990年中國]]的修訂版本123（''main''）（[[Special:permalink/123|查看]]<nowiki>|</nowiki>[[Special:diff/123|差異]]）\n" +
		"** [[1990年中国]]的修訂版本124（''redir''）（[[Special:permalink/124|查看]]<nowiki>|</nowiki>[[Special:diff/124|差異]]）\n"
	assert.Equal(t, expected, text)
}

func TestFormatLog_NoEntries(t *testing.T) {
	assert.Equal(t, "\n* reason ~~~~~\n", FormatLog("reason", nil))
}
