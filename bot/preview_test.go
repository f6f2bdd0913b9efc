package bot

import (
	"errors"
	"testing"

	"github.com/emojigit/chinadisambig/disambig"
	"github.com/emojigit/chinadisambig/wiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	links    []wiki.Link
	err      error
	title    string
	wikitext string
}

func (f *fakeRenderer) RenderLinks(title, wikitext string) ([]wiki.Link, error) {
	f.title = title
	f.wikitext = wikitext
	return f.links, f.err
}

// TestPreviewYear verifies red links are reported per regional article
func TestPreviewYear(t *testing.T) {
	r := &fakeRenderer{links: []wiki.Link{
		{Title: "de facto", Exists: true},
		{Title: "1999年中國大陸", Exists: true},
		{Title: "1999年香港", Exists: true},
		{Title: "1999年澳門", Exists: false},
	}}

	p, err := PreviewYear(r, 1999)
	require.NoError(t, err)

	assert.Equal(t, "1999年中國", r.title)
	assert.Equal(t, disambig.Render(1999), r.wikitext)
	assert.Equal(t, r.wikitext, p.Text)
	assert.Equal(t, []ArticleStatus{
		{Title: "1999年中國大陸", Linked: true, Exists: true},
		{Title: "1999年香港", Linked: true, Exists: true},
		{Title: "1999年澳門", Linked: true, Exists: false},
		{Title: "1999年臺灣", Linked: false, Exists: false},
	}, p.Articles)
}

func TestPreviewYear_Error(t *testing.T) {
	r := &fakeRenderer{err: errors.New("boom")}

	p, err := PreviewYear(r, 1999)
	assert.Error(t, err)
	assert.Nil(t, p)
}
