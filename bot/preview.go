package bot

import (
	"fmt"

	"github.com/emojigit/chinadisambig/disambig"
	"github.com/emojigit/chinadisambig/wiki"
)

// Renderer renders wikitext and lists its links.
type Renderer interface {
	RenderLinks(title, wikitext string) ([]wiki.Link, error)
}

// ArticleStatus tells whether one of a year's regional articles exists.
// Linked is false if the rendered page did not link it at all.
type ArticleStatus struct {
	Title  string
	Linked bool
	Exists bool
}

// Preview is a year's page text together with the state of the articles it
// points to.
type Preview struct {
	Year     int
	Title    string
	Text     string
	Articles []ArticleStatus
}

// PreviewYear renders the year's disambiguation page on the live wiki
// without saving it and reports which regional articles are red links.
func PreviewYear(r Renderer, year int) (*Preview, error) {
	p := &Preview{
		Year:  year,
		Title: disambig.HantTitle(year),
		Text:  disambig.Render(year),
	}

	links, err := r.RenderLinks(p.Title, p.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to preview %d: %w", year, err)
	}

	byTitle := make(map[string]wiki.Link, len(links))
	for _, l := range links {
		byTitle[l.Title] = l
	}

	for _, article := range disambig.SubArticles(year) {
		l, ok := byTitle[article]
		p.Articles = append(p.Articles, ArticleStatus{
			Title:  article,
			Linked: ok,
			Exists: ok && l.Exists,
		})
	}
	return p, nil
}
