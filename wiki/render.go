package wiki

import (
	"fmt"
	"net/url"
	"strings"

	"cgt.name/pkg/go-mwclient/params"
	"github.com/PuerkitoBio/goquery"
)

// Link is an internal wiki link found in rendered HTML. Exists is false for
// red links.
type Link struct {
	Title  string
	Exists bool
}

// Render renders wikitext as it would appear on the given title and returns
// the HTML body.
func (s *Session) Render(title, wikitext string) (string, error) {
	// POST because the text may be long
	resp, err := s.post(params.Values{
		"action":             "parse",
		"title":              title,
		"text":               wikitext,
		"contentmodel":       "wikitext",
		"prop":               "text",
		"disablelimitreport": "1",
		"formatversion":      "2",
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", title, err)
	}

	html, err := resp.GetString("parse", "text")
	if err != nil {
		return "", fmt.Errorf("failed to read rendered text: %w", err)
	}
	return html, nil
}

// RenderLinks renders wikitext and extracts its internal links.
func (s *Session) RenderLinks(title, wikitext string) ([]Link, error) {
	html, err := s.Render(title, wikitext)
	if err != nil {
		return nil, err
	}
	return ExtractLinks(html)
}

// ExtractLinks lists the internal links of rendered page HTML in document
// order, once per title. External links and same-page anchors are skipped.
func ExtractLinks(html string) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var links []Link
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if sel.HasClass("external") {
			return
		}
		href, _ := sel.Attr("href")
		title, redlink, ok := linkTarget(href)
		if !ok || seen[title] {
			return
		}
		seen[title] = true

		links = append(links, Link{
			Title:  title,
			Exists: !redlink && !sel.HasClass("new"),
		})
	})

	return links, nil
}

// linkTarget decodes the page title out of an internal link. Existing pages
// link to /wiki/Title, red links to index.php?title=Title&redlink=1.
func linkTarget(href string) (title string, redlink, ok bool) {
	u, err := url.Parse(href)
	if err != nil || u.Host != "" || u.Path == "" {
		return "", false, false
	}

	if rest, found := strings.CutPrefix(u.Path, "/wiki/"); found {
		title = rest
	} else if strings.HasSuffix(u.Path, "/index.php") {
		title = u.Query().Get("title")
		redlink = u.Query().Get("redlink") == "1"
	}
	if title == "" {
		return "", false, false
	}

	return strings.ReplaceAll(title, "_", " "), redlink, true
}
