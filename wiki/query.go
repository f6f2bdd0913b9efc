package wiki

import (
	"fmt"
	"strings"

	"cgt.name/pkg/go-mwclient/params"
)

// Page is one page of a revision query. Content is the main slot of the
// latest revision and is empty for missing pages.
type Page struct {
	Title   string
	Missing bool
	Content string
	RevID   int64
}

// FetchPages fetches the latest revision content of all titles in a single
// query. Pages come back in the order the API returns them.
func (s *Session) FetchPages(titles ...string) ([]Page, error) {
	resp, err := s.get(params.Values{
		"action":        "query",
		"prop":          "revisions",
		"titles":        strings.Join(titles, "|"),
		"rvprop":        "ids|content",
		"rvslots":       "main",
		"formatversion": "2",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}

	entries, err := resp.GetObjectArray("query", "pages")
	if err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}

	pages := make([]Page, 0, len(entries))
	for _, entry := range entries {
		title, err := entry.GetString("title")
		if err != nil {
			return nil, fmt.Errorf("failed to read page title: %w", err)
		}

		if missing, err := entry.GetBoolean("missing"); err == nil && missing {
			pages = append(pages, Page{Title: title, Missing: true})
			continue
		}

		revisions, err := entry.GetObjectArray("revisions")
		if err != nil || len(revisions) == 0 {
			return nil, fmt.Errorf("page %s has no revisions", title)
		}
		content, err := revisions[0].GetString("slots", "main", "content")
		if err != nil {
			return nil, fmt.Errorf("failed to read content of %s: %w", title, err)
		}
		revID, _ := revisions[0].GetInt64("revid")

		pages = append(pages, Page{
			Title:   title,
			Content: content,
			RevID:   revID,
		})
	}

	return pages, nil
}
