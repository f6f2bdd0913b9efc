package disambig

import (
	"fmt"
	"strings"
)

const (
	// MainSummary is used for the page that receives the disambiguation
	// content.
	MainSummary = "半自動建立[[Category:兩岸分治後各年中國消歧義|]]（主頁面）：見[[User:1F616EMO/中國消歧義]]。"
	// RedirectSummary is used for the script-variant redirect.
	RedirectSummary = "半自動建立[[Category:兩岸分治後各年中國消歧義|]]（繁簡重定向）：見[[User:1F616EMO/中國消歧義]]。"

	reasonPrefix = "半自動建立[[Category:兩岸分治後各年中國消歧義|]]："
)

// PendingEdit is an edit proposed to the operator. Current holds the page's
// content before the edit and is empty for pages that do not exist yet.
type PendingEdit struct {
	Title   string
	Content string
	Summary string
	Current string
}

// RedirectContent returns redirect wikitext pointing at target.
func RedirectContent(target string) string {
	return "#REDIRECT [[" + target + "]]"
}

// Reason returns the log reason recorded for a year.
func Reason(year int) string {
	return fmt.Sprintf("%s%d年", reasonPrefix, year)
}

// BuildQueue turns the planned titles of a year into pending edits. The
// first title receives the disambiguation page, every other title becomes a
// redirect to it. pages supplies the current content of titles that exist.
func BuildQueue(year int, titles []string, pages []Page) []PendingEdit {
	if len(titles) == 0 {
		return nil
	}

	current := make(map[string]string, len(pages))
	for _, p := range pages {
		if !p.Missing {
			current[p.Title] = p.Content
		}
	}

	queue := make([]PendingEdit, 0, len(titles))
	for i, title := range titles {
		edit := PendingEdit{
			Title:   title,
			Current: current[title],
		}
		if i == 0 {
			edit.Content = Render(year)
			edit.Summary = MainSummary
		} else {
			edit.Content = RedirectContent(titles[0])
			edit.Summary = RedirectSummary
		}
		queue = append(queue, edit)
	}
	return queue
}

// LogEntry records one submitted edit for the wiki log page.
type LogEntry struct {
	Title   string
	Summary string
	RevID   int64
}

// FormatLog renders the wikitext appended to the log page for one year: a
// signed header line with the reason followed by one sub-entry per edit.
func FormatLog(reason string, entries []LogEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n* %s ~~~~~\n", reason)
	for _, e := range entries {
		fmt.Fprintf(&sb,
			"** [[%s]]的修訂版本%d（''%s''）（[[Special:permalink/%d|查看]]<nowiki>|</nowiki>[[Special:diff/%d|差異]]）\n",
			e.Title, e.RevID, e.Summary, e.RevID, e.RevID)
	}
	return sb.String()
}
