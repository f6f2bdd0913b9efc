package disambig

import (
	"fmt"
	"regexp"
)

var (
	redirectRegex = regexp.MustCompile(
		`^#([Rr][Ee][Dd][Ii][Rr][Ee][Cc][Tt]|重定向) *\[\[(.*?)\]\] *(\n|$)`)

	disambigRegex = regexp.MustCompile(
		`\{\{(([Tt]([Ee][Mm][Pp][Ll][Aa][Tt][Ee])?|模板):)?(消歧[義义]|分歧義|[Dd]ab|分歧页?|[Dd]isamb(ig(uous)?|uation page)?|[Aa]imai)\|?.*?\}\}`)
)

// Kind is the classification of a single existing or missing page.
type Kind int

const (
	Missing Kind = iota
	Redirect
	Disambiguation
	Other
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Redirect:
		return "redirect"
	case Disambiguation:
		return "disambig"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PageState is the derived state of a page. Target is only set for
// redirects.
type PageState struct {
	Kind   Kind
	Target string
}

// Page is a page as returned by a revision query. Content is empty when the
// page is missing.
type Page struct {
	Title   string
	Missing bool
	Content string
}

// Mode selects how pages that are neither redirects nor disambiguation
// pages are treated.
type Mode int

const (
	// Strict abandons the year when an existing page is neither a redirect
	// nor a disambiguation page.
	Strict Mode = iota
	// Permissive treats such pages as safe to overwrite.
	Permissive
)

func (m Mode) String() string {
	if m == Permissive {
		return "permissive"
	}
	return "strict"
}

// ParseMode parses "strict" or "permissive".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return Strict, fmt.Errorf("invalid mode %q: must be strict or permissive", s)
	}
}

// IsDisambiguation reports whether content carries a disambiguation
// template anywhere in it.
func IsDisambiguation(content string) bool {
	return disambigRegex.MatchString(content)
}

// RedirectTarget returns the target of a redirect page and whether content
// is a redirect at all. Only a redirect on the first line counts.
func RedirectTarget(content string) (string, bool) {
	m := redirectRegex.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// Classify derives the state of a page. Disambiguation markup wins over a
// redirect line.
func Classify(p Page) PageState {
	if p.Missing {
		return PageState{Kind: Missing}
	}
	if IsDisambiguation(p.Content) {
		return PageState{Kind: Disambiguation}
	}
	if target, ok := RedirectTarget(p.Content); ok {
		return PageState{Kind: Redirect, Target: target}
	}
	return PageState{Kind: Other}
}

// Plan decides which titles of a year get overwritten. An empty result
// means the year needs no action. When nothing exists yet, the result is the
// Traditional title alone so that it gets created fresh.
//
// The returned titles are ordered with the Traditional title first, so the
// first title is always the one that receives the disambiguation content.
func Plan(year int, pages []Page, mode Mode) []string {
	var titles []string
	for _, p := range pages {
		state := Classify(p)
		switch state.Kind {
		case Missing:
			continue
		case Disambiguation:
			return nil
		case Redirect:
			titles = append(titles, p.Title)
		case Other:
			if mode == Strict {
				return nil
			}
			titles = append(titles, p.Title)
		}
	}

	if len(titles) == 0 {
		return []string{HantTitle(year)}
	}

	hant := HantTitle(year)
	for i, t := range titles {
		if t == hant && i != 0 {
			titles[0], titles[i] = titles[i], titles[0]
			break
		}
	}
	return titles
}
