package wiki

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

// Contribution is one entry of a user's contributions feed.
type Contribution struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Link      string    `json:"link"`
	Author    string    `json:"author,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ContributionsURL returns the Atom contributions feed URL of a user.
func (s *Session) ContributionsURL(user string) (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}

	q := url.Values{}
	q.Set("action", "feedcontributions")
	q.Set("user", user)
	q.Set("feedformat", "atom")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Contributions fetches and parses a user's contributions feed.
func (s *Session) Contributions(ctx context.Context, user string) ([]Contribution, error) {
	feedURL, err := s.ContributionsURL(user)
	if err != nil {
		return nil, err
	}

	fp := gofeed.NewParser()
	fp.UserAgent = s.userAgent
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return FeedToContributions(feed), nil
}

// FeedToContributions converts the items of a contributions feed.
func FeedToContributions(feed *gofeed.Feed) []Contribution {
	contribs := make([]Contribution, 0, len(feed.Items))
	for _, item := range feed.Items {
		c := Contribution{
			Title:   item.Title,
			Summary: item.Description,
			Link:    item.Link,
		}
		if item.Author != nil {
			c.Author = item.Author.Name
		}

		// Atom entries carry <updated>; fall back to <published>
		if item.UpdatedParsed != nil {
			c.Timestamp = *item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			c.Timestamp = *item.PublishedParsed
		}

		contribs = append(contribs, c)
	}
	return contribs
}
