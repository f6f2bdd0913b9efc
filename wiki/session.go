// Package wiki is a thin MediaWiki Action API session: login, revision
// queries, edits, rendering and the contributions feed. It is not a general
// purpose client; it only exposes what the bot needs.
package wiki

import (
	"errors"
	"fmt"
	"log"

	mwclient "cgt.name/pkg/go-mwclient"
	"cgt.name/pkg/go-mwclient/params"
	"github.com/antonholmquist/jason"
)

// AttributionSuffix is appended to every edit summary.
const AttributionSuffix = " // github.com/Emojigit/ChinaDisambig"

// ErrLoginFailed is returned when the API answers a login with anything
// other than Success.
var ErrLoginFailed = errors.New("login failed")

// Client is the part of *mwclient.Client the session calls. It is an
// interface so tests can answer API calls from memory.
type Client interface {
	Get(p params.Values) (*jason.Object, error)
	Post(p params.Values) (*jason.Object, error)
}

// Session holds one cookie-bearing API client. Edits must be issued one at
// a time. Concurrent reads are only as safe as the underlying Client:
// *mwclient.Client sends each request through a shared net/http client and
// cookie jar, both of which allow concurrent use.
type Session struct {
	client    Client
	apiURL    string
	userAgent string
}

// NewSession creates a session against the given api.php endpoint.
func NewSession(apiURL, userAgent string) (*Session, error) {
	c, err := mwclient.New(apiURL, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return NewSessionWithClient(c, apiURL, userAgent), nil
}

// NewSessionWithClient wraps an existing client.
func NewSessionWithClient(c Client, apiURL, userAgent string) *Session {
	return &Session{
		client:    c,
		apiURL:    apiURL,
		userAgent: userAgent,
	}
}

// APIURL returns the api.php endpoint of the session.
func (s *Session) APIURL() string {
	return s.apiURL
}

func (s *Session) get(p params.Values) (*jason.Object, error) {
	return s.checked(s.client.Get(p))
}

func (s *Session) post(p params.Values) (*jason.Object, error) {
	return s.checked(s.client.Post(p))
}

// checked passes through responses that only carry warnings. The client
// reports warnings as an error next to a usable response; a response with an
// "error" member, or no response at all, is a real failure.
func (s *Session) checked(resp *jason.Object, err error) (*jason.Object, error) {
	if err == nil {
		return resp, nil
	}
	if resp == nil {
		return nil, err
	}
	if _, apiErr := resp.GetObject("error"); apiErr == nil {
		return nil, err
	}
	log.Printf("WARN: API warnings: %v", err)
	return resp, nil
}

// token fetches a fresh token of the given type ("login", "csrf").
func (s *Session) token(tokenType string) (string, error) {
	resp, err := s.get(params.Values{
		"action": "query",
		"meta":   "tokens",
		"type":   tokenType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s token: %w", tokenType, err)
	}

	token, err := resp.GetString("query", "tokens", tokenType+"token")
	if err != nil {
		return "", fmt.Errorf("failed to read %s token: %w", tokenType, err)
	}
	return token, nil
}

// Login authenticates the session with a bot username and password.
func (s *Session) Login(username, password string) error {
	token, err := s.token("login")
	if err != nil {
		return err
	}

	resp, err := s.post(params.Values{
		"action":     "login",
		"lgname":     username,
		"lgpassword": password,
		"lgtoken":    token,
	})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	result, err := resp.GetString("login", "result")
	if err != nil {
		return fmt.Errorf("failed to read login result: %w", err)
	}
	if result != "Success" {
		reason, _ := resp.GetString("login", "reason")
		return fmt.Errorf("%w: %s %s", ErrLoginFailed, result, reason)
	}

	log.Printf("INFO: Logged in as %s", username)
	return nil
}
