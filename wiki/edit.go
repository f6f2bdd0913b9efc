package wiki

import (
	"fmt"
	"log"

	"cgt.name/pkg/go-mwclient/params"
)

// EditResult is what the API reports back for a successful edit. NewRevID
// is zero when NoChange is set.
type EditResult struct {
	Title    string
	OldRevID int64
	NewRevID int64
	NoChange bool
}

// Edit replaces the full text of a page. The summary gets the attribution
// suffix and the edit is flagged as a non-minor bot edit.
func (s *Session) Edit(title, text, summary string) (*EditResult, error) {
	return s.edit(params.Values{
		"title":   title,
		"text":    text,
		"summary": summary + AttributionSuffix,
	})
}

// AppendText appends text to the end of a page, creating it if needed.
func (s *Session) AppendText(title, text, summary string) (*EditResult, error) {
	return s.edit(params.Values{
		"title":      title,
		"appendtext": text,
		"summary":    summary + AttributionSuffix,
	})
}

func (s *Session) edit(p params.Values) (*EditResult, error) {
	token, err := s.token("csrf")
	if err != nil {
		return nil, err
	}

	p["action"] = "edit"
	p["token"] = token
	p["notminor"] = "true"
	p["bot"] = "true"
	p["formatversion"] = "2"

	title := p["title"]
	resp, err := s.post(p)
	if err != nil {
		return nil, fmt.Errorf("failed to edit %s: %w", title, err)
	}

	result, err := resp.GetString("edit", "result")
	if err != nil {
		return nil, fmt.Errorf("failed to read edit result for %s: %w", title, err)
	}
	if result != "Success" {
		return nil, fmt.Errorf("edit of %s was not accepted: %s", title, result)
	}

	res := &EditResult{Title: title}
	if noChange, err := resp.GetBoolean("edit", "nochange"); err == nil && noChange {
		res.NoChange = true
		log.Printf("INFO: Edit of %s made no change", title)
		return res, nil
	}

	res.NewRevID, err = resp.GetInt64("edit", "newrevid")
	if err != nil {
		return nil, fmt.Errorf("failed to read new revision of %s: %w", title, err)
	}
	// oldrevid is absent when the page was just created
	res.OldRevID, _ = resp.GetInt64("edit", "oldrevid")

	return res, nil
}
