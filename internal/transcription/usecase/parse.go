package usecase

import (
	"encoding/json"
	"strings"
)

const (
	defaultTitle   = "Meeting Minutes"
	defaultSummary = "A summary could not be generated."
)

// minutes is the structured part of a transcript produced by the model.
type minutes struct {
	Title        string
	Content      string
	Summary      string
	Participants []string
	KeyPoints    []string
	ActionItems  []string
}

// parseMinutes decodes the model reply leniently. Missing or mistyped fields
// fall back to defaults; only a reply that is not a JSON object is an error.
func parseMinutes(reply, transcript string) (minutes, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &raw); err != nil {
		return minutes{}, err
	}

	m := minutes{
		Title:        stringField(raw, "title"),
		Content:      stringField(raw, "content"),
		Summary:      stringField(raw, "summary"),
		Participants: stringsField(raw, "participants"),
		KeyPoints:    stringsField(raw, "keyPoints"),
		ActionItems:  stringsField(raw, "actionItems"),
	}
	if m.Title == "" {
		m.Title = defaultTitle
	}
	if m.Content == "" {
		m.Content = transcript
	}
	if m.Summary == "" {
		m.Summary = defaultSummary
	}
	return m, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func stringField(raw map[string]json.RawMessage, key string) string {
	var s string
	if v, ok := raw[key]; ok && json.Unmarshal(v, &s) == nil {
		return strings.TrimSpace(s)
	}
	return ""
}

// stringsField keeps the string entries of an array field; anything else yields [].
func stringsField(raw map[string]json.RawMessage, key string) []string {
	out := []string{}

	var items []json.RawMessage
	v, ok := raw[key]
	if !ok || json.Unmarshal(v, &items) != nil {
		return out
	}
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
