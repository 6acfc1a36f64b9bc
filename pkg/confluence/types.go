package confluence

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexibleID accepts ids encoded either as JSON strings (v2) or numbers (v1).
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

// String returns the id as a plain string.
func (id FlexibleID) String() string { return string(id) }

// Links is the _links object found on most Confluence resources.
type Links struct {
	Next  string `json:"next,omitempty"`
	Base  string `json:"base,omitempty"`
	WebUI string `json:"webui,omitempty"`
}

// envelope is the paged listing wrapper shared by v1 and v2.
type envelope[T any] struct {
	Results []T   `json:"results"`
	Links   Links `json:"_links"`
}

// Space is a space as returned by either API generation.
type Space struct {
	ID   FlexibleID `json:"id"`
	Key  string     `json:"key"`
	Name string     `json:"name"`
	Type string     `json:"type,omitempty"`
}

// ContentV2 is a page or folder from the v2 API.
type ContentV2 struct {
	ID         FlexibleID `json:"id"`
	Type       string     `json:"type,omitempty"`
	Title      string     `json:"title"`
	Status     string     `json:"status,omitempty"`
	ParentID   FlexibleID `json:"parentId,omitempty"`
	ParentType string     `json:"parentType,omitempty"`
	Position   *int       `json:"position,omitempty"`
	SpaceID    FlexibleID `json:"spaceId,omitempty"`
}

// Ancestor is an entry of a v1 content's ancestors array.
type Ancestor struct {
	ID    FlexibleID `json:"id"`
	Type  string     `json:"type,omitempty"`
	Title string     `json:"title,omitempty"`
}

// ContentV1 is a content object from the v1 API.
type ContentV1 struct {
	ID        FlexibleID `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Ancestors []Ancestor `json:"ancestors,omitempty"`
	Links     Links      `json:"_links"`
}

// ParentID returns the id of the closest ancestor, or "" for top-level content.
func (c ContentV1) ParentID() string {
	if len(c.Ancestors) == 0 {
		return ""
	}
	return c.Ancestors[len(c.Ancestors)-1].ID.String()
}

// CreatePageRequest is the body of POST /wiki/rest/api/content.
type CreatePageRequest struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Space     SpaceRef   `json:"space"`
	Body      PageBody   `json:"body"`
	Ancestors []Ancestor `json:"ancestors,omitempty"`
}

type SpaceRef struct {
	Key string `json:"key"`
}

type PageBody struct {
	Storage StorageValue `json:"storage"`
}

type StorageValue struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

// NewCreatePageRequest builds a storage-format page request.
func NewCreatePageRequest(spaceKey, title, storage, parentID string) CreatePageRequest {
	req := CreatePageRequest{
		Type:  "page",
		Title: title,
		Space: SpaceRef{Key: spaceKey},
		Body: PageBody{Storage: StorageValue{
			Value:          storage,
			Representation: "storage",
		}},
	}
	if parentID != "" {
		req.Ancestors = []Ancestor{{ID: FlexibleID(parentID)}}
	}
	return req
}

// itoa is a small helper for building query strings.
func itoa(n int) string { return strconv.Itoa(n) }
