package model

// ContentType tags a node of the wiki content tree.
type ContentType string

const (
	ContentTypePage   ContentType = "page"
	ContentTypeFolder ContentType = "folder"
)

// Space is a top-level Confluence container.
type Space struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ContentItem is a page or folder in a space's content tree.
// Depth and HasChildren are computed by the hierarchy builder.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	ParentID    string      `json:"parentId,omitempty"`
	ParentType  string      `json:"parentType,omitempty"`
	Depth       int         `json:"level"`
	HasChildren bool        `json:"hasChildren"`
	Position    *int        `json:"position,omitempty"`
}

// IsFolder reports whether the item is an organizational folder.
func (i ContentItem) IsFolder() bool {
	return i.Type == ContentTypeFolder
}

// PublishedPage describes a page created in the wiki.
type PublishedPage struct {
	PageID string `json:"pageId"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}
