package repository

// CreatePageOptions holds the parameters of a single create-page request.
type CreatePageOptions struct {
	SpaceKey string
	ParentID string
	Title    string
	// Body is Confluence storage-format XHTML.
	Body string
}
