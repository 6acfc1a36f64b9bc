package confluence

const (
	// API path prefixes relative to the site base URL.
	PathV1 = "/wiki/rest/api"
	PathV2 = "/wiki/api/v2"

	// WebPrefix is prepended to _links.webui when building browsable URLs.
	WebPrefix = "/wiki"

	// maxErrorBody bounds how much of an error body is kept on errors.
	maxErrorBody = 4 << 10
)
