package response

// Resp is the standard JSON response body.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	// DefaultErrorMessage is shown for errors that carry no user-facing text.
	DefaultErrorMessage = "an internal server error occurred"
)
