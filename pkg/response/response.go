package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "meeting-minutes/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data wrapped under "data".
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Success sends 200 JSON with fields placed next to "success".
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{}
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

// Error sends {success:false, error} with the status carried by err.
// Errors that are not *errors.HTTPError are rendered as 500 with a generic message.
func Error(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)

	body := gin.H{}
	for k, v := range httpErr.Data {
		body[k] = v
	}
	body["success"] = false
	body["error"] = httpErr.Message

	c.JSON(httpErr.StatusCode, body)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}

// NotFound sends 404 for unmatched routes.
func NotFound(c *gin.Context) {
	Error(c, pkgErrors.ErrNotFound)
}
