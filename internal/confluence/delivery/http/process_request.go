package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "meeting-minutes/pkg/errors"
)

// processListPagesReq binds the space key path param and the filter query.
func (h *handler) processListPagesReq(c *gin.Context) (listPagesReq, error) {
	var req listPagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	req.SpaceKey = c.Param("spaceKey")
	return req, nil
}

// processPublishReq binds and validates the publish request body.
func (h *handler) processPublishReq(c *gin.Context) (publishReq, error) {
	var req publishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}
