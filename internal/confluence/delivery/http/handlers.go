package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "meeting-minutes/pkg/errors"
	"meeting-minutes/pkg/response"
)

// Health godoc
// @Summary     Confluence integration status
// @Description Reports whether every required Confluence variable is set.
// @Tags        Confluence
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{} "missingVariables lists the unset variables"
// @Router      /api/confluence/health [GET]
func (h *handler) Health(c *gin.Context) {
	out := h.uc.Health(c.Request.Context())
	if !out.Configured {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Confluence configuration is incomplete").
			WithData(map[string]any{"missingVariables": out.MissingVariables}))
		return
	}

	response.Success(c, gin.H{
		"message":  "Confluence integration is configured",
		"baseUrl":  out.BaseURL,
		"spaceKey": out.SpaceKey,
	})
}

// ListSpaces godoc
// @Summary     List spaces
// @Description Returns every space visible to the configured account, sorted by name.
// @Tags        Confluence
// @Produce     json
// @Success     200 {object} response.Resp{data=[]model.Space}
// @Failure     502 {object} response.Resp "Upstream listing failed"
// @Failure     503 {object} response.Resp "Not configured"
// @Router      /api/confluence/spaces [GET]
func (h *handler) ListSpaces(c *gin.Context) {
	ctx := c.Request.Context()

	spaces, err := h.uc.ListSpaces(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSpaces: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, spaces)
}

// ListPages godoc
// @Summary     List pages of a space
// @Description Returns the pages and folders of a space with computed level and hasChildren.
// @Tags        Confluence
// @Produce     json
// @Param       spaceKey path  string true  "Space key"
// @Param       parentId query string false "Only direct children of this item"
// @Param       view     query string false "containers: folders, items with children and shallow items only"
// @Success     200 {object} response.Resp{data=[]model.ContentItem}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream listing failed"
// @Router      /api/confluence/spaces/{spaceKey}/pages [GET]
func (h *handler) ListPages(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListPagesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.ListPages(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, items)
}

// Publish godoc
// @Summary     Publish a transcript
// @Description Creates a Confluence page from a transcript under the given space and parent.
// @Tags        Confluence
// @Accept      json
// @Produce     json
// @Param       body body publishReq true "Transcript and destination"
// @Success     200 {object} response.Resp{data=publishResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Page creation failed"
// @Router      /api/confluence/upload [POST]
func (h *handler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPublishReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.uc.Publish(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Publish: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPublishResp(page))
}
