package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	confluenceHTTP "meeting-minutes/internal/confluence/delivery/http"
	"meeting-minutes/internal/confluence/repository/wiki"
	confluenceUC "meeting-minutes/internal/confluence/usecase"
)

// setupConfluenceDomain wires the wiki listing sources and publisher and
// registers /api/confluence/*.
func (srv HTTPServer) setupConfluenceDomain(ctx context.Context, api *gin.RouterGroup) error {
	spaces, content := wiki.Sources(srv.confluenceAPI, wiki.Options{
		MaxItems: srv.confluence.MaxItems,
		CacheTTL: srv.confluence.CacheTTL,
	}, srv.l)
	publisher := wiki.NewPublisher(srv.confluenceAPI, srv.l)

	uc := confluenceUC.New(spaces, content, publisher, srv.confluence, srv.location, srv.l)

	h := confluenceHTTP.New(srv.l, uc)
	confluenceHTTP.RegisterRoutes(api.Group("/confluence"), h)

	if missing := srv.confluence.MissingVariables(); len(missing) > 0 {
		srv.l.Warnf(ctx, "Confluence integration incomplete, missing %v", missing)
	}
	srv.l.Infof(ctx, "Confluence domain registered")
	return nil
}
