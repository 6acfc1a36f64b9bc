package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meeting-minutes/internal/middleware"
	"meeting-minutes/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cors, srv.upload)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	srv.gin.NoRoute(response.NotFound)
	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, nil)
	}))
	srv.gin.Use(mw.RequestID(), mw.Logger(), mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: %s, origin %s", srv.environment, srv.cors.AllowedOrigin)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootInfo)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if err := srv.setupTranscriptionDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupConfluenceDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
