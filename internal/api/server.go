package api

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kelimeavi/wordhunt-api/docs"
	v1 "github.com/kelimeavi/wordhunt-api/internal/api/handler/v1"
	"github.com/kelimeavi/wordhunt-api/internal/api/middleware"
	"github.com/kelimeavi/wordhunt-api/internal/config"
	"github.com/kelimeavi/wordhunt-api/internal/repository"
	"github.com/kelimeavi/wordhunt-api/internal/repository/dao"
	"github.com/kelimeavi/wordhunt-api/internal/service"
	"github.com/kelimeavi/wordhunt-api/web"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	eventHandler := s.initEventHandler(db)
	submissionHandler := s.initSubmissionHandler(db)
	adminHandler := s.initAdminHandler(db)
	s.MountHandlers(eventHandler, submissionHandler, adminHandler)

	return s
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initSubmissionHandler(db *gorm.DB) *v1.SubmissionHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewSubmissionService(repo)
	handler := v1.NewSubmissionHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(eventHandler *v1.EventHandler, submissionHandler *v1.SubmissionHandler, adminHandler *v1.AdminHandler) {
	api := s.Router.Group("/api")
	{
		api.GET("/health", v1.HandleHealthcheck)
		api.GET("/config/:eventID", eventHandler.HandleGetConfig)
		api.GET("/grid/:eventID", eventHandler.HandleGetGrid)
		api.POST("/submit/:eventID", submissionHandler.HandleSubmit)
	}

	admin := s.Router.Group("/admin", middleware.NewAdminAuthenticator(s.Config.API.AdminToken).RequireToken())
	{
		admin.POST("/event", adminHandler.HandleUpsertEvent)
		admin.GET("/event/:eventID", adminHandler.HandleGetEvent)
		admin.GET("/event/:eventID/submissions", adminHandler.HandleGetSubmissions)
	}

	s.mountClient()

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "Word-Hunt Event API"
	docs.SwaggerInfo.Description = "Word-search game events with quota-capped submissions."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// mountClient serves the embedded static frontend and its runtime config
// document, so the same binary can host the game page.
func (s *Server) mountClient() {
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(fmt.Errorf("fs.Sub -> %w", err))
	}

	s.Router.StaticFS("/app", http.FS(staticFS))
	s.Router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusMovedPermanently, "/app")
	})

	s.Router.GET("/runtime-config.js", func(ctx *gin.Context) {
		js := fmt.Sprintf("window.__CONFIG__ = { BACKEND_URL: %q };\n", s.Config.API.PublicBackendURL)
		ctx.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(js))
	})
}
