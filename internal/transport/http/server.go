package http

import (
	"github.com/gin-gonic/gin"

	"docqa/internal/bootstrap"
	"docqa/internal/transport/http/handler"
	"docqa/internal/transport/http/middleware"
)

const appName = "docqa"

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(app.Config.Server.CORSOrigins))
	router.MaxMultipartMemory = app.Config.MaxUploadBytes()

	healthHandler := handler.NewHealthHandler(appName, app.StartedAt, app.Pipeline)
	documentHandler := handler.NewDocumentHandler(app.Pipeline, app.Config.MaxUploadBytes())
	chatHandler := handler.NewChatHandler(app.Assistant)

	router.GET("/healthz", healthHandler.Check)
	router.POST("/upload", documentHandler.Upload)
	router.POST("/chat", chatHandler.Chat)

	return router
}
