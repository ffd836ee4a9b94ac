package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/controllers"
	"github.com/luisfelipe-wekan/knowledge-extractor/middleware"
	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

func SetupRouter(r *gin.Engine, gateway *services.Gateway, documentsDir string) *gin.Engine {
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.GatewayMiddleware(gateway), middleware.DocumentsMiddleware(documentsDir))
	{
		api.GET("/files", controllers.GetFiles)
		api.GET("/flashcards", controllers.GetFlashcards)
		api.GET("/quiz", controllers.GetQuiz)
		api.POST("/quiz/grade", controllers.GradeQuiz)
	}

	return r
}
