package api

import "github.com/gin-gonic/gin"

// SetupRouter wires the HTTP routes onto a fresh gin engine.
func SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/healthz", HealthHandler)
	router.POST("/api/paths", PathsHandler)

	return router
}
