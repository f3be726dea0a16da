package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/takeuforward/portal/docs" // registers the swagger spec
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// SetupStatic serves locally stored uploads under urlPath
func SetupStatic(router *gin.Engine, urlPath, dir string) {
	if urlPath == "" || dir == "" {
		return
	}
	router.Static(urlPath, dir)
}
