package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/annothem/annothem-backend/controller"
	middlewares "github.com/annothem/annothem-backend/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(middles.TelemetryMiddleware)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Annothem API is running!"})
	})

	imageRoutes := r.Group("/images")
	{
		imageRoutes.GET("", ctrl.ListImages)
		imageRoutes.POST("/upload", middles.RateLimitMiddleware, ctrl.UploadImage)
		imageRoutes.DELETE("/:image_id", ctrl.DeleteImage)
	}

	annotationRoutes := r.Group("/annotations")
	{
		annotationRoutes.GET("/:image_id", ctrl.GetAnnotations)
		annotationRoutes.POST("/:image_id", ctrl.SaveAnnotations)
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.Use(middles.AuthMiddleware)
		adminRoutes.GET("/storage", ctrl.StorageInfo)
	}

	return r
}
