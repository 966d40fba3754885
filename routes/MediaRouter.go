package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/controllers"
)

func MediaRouter(incomingRoutes *gin.Engine, files *controllers.MediaController) {
	incomingRoutes.GET("/media/:fileId", files.Get)
}
