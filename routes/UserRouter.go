package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/controllers"
)

func UserRouter(incomingRoutes *gin.Engine, users *controllers.UserController, requireAuth gin.HandlerFunc) {
	group := incomingRoutes.Group("/user")

	group.GET("/self", requireAuth, users.GetSelf)
	group.GET("/:userId", users.GetByID)
	group.PUT("/self", requireAuth, users.UpdateProfile)
	group.PUT("/self/avatar", requireAuth, users.UpdateAvatar)
	group.PUT("/self/cover", requireAuth, users.UpdateCover)
}
