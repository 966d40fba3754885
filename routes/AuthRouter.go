package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/controllers"
)

func AuthRouter(incomingRoutes *gin.Engine, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	group := incomingRoutes.Group("/auth")

	group.POST("/register", auth.Register)
	group.POST("/login", auth.Login)
	group.POST("/logout", auth.Logout)
	group.GET("/check-session", requireAuth, auth.CheckSession)
}
