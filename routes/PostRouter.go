package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/controllers"
)

func PostRouter(incomingRoutes *gin.Engine, posts *controllers.PostController, requireAuth gin.HandlerFunc) {
	group := incomingRoutes.Group("/post")

	group.POST("", requireAuth, posts.Create)
	group.GET("", posts.List)
	group.GET("/:postId", posts.Get)
	group.PUT("/:postId/like", requireAuth, posts.ToggleLike)
	group.PUT("/:postId/comment", requireAuth, posts.Comment)
}
