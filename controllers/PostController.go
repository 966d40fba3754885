package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/media"
	"github.com/zarjin/FaceBook-Clone/services"
)

type PostController struct {
	posts *services.PostService
	media media.Storage
}

func NewPostController(posts *services.PostService, media media.Storage) *PostController {
	return &PostController{posts: posts, media: media}
}

// Create takes a multipart form with a required text field and an optional
// image. The image is stored first; its URL goes on the post.
func (pc *PostController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	text := c.PostForm("text")

	ctx, cancel := requestContext(c)
	defer cancel()

	var imageURL string
	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
			return
		}
		defer src.Close()

		imageURL, err = pc.media.Save(ctx, fileHeader.Filename, src)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	post, err := pc.posts.Create(ctx, userID, text, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) Get(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post does not exist"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := pc.posts.Get(ctx, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	feed, err := pc.posts.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// ToggleLike responds with the bare string "Liked" or "Unliked".
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post does not exist"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := pc.posts.ToggleLike(ctx, userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type commentRequest struct {
	Comment string `json:"comment"`
}

func (pc *PostController) Comment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post does not exist"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment is required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := pc.posts.AddComment(ctx, userID, postID, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added"})
}
