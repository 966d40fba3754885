package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/media"
	"github.com/zarjin/FaceBook-Clone/models"
	"github.com/zarjin/FaceBook-Clone/store"
)

type UserController struct {
	users store.IdentityStore
	media media.Storage
}

func NewUserController(users store.IdentityStore, media media.Storage) *UserController {
	return &UserController{users: users, media: media}
}

func (uc *UserController) GetSelf(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.FindUserByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetByID(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User does not exist"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.FindUserByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileUpdateRequest struct {
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Work      *string `json:"work"`
	Education *string `json:"education"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.users.UpdateProfile(ctx, userID, store.ProfileUpdate{
		Bio:       req.Bio,
		Location:  req.Location,
		Work:      req.Work,
		Education: req.Education,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateAvatar(c *gin.Context) {
	uc.updateImage(c, "avatar", uc.users.SetAvatar)
}

func (uc *UserController) UpdateCover(c *gin.Context) {
	uc.updateImage(c, "cover", uc.users.SetCover)
}

// updateImage stores the uploaded file and writes its URL onto the user
// record via the given setter.
func (uc *UserController) updateImage(c *gin.Context, field string,
	set func(context.Context, primitive.ObjectID, string) (models.User, error)) {

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A " + field + " file is required"})
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
		return
	}
	defer src.Close()

	ctx, cancel := requestContext(c)
	defer cancel()

	url, err := uc.media.Save(ctx, fileHeader.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := set(ctx, userID, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
