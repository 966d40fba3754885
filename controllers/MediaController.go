package controllers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/media"
)

type MediaController struct {
	media media.Storage
}

func NewMediaController(media media.Storage) *MediaController {
	return &MediaController{media: media}
}

// Get streams a stored file back to the client. URLs produced by
// media.Storage.Save resolve here.
func (mc *MediaController) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stream, name, err := mc.media.Open(ctx, c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}
	defer stream.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)

	if _, err := io.Copy(c.Writer, stream); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to stream file"})
	}
}
