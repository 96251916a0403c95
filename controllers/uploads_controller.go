package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/medcamp-server-go/config"
	utils "github.com/phillip/medcamp-server-go/utils"
)

// ---------------- UPLOAD IMAGE ----------------
// Accepts a camp photo as multipart form data, stores it on Cloudinary and
// returns the hosted URL for the camp's image field.
func UploadImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		url, err := utils.UploadToCloudinary(file, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "image upload failed",
				"details": err.Error(),
				"file":    fileHeader.Filename,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
