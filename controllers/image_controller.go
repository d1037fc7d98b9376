package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restaurant-api/database"
)

// imageFile mirrors the GridFS files-collection document for metadata checks.
type imageFile struct {
	ID       primitive.ObjectID `bson:"_id"`
	Filename string             `bson:"filename"`
	Metadata struct {
		RestaurantID primitive.ObjectID `bson:"restaurant_id"`
		ContentType  string             `bson:"contentType"`
	} `bson:"metadata"`
}

// UploadRestaurantImage stores the raw upload in GridFS tagged with the
// restaurant id. The restaurant is not required to exist.
func UploadRestaurantImage(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	opts := options.GridFSUpload().SetMetadata(bson.M{
		"restaurant_id": restaurantID,
		"contentType":   header.Header.Get("Content-Type"),
	})

	fileID, err := database.ImageBucket.UploadFromStream(header.Filename, file, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"file_id": fileID.Hex()})
}

// DownloadRestaurantImage streams the stored bytes back. A blob whose
// restaurant tag does not match the path id is reported exactly like a
// missing blob, so ids cannot be probed across restaurants.
func DownloadRestaurantImage(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}
	fileID, err := primitive.ObjectIDFromHex(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var file imageFile
	err = database.ImageBucket.GetFilesCollection().FindOne(ctx, bson.M{"_id": fileID}).Decode(&file)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	if file.Metadata.RestaurantID != restaurantID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	var buf bytes.Buffer
	if _, err := database.ImageBucket.DownloadToStream(fileID, &buf); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	contentType := file.Metadata.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", file.Filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
