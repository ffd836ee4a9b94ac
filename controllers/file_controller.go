package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

// GetFiles lists the PDFs in the documents folder. An empty folder is a
// normal, empty response.
func GetFiles(c *gin.Context) {
	dir := c.MustGet("documents_dir").(string)

	files, err := services.ListPDFFiles(dir)
	if err != nil {
		log.Printf("[%s] list files: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read the documents folder"})
		return
	}
	c.JSON(http.StatusOK, files)
}
