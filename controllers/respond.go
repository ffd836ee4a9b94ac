package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

const noDocumentsMessage = "No PDF documents found. Add PDFs to the ./documents folder."

// respondScanError maps document-scan failures: an empty corpus is 404, a
// broken folder is 500.
func respondScanError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": noDocumentsMessage})
		return
	}
	log.Printf("[%s] scan documents: %v", c.GetString("request_id"), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read the documents folder"})
}

// respondGenerationError maps gateway errors onto HTTP statuses. "The model
// never answered" (502) and "the model answered badly" (500) stay
// distinguishable for operators; a missing API key is 503.
func respondGenerationError(c *gin.Context, what string, err error) {
	requestID := c.GetString("request_id")

	if errors.Is(err, services.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GEMINI_API_KEY is not configured"})
		return
	}

	var malformed *services.MalformedOutputError
	if errors.As(err, &malformed) {
		log.Printf("[%s] %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The model returned an unusable reply. Please try again."})
		return
	}

	log.Printf("[%s] %v", requestID, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate " + what + ". Please try again."})
}
