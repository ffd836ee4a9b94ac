package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

// GetFlashcards generates flashcards from the combined text of every PDF in
// the documents folder.
func GetFlashcards(c *gin.Context) {
	gateway := c.MustGet("gateway").(*services.Gateway)
	dir := c.MustGet("documents_dir").(string)

	text, err := services.ScanAllPDFs(dir)
	if err != nil {
		respondScanError(c, err)
		return
	}

	cards, err := gateway.GenerateFlashcards(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, "flashcards", err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
