package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luisfelipe-wekan/knowledge-extractor/models"
	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

// GetQuiz generates a multiple-choice quiz from the combined text of every
// PDF in the documents folder.
func GetQuiz(c *gin.Context) {
	gateway := c.MustGet("gateway").(*services.Gateway)
	dir := c.MustGet("documents_dir").(string)

	text, err := services.ScanAllPDFs(dir)
	if err != nil {
		respondScanError(c, err)
		return
	}

	questions, err := gateway.GenerateQuiz(c.Request.Context(), text)
	if err != nil {
		respondGenerationError(c, "quiz", err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GradeQuiz grades submitted answers. Correctness is always computed
// server-side; a feedback-model failure degrades a single item, never the
// whole batch.
func GradeQuiz(c *gin.Context) {
	gateway := c.MustGet("gateway").(*services.Gateway)

	var submission models.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(submission.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No answers provided."})
		return
	}
	for i, ans := range submission.Answers {
		if len(ans.Options) != services.QuizOptionCount ||
			ans.SelectedIndex < 0 || ans.SelectedIndex >= services.QuizOptionCount ||
			ans.CorrectIndex < 0 || ans.CorrectIndex >= services.QuizOptionCount {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Answer %d is malformed", i)})
			return
		}
	}

	graded := gateway.GradeSubmissions(c.Request.Context(), submission.Answers)
	c.JSON(http.StatusOK, graded)
}
