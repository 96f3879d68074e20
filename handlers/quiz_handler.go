package handlers

import (
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req services.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	previous := req.PreviousQuestions
	if previous == nil {
		previous = []uint{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"question":          question,
		"previousQuestions": previous,
	})
}
