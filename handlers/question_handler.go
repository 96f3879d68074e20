package handlers

import (
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	hub             *services.Hub
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, hub *services.Hub) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		hub:             hub,
	}
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.List(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	current := services.Paginate(questions, pageFromQuery(c))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	categories, err := h.categoryService.Map(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       current,
		"totalQuestions":  len(questions),
		"categories":      categories,
		"currentCategory": nil,
	})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	total, err := h.questionService.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(services.EventQuestionDeleted, gin.H{
			"id":             id,
			"totalQuestions": total,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"deleted":        id,
		"totalQuestions": total,
	})
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	question, err := h.questionService.Create(ctx, &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	total, err := h.questionService.Count(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(services.EventQuestionCreated, question)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"created":        question.ID,
		"totalQuestions": total,
	})
}

func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}
	if req.SearchTerm == "" {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       services.Paginate(questions, pageFromQuery(c)),
		"totalQuestions":  len(questions),
		"currentCategory": nil,
	})
}
