package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"trivia/middleware"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

// abortWithServiceError maps a service error to its status code. Anything that
// is not a known sentinel is a storage failure and is logged with its cause.
func abortWithServiceError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Request %s %s %s failed: %v", c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
	}
	abortWithError(c, status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// Recovery is the gin.CustomRecovery callback.
func Recovery(c *gin.Context, recovered interface{}) {
	log.Printf("Request %s panicked: %v", c.GetString(middleware.RequestIDKey), recovered)
	abortWithError(c, http.StatusInternalServerError)
}

// pageFromQuery reads ?page=, falling back to 1 when it is absent or not an
// integer.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// idParam parses a positive integer path parameter. ok is false when the
// value is not one, which callers report as 404.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
