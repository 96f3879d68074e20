package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("question 7: %w", services.ErrNotFound), http.StatusNotFound},
		{services.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrUnknownCategory, http.StatusUnprocessableEntity},
		{services.ErrNoQuizCategory, http.StatusUnprocessableEntity},
		{services.ErrNoQuestionsLeft, http.StatusUnprocessableEntity},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRecoveryRespondsWithJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.CustomRecovery(Recovery))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, ErrorResponse{Success: false, Error: 500, Message: "internal server error"}, body)
}

func TestPageAndIDParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		path    string
		page    int
		id      uint
		validID bool
	}{
		{"/questions/3", 1, 3, true},
		{"/questions/3?page=4", 4, 3, true},
		{"/questions/abc?page=x", 1, 0, false},
		{"/questions/-1?page=-2", -2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := gin.New()
			r.GET("/questions/:id", func(c *gin.Context) {
				id, ok := idParam(c, "id")
				assert.Equal(t, tt.page, pageFromQuery(c))
				assert.Equal(t, tt.validID, ok)
				assert.Equal(t, tt.id, id)
				c.Status(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
