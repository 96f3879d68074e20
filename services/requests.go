package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or from a string holding one, since
// form-driven clients post numeric fields as strings.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*n = FlexInt(v)
	return nil
}

type CreateQuestionRequest struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Category   FlexInt `json:"category" binding:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" binding:"required,min=1,max=5"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint        `json:"previous_questions"`
}
