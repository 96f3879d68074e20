package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnprocessable = errors.New("unprocessable")

	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrUnprocessable)
	ErrNoQuizCategory  = fmt.Errorf("%w: quiz_category is required", ErrUnprocessable)
	ErrNoQuestionsLeft = fmt.Errorf("%w: no questions left", ErrUnprocessable)
)
