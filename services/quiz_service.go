package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"trivia/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db   *gorm.DB
	intn func(n int) int
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{
		db:   db,
		intn: rand.IntN,
	}
}

// NextQuestion draws uniformly from the questions in the requested category
// (id 0 means any category) that are not in req.PreviousQuestions.
func (s *QuizService) NextQuestion(ctx context.Context, req *QuizRequest) (*models.Question, error) {
	if req.QuizCategory == nil {
		return nil, ErrNoQuizCategory
	}
	if req.QuizCategory.ID < 0 {
		return nil, fmt.Errorf("%w: negative category id", ErrUnprocessable)
	}

	query := s.db.WithContext(ctx).Model(&models.Question{})
	if req.QuizCategory.ID != 0 {
		query = query.Where("category = ?", uint(req.QuizCategory.ID))
	}
	if len(req.PreviousQuestions) > 0 {
		query = query.Where("id NOT IN ?", req.PreviousQuestions)
	}

	var ids []uint
	if err := query.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load eligible questions: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoQuestionsLeft
	}

	var question models.Question
	err := s.db.WithContext(ctx).First(&question, ids[s.intn(len(ids))]).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Deleted between the two queries.
		return nil, ErrNoQuestionsLeft
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return &question, nil
}
