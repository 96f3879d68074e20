package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia/models"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards with "!", the ESCAPE character Search uses.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type QuestionService struct {
	db         *gorm.DB
	categories *CategoryService
}

func NewQuestionService(db *gorm.DB, categories *CategoryService) *QuestionService {
	return &QuestionService{
		db:         db,
		categories: categories,
	}
}

// List returns every question ordered by id.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

func (s *QuestionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	question := models.Question{
		Question:   strings.TrimSpace(req.Question),
		Answer:     strings.TrimSpace(req.Answer),
		Category:   uint(req.Category),
		Difficulty: int(req.Difficulty),
	}
	if question.Question == "" || question.Answer == "" {
		return nil, fmt.Errorf("%w: question and answer must not be blank", ErrInvalidInput)
	}
	if req.Category < 1 || req.Difficulty < 1 || req.Difficulty > 5 {
		return nil, fmt.Errorf("%w: category or difficulty out of range", ErrInvalidInput)
	}

	if _, err := s.categories.Get(ctx, question.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", question.Category, ErrUnknownCategory)
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &question, nil
}

// Delete removes the question and returns the number of questions left.
func (s *QuestionService) Delete(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return s.Count(ctx)
}

// Search matches term as a case-insensitive substring of the question text.
// LIKE wildcards in term are matched literally.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrInvalidInput)
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// ByCategory returns the category and its questions ordered by id.
func (s *QuestionService) ByCategory(ctx context.Context, categoryID uint) (*models.Category, []models.Question, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	var questions []models.Question
	err = s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	return category, questions, nil
}
