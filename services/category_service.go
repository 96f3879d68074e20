package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"trivia/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const categoriesCacheKey = "trivia:categories"

// CategoryService reads the externally seeded category table. When a Redis
// client is supplied the full list is cached under a single key.
type CategoryService struct {
	db    *gorm.DB
	redis *redis.Client
	ttl   time.Duration
}

func NewCategoryService(db *gorm.DB, redis *redis.Client, ttl time.Duration) *CategoryService {
	return &CategoryService{
		db:    db,
		redis: redis,
		ttl:   ttl,
	}
}

func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	if categories, ok := s.getCached(ctx); ok {
		return categories, nil
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	if err := s.storeCached(ctx, categories); err != nil {
		log.Printf("Failed to cache categories: %v", err)
	}
	return categories, nil
}

// Map returns categories keyed by id, the shape the listing endpoints expose.
func (s *CategoryService) Map(ctx context.Context) (map[uint]string, error) {
	categories, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[uint]string, len(categories))
	for _, category := range categories {
		out[category.ID] = category.Type
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}
	return &category, nil
}

// Invalidate drops the cached list so the next read goes to the database.
func (s *CategoryService) Invalidate(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, categoriesCacheKey).Err()
}

func (s *CategoryService) getCached(ctx context.Context) ([]models.Category, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, categoriesCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting categories: %v", err)
		}
		return nil, false
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(data), &categories); err != nil {
		log.Printf("Failed to unmarshal cached categories: %v", err)
		return nil, false
	}
	return categories, true
}

func (s *CategoryService) storeCached(ctx context.Context, categories []models.Category) error {
	if s.redis == nil {
		return nil
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	if err := s.redis.Set(ctx, categoriesCacheKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}
	return nil
}
