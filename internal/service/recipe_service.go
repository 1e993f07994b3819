package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	dom "recipeshare/internal/domain"
	"recipeshare/internal/repo"

	"golang.org/x/sync/singleflight"
)

const minInstructionsLen = 50

var (
	ErrTitleRequired        = errors.New("title must be present")
	ErrInstructionsTooShort = errors.New("instructions must be at least 50 characters long")
	ErrMinutesRequired      = errors.New("minutes_to_complete must be present")
)

// ListCache caches the recipe listing. Implemented by cache.RecipeCache.
type ListCache interface {
	GetList(ctx context.Context) ([]dom.Recipe, error)
	SetList(ctx context.Context, list []dom.Recipe) error
	Invalidate(ctx context.Context) error
}

// RecipeService handles recipe listing and creation.
type RecipeService struct {
	repo  repo.RecipeRepo
	users repo.UserRepo
	cache ListCache
	sf    singleflight.Group
}

// NewRecipeService creates a RecipeService. If c is nil, caching is disabled.
func NewRecipeService(r repo.RecipeRepo, users repo.UserRepo, c ListCache) *RecipeService {
	return &RecipeService{repo: r, users: users, cache: c}
}

// ValidateRecipe checks the domain rules before anything is persisted.
// minutes is a pointer: 0 is a valid value, only absence fails.
func ValidateRecipe(title, instructions string, minutes *int) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(instructions) < minInstructionsLen {
		return ErrInstructionsTooShort
	}
	if minutes == nil {
		return ErrMinutesRequired
	}
	return nil
}

// Create validates and persists a recipe owned by userID, returning it
// with the owner attached for the response view. The owner is loaded
// before the insert so a failed lookup aborts instead of persisting a
// recipe the response cannot describe.
func (s *RecipeService) Create(ctx context.Context, userID int64, title, instructions string, minutes *int) (dom.Recipe, error) {
	if err := ValidateRecipe(title, instructions, minutes); err != nil {
		return dom.Recipe{}, err
	}
	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return dom.Recipe{}, err
	}
	rec, err := s.repo.Create(ctx, dom.Recipe{
		Title:             strings.TrimSpace(title),
		Instructions:      instructions,
		MinutesToComplete: *minutes,
		UserID:            userID,
	})
	if err != nil {
		return dom.Recipe{}, err
	}
	rec.Owner = &owner
	s.invalidateCache(ctx)
	return rec, nil
}

// List returns every recipe with owners, serving from cache when possible.
func (s *RecipeService) List(ctx context.Context) ([]dom.Recipe, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Recipe), nil
	}
	return s.repo.List(ctx)
}

func (s *RecipeService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
