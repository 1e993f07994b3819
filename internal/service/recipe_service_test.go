package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	dom "recipeshare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeRepo struct {
	nextID    int64
	recipes   []dom.Recipe
	listCalls int
}

func (f *fakeRecipeRepo) Create(ctx context.Context, r dom.Recipe) (dom.Recipe, error) {
	f.nextID++
	r.ID = f.nextID
	f.recipes = append(f.recipes, r)
	return r, nil
}

func (f *fakeRecipeRepo) List(ctx context.Context) ([]dom.Recipe, error) {
	f.listCalls++
	out := make([]dom.Recipe, len(f.recipes))
	copy(out, f.recipes)
	return out, nil
}

// fakeListCache is an in-memory ListCache; a nil list means miss.
type fakeListCache struct {
	list          []dom.Recipe
	sets          int
	invalidations int
}

func (f *fakeListCache) GetList(ctx context.Context) ([]dom.Recipe, error) {
	return f.list, nil
}

func (f *fakeListCache) SetList(ctx context.Context, list []dom.Recipe) error {
	f.sets++
	f.list = list
	return nil
}

func (f *fakeListCache) Invalidate(ctx context.Context) error {
	f.invalidations++
	f.list = nil
	return nil
}

func intPtr(n int) *int { return &n }

func validInstructions() string {
	return strings.Repeat("x", 50)
}

func TestValidateRecipe(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		instructions string
		minutes      *int
		wantErr      error
	}{
		{"valid", "Soup", validInstructions(), intPtr(30), nil},
		{"zero minutes is valid", "Soup", validInstructions(), intPtr(0), nil},
		{"empty title", "", validInstructions(), intPtr(30), ErrTitleRequired},
		{"blank title", "   ", validInstructions(), intPtr(30), ErrTitleRequired},
		{"instructions 49 chars", "Soup", strings.Repeat("x", 49), intPtr(30), ErrInstructionsTooShort},
		{"instructions 50 chars", "Soup", strings.Repeat("x", 50), intPtr(30), nil},
		{"missing minutes", "Soup", validInstructions(), nil, ErrMinutesRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecipe(tt.title, tt.instructions, tt.minutes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRecipeCreate_AttachesOwner(t *testing.T) {
	users := newFakeUserRepo()
	owner, err := NewUserService(users).Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)

	recipes := &fakeRecipeRepo{}
	svc := NewRecipeService(recipes, users, nil)

	rec, err := svc.Create(context.Background(), owner.ID, "Soup", validInstructions(), intPtr(25))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, rec.UserID)
	assert.Equal(t, 25, rec.MinutesToComplete)
	require.NotNil(t, rec.Owner)
	assert.Equal(t, "alice", rec.Owner.Username)
}

func TestRecipeCreate_InvalidNotPersisted(t *testing.T) {
	users := newFakeUserRepo()
	recipes := &fakeRecipeRepo{}
	svc := NewRecipeService(recipes, users, nil)

	_, err := svc.Create(context.Background(), 1, "Soup", strings.Repeat("x", 49), intPtr(10))
	assert.ErrorIs(t, err, ErrInstructionsTooShort)
	assert.Empty(t, recipes.recipes)

	_, err = svc.Create(context.Background(), 1, "", validInstructions(), intPtr(10))
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, recipes.recipes)
}

func TestRecipeCreate_OwnerLookupFailure(t *testing.T) {
	users := newFakeUserRepo()
	_, err := NewUserService(users).Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)
	users.failure = errors.New("db down")

	recipes := &fakeRecipeRepo{}
	svc := NewRecipeService(recipes, users, nil)

	_, err = svc.Create(context.Background(), 1, "Soup", validInstructions(), intPtr(10))
	require.Error(t, err)
	assert.Empty(t, recipes.recipes, "nothing persisted when the owner cannot be loaded")
}

func TestRecipeList_FillsAndServesCache(t *testing.T) {
	users := newFakeUserRepo()
	owner, err := NewUserService(users).Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)

	recipes := &fakeRecipeRepo{}
	lc := &fakeListCache{}
	svc := NewRecipeService(recipes, users, lc)

	_, err = svc.Create(context.Background(), owner.ID, "Soup", validInstructions(), intPtr(10))
	require.NoError(t, err)

	// First List misses, hits the repo, and fills the cache.
	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, recipes.listCalls)
	assert.Equal(t, 1, lc.sets)

	// Second List is served from the cache without touching the repo.
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, recipes.listCalls)
}

func TestRecipeCreate_InvalidatesCache(t *testing.T) {
	users := newFakeUserRepo()
	owner, err := NewUserService(users).Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)

	recipes := &fakeRecipeRepo{}
	lc := &fakeListCache{}
	svc := NewRecipeService(recipes, users, lc)

	_, err = svc.Create(context.Background(), owner.ID, "Soup", validInstructions(), intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, 1, lc.invalidations)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, recipes.listCalls)

	// A new recipe invalidates the cached listing; the next List refetches.
	_, err = svc.Create(context.Background(), owner.ID, "Bread", validInstructions(), intPtr(240))
	require.NoError(t, err)
	assert.Equal(t, 2, lc.invalidations)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, recipes.listCalls)
	require.Len(t, list, 2)
	assert.Equal(t, "Bread", list[1].Title)
}

func TestRecipeList_ReturnsAllUsersRecipes(t *testing.T) {
	users := newFakeUserRepo()
	usvc := NewUserService(users)
	alice, err := usvc.Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)
	bob, err := usvc.Signup(context.Background(), "bob", "pw", nil, nil)
	require.NoError(t, err)

	recipes := &fakeRecipeRepo{}
	svc := NewRecipeService(recipes, users, nil)

	_, err = svc.Create(context.Background(), alice.ID, "Soup", validInstructions(), intPtr(10))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.ID, "Bread", validInstructions(), intPtr(90))
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, alice.ID, list[0].UserID)
	assert.Equal(t, bob.ID, list[1].UserID)
}
