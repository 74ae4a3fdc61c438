package comment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
	"plateful-backend/pkg/viewcache"
)

type fakeCommentRepository struct {
	comments map[string]*entities.Comment

	updateCalled bool
	deleteCalled bool
}

func newFakeCommentRepository(comments ...*entities.Comment) *fakeCommentRepository {
	repo := &fakeCommentRepository{comments: map[string]*entities.Comment{}}
	for _, c := range comments {
		repo.comments[c.ID.String()] = c
	}
	return repo
}

func (f *fakeCommentRepository) GetByRecipe(_ context.Context, recipeID string) ([]*entities.Comment, error) {
	var out []*entities.Comment
	for _, c := range f.comments {
		if c.RecipeID.String() == recipeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepository) GetByID(_ context.Context, id string) (*entities.Comment, error) {
	if c, ok := f.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepository) Count(_ context.Context, recipeID string) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.RecipeID.String() == recipeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepository) Create(_ context.Context, comment *entities.Comment) error {
	f.comments[comment.ID.String()] = comment
	return nil
}

func (f *fakeCommentRepository) Update(_ context.Context, comment *entities.Comment) error {
	f.updateCalled = true
	f.comments[comment.ID.String()] = comment
	return nil
}

func (f *fakeCommentRepository) Delete(_ context.Context, id string) error {
	f.deleteCalled = true
	delete(f.comments, id)
	return nil
}

type fakeRecipeLookup struct {
	recipes map[string]*entities.Recipe
}

func (f *fakeRecipeLookup) GetByID(_ context.Context, id string) (*entities.Recipe, error) {
	if r, ok := f.recipes[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeLookup) Create(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeLookup) GetAll(_ context.Context) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) GetByUser(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) GetByCategory(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) GetByDifficulty(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) Search(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) GetFiltered(_ context.Context, _ domain.RecipeFilter) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) GetLatest(_ context.Context, _ int) ([]*entities.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeLookup) Update(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeLookup) Delete(_ context.Context, _ string) error           { return nil }

type spyCache struct {
	invalidated []string
}

func (s *spyCache) Get(_ context.Context, _ string) ([]byte, error) { return nil, nil }

func (s *spyCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error { return nil }

func (s *spyCache) Invalidate(_ context.Context, paths ...string) error {
	s.invalidated = append(s.invalidated, paths...)
	return nil
}

func TestCommentService_Create(t *testing.T) {
	recipeID := uuid.New()
	userID := uuid.New()
	recipes := &fakeRecipeLookup{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID},
	}}

	t.Run("creates a trimmed comment", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		res, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: "  Lovely recipe!  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Lovely recipe!", res.Content)
		assert.False(t, res.Edited)
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: "   \n\t ",
		})
		assert.ErrorIs(t, err, domain.ErrCommentContentRequired)
	})

	t.Run("accepts exactly the maximum length", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: strings.Repeat("a", domain.MaxCommentLength),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects one character over the maximum", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: strings.Repeat("a", domain.MaxCommentLength+1),
		})
		assert.ErrorIs(t, err, domain.ErrCommentTooLong)
	})

	t.Run("multi-byte characters count as one", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: strings.Repeat("é", domain.MaxCommentLength),
		})
		assert.NoError(t, err)

		_, err = svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: strings.Repeat("é", domain.MaxCommentLength+1),
		})
		assert.ErrorIs(t, err, domain.ErrCommentTooLong)
	})

	t.Run("trailing whitespace does not break the limit", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), recipeID.String(), userID.String(), domain.CreateCommentRequest{
			Content: strings.Repeat("a", domain.MaxCommentLength) + "   ",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Create(context.Background(), uuid.New().String(), userID.String(), domain.CreateCommentRequest{
			Content: "hello",
		})
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestCommentService_Update(t *testing.T) {
	recipeID := uuid.New()
	author := uuid.New()
	now := time.Now()
	stored := &entities.Comment{
		ID:       uuid.New(),
		UserID:   author,
		RecipeID: recipeID,
		Content:  "original",
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	recipes := &fakeRecipeLookup{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID},
	}}

	t.Run("author edits and the comment is marked edited", func(t *testing.T) {
		repo := newFakeCommentRepository(stored)
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		res, err := svc.Update(context.Background(), stored.ID.String(), author.String(), domain.UpdateCommentRequest{
			Content: "revised",
		})
		require.NoError(t, err)
		assert.Equal(t, "revised", res.Content)
		assert.True(t, res.Edited)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		repo := newFakeCommentRepository(stored)
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Update(context.Background(), stored.ID.String(), uuid.New().String(), domain.UpdateCommentRequest{
			Content: "hijacked",
		})
		assert.ErrorIs(t, err, domain.ErrNotCommentAuthor)
		assert.False(t, repo.updateCalled)
	})

	t.Run("unknown comment", func(t *testing.T) {
		repo := newFakeCommentRepository()
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		_, err := svc.Update(context.Background(), uuid.New().String(), author.String(), domain.UpdateCommentRequest{
			Content: "anything",
		})
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	recipeID := uuid.New()
	author := uuid.New()
	recipes := &fakeRecipeLookup{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID},
	}}

	newStored := func() *entities.Comment {
		return &entities.Comment{
			ID:       uuid.New(),
			UserID:   author,
			RecipeID: recipeID,
			Content:  "to be removed",
		}
	}

	t.Run("author deletes", func(t *testing.T) {
		stored := newStored()
		repo := newFakeCommentRepository(stored)
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		err := svc.Delete(context.Background(), stored.ID.String(), author.String())
		require.NoError(t, err)
		assert.True(t, repo.deleteCalled)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		stored := newStored()
		repo := newFakeCommentRepository(stored)
		svc := NewCommentService(repo, recipes, viewcache.NewNoop())

		err := svc.Delete(context.Background(), stored.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotCommentAuthor)
		assert.False(t, repo.deleteCalled)
	})
}

func TestCommentService_ViewInvalidation(t *testing.T) {
	recipeID := uuid.New()
	author := uuid.New()
	detailPath := "/recipes/" + recipeID.String()
	recipes := &fakeRecipeLookup{recipes: map[string]*entities.Recipe{
		recipeID.String(): {ID: recipeID},
	}}

	newStored := func() *entities.Comment {
		now := time.Now()
		return &entities.Comment{
			ID:       uuid.New(),
			UserID:   author,
			RecipeID: recipeID,
			Content:  "original",
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
	}

	t.Run("create invalidates the recipe detail view", func(t *testing.T) {
		views := &spyCache{}
		svc := NewCommentService(newFakeCommentRepository(), recipes, views)

		_, err := svc.Create(context.Background(), recipeID.String(), author.String(), domain.CreateCommentRequest{
			Content: "nice",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{detailPath}, views.invalidated)
	})

	t.Run("update invalidates the recipe detail view", func(t *testing.T) {
		stored := newStored()
		views := &spyCache{}
		svc := NewCommentService(newFakeCommentRepository(stored), recipes, views)

		_, err := svc.Update(context.Background(), stored.ID.String(), author.String(), domain.UpdateCommentRequest{
			Content: "revised",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{detailPath}, views.invalidated)
	})

	t.Run("delete invalidates the recipe detail view", func(t *testing.T) {
		stored := newStored()
		views := &spyCache{}
		svc := NewCommentService(newFakeCommentRepository(stored), recipes, views)

		require.NoError(t, svc.Delete(context.Background(), stored.ID.String(), author.String()))
		assert.Equal(t, []string{detailPath}, views.invalidated)
	})

	t.Run("rejected create invalidates nothing", func(t *testing.T) {
		views := &spyCache{}
		svc := NewCommentService(newFakeCommentRepository(), recipes, views)

		_, err := svc.Create(context.Background(), recipeID.String(), author.String(), domain.CreateCommentRequest{
			Content: "   ",
		})
		assert.ErrorIs(t, err, domain.ErrCommentContentRequired)
		assert.Empty(t, views.invalidated)
	})
}
