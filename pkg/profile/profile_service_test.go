package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
)

type fakeProfileRepository struct {
	profiles map[string]*entities.Profile

	createCount int
}

func newFakeProfileRepository(profiles ...*entities.Profile) *fakeProfileRepository {
	repo := &fakeProfileRepository{profiles: map[string]*entities.Profile{}}
	for _, p := range profiles {
		repo.profiles[p.ID.String()] = p
	}
	return repo
}

func (f *fakeProfileRepository) GetByID(_ context.Context, id string) (*entities.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) GetByUsername(_ context.Context, username string) (*entities.Profile, error) {
	for _, p := range f.profiles {
		if p.Username != nil && *p.Username == username {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) GetByEmail(_ context.Context, email string) (*entities.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) Create(_ context.Context, profile *entities.Profile) error {
	f.createCount++
	f.profiles[profile.ID.String()] = profile
	return nil
}

func (f *fakeProfileRepository) Update(_ context.Context, id string, updates map[string]interface{}) error {
	p, ok := f.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["full_name"].(string); ok {
		p.FullName = v
	}
	if v, ok := updates["username"]; ok {
		if s, ok := v.(string); ok {
			p.Username = &s
		} else {
			p.Username = nil
		}
	}
	if v, ok := updates["bio"]; ok {
		if s, ok := v.(string); ok {
			p.Bio = s
		} else {
			p.Bio = ""
		}
	}
	return nil
}

func (f *fakeProfileRepository) CountByUsername(_ context.Context, username string) (int64, error) {
	var count int64
	for _, p := range f.profiles {
		if p.Username != nil && *p.Username == username {
			count++
		}
	}
	return count, nil
}

func TestProfileService_EnsureExists(t *testing.T) {
	t.Run("derives full name from email local part", func(t *testing.T) {
		repo := newFakeProfileRepository()
		svc := NewProfileService(repo)

		id := uuid.New()
		p, err := svc.EnsureExists(context.Background(), id, "alice@example.com", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "alice", p.FullName)
		assert.Equal(t, "alice@example.com", p.Email)
	})

	t.Run("prefers metadata full_name", func(t *testing.T) {
		repo := newFakeProfileRepository()
		svc := NewProfileService(repo)

		p, err := svc.EnsureExists(context.Background(), uuid.New(), "alice@example.com", map[string]any{
			"full_name": "Alice Smith",
			"username":  "asmith",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", p.FullName)
		require.NotNil(t, p.Username)
		assert.Equal(t, "asmith", *p.Username)
	})

	t.Run("idempotent for an existing profile", func(t *testing.T) {
		id := uuid.New()
		repo := newFakeProfileRepository(&entities.Profile{ID: id, FullName: "Alice", Email: "alice@example.com"})
		svc := NewProfileService(repo)

		p, err := svc.EnsureExists(context.Background(), id, "alice@example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.FullName)
		assert.Zero(t, repo.createCount)
	})

	t.Run("fails when no email can be resolved", func(t *testing.T) {
		repo := newFakeProfileRepository()
		svc := NewProfileService(repo)

		_, err := svc.EnsureExists(context.Background(), uuid.New(), "", map[string]any{})
		assert.ErrorIs(t, err, domain.ErrEmailUnresolvable)
	})

	t.Run("falls back to metadata email", func(t *testing.T) {
		repo := newFakeProfileRepository()
		svc := NewProfileService(repo)

		p, err := svc.EnsureExists(context.Background(), uuid.New(), "", map[string]any{
			"email": "bob@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", p.Email)
	})
}

func TestProfileService_UpdateCurrent(t *testing.T) {
	t.Run("requires full name", func(t *testing.T) {
		svc := NewProfileService(newFakeProfileRepository())

		_, err := svc.UpdateCurrent(context.Background(), uuid.New().String(), domain.UpdateProfileRequest{
			FullName: "  ",
		})
		assert.ErrorIs(t, err, domain.ErrFullNameRequired)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		taken := "alice"
		me := uuid.New()
		repo := newFakeProfileRepository(
			&entities.Profile{ID: uuid.New(), Username: &taken, Email: "alice@example.com"},
			&entities.Profile{ID: me, FullName: "Bob", Email: "bob@example.com"},
		)
		svc := NewProfileService(repo)

		_, err := svc.UpdateCurrent(context.Background(), me.String(), domain.UpdateProfileRequest{
			FullName: "Bob",
			Username: "alice",
		})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("keeping the current username is not a conflict", func(t *testing.T) {
		mine := "bob"
		me := uuid.New()
		repo := newFakeProfileRepository(
			&entities.Profile{ID: me, FullName: "Bob", Username: &mine, Email: "bob@example.com"},
		)
		svc := NewProfileService(repo)

		res, err := svc.UpdateCurrent(context.Background(), me.String(), domain.UpdateProfileRequest{
			FullName: "Robert",
			Username: "bob",
		})
		require.NoError(t, err)
		assert.Equal(t, "Robert", res.FullName)
		assert.Equal(t, "bob", res.Username)
	})

	t.Run("empty username clears it", func(t *testing.T) {
		mine := "bob"
		me := uuid.New()
		repo := newFakeProfileRepository(
			&entities.Profile{ID: me, FullName: "Bob", Username: &mine, Email: "bob@example.com"},
		)
		svc := NewProfileService(repo)

		res, err := svc.UpdateCurrent(context.Background(), me.String(), domain.UpdateProfileRequest{
			FullName: "Bob",
		})
		require.NoError(t, err)
		assert.Empty(t, res.Username)
	})
}

func TestProfileService_IsUsernameAvailable(t *testing.T) {
	taken := "alice"
	repo := newFakeProfileRepository(
		&entities.Profile{ID: uuid.New(), Username: &taken, Email: "alice@example.com"},
	)
	svc := NewProfileService(repo)

	available, err := svc.IsUsernameAvailable(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsUsernameAvailable(context.Background(), "carol")
	require.NoError(t, err)
	assert.True(t, available)
}
