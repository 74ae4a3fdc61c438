package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plateful-backend/domain"
	"plateful-backend/entities"
)

type (
	ProfileService interface {
		GetByID(ctx context.Context, id string) (domain.ProfileResponse, error)
		GetByUsername(ctx context.Context, username string) (domain.ProfileResponse, error)
		GetCurrent(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateCurrent(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error)
		IsUsernameAvailable(ctx context.Context, username string) (bool, error)
		EnsureExists(ctx context.Context, id uuid.UUID, email string, metadata map[string]any) (*entities.Profile, error)
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{profileRepository: profileRepository}
}

func (s *profileService) GetByID(ctx context.Context, id string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) GetCurrent(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	return s.GetByID(ctx, userID)
}

func (s *profileService) UpdateCurrent(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return domain.ProfileResponse{}, domain.ErrFullNameRequired
	}

	current, err := s.profileRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}

	updates := map[string]interface{}{
		"full_name": fullName,
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		if current.Username == nil || *current.Username != username {
			count, err := s.profileRepository.CountByUsername(ctx, username)
			if err != nil {
				return domain.ProfileResponse{}, err
			}
			if count > 0 {
				return domain.ProfileResponse{}, domain.ErrUsernameTaken
			}
		}
		updates["username"] = username
	} else {
		updates["username"] = nil
	}

	if bio := strings.TrimSpace(req.Bio); bio != "" {
		updates["bio"] = bio
	} else {
		updates["bio"] = nil
	}

	if err := s.profileRepository.Update(ctx, userID, updates); err != nil {
		return domain.ProfileResponse{}, err
	}

	updated, err := s.profileRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(updated), nil
}

func (s *profileService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	count, err := s.profileRepository.CountByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// EnsureExists is idempotent: it returns the stored profile when one
// exists and otherwise synthesizes one from the identity metadata.
func (s *profileService) EnsureExists(ctx context.Context, id uuid.UUID, email string, metadata map[string]any) (*entities.Profile, error) {
	existing, err := s.profileRepository.GetByID(ctx, id.String())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if email == "" {
		if v, ok := metadata["email"].(string); ok {
			email = strings.TrimSpace(v)
		}
	}
	if email == "" {
		return nil, domain.ErrEmailUnresolvable
	}

	profile := &entities.Profile{
		ID:       id,
		FullName: deriveFullName(metadata, email),
		Email:    email,
	}
	if v, ok := metadata["username"].(string); ok {
		if username := strings.TrimSpace(v); username != "" {
			profile.Username = &username
		}
	}

	if err := s.profileRepository.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// deriveFullName resolves a display name in order of preference:
// metadata full_name, metadata display_name, the local part of the
// email, the literal "User".
func deriveFullName(metadata map[string]any, email string) string {
	if v, ok := metadata["full_name"].(string); ok {
		if name := strings.TrimSpace(v); name != "" {
			return name
		}
	}
	if v, ok := metadata["display_name"].(string); ok {
		if name := strings.TrimSpace(v); name != "" {
			return name
		}
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "User"
}

func toProfileResponse(profile *entities.Profile) domain.ProfileResponse {
	res := domain.ProfileResponse{
		ID:        profile.ID.String(),
		FullName:  profile.FullName,
		Email:     profile.Email,
		Bio:       profile.Bio,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
	if profile.Username != nil {
		res.Username = *profile.Username
	}
	return res
}
