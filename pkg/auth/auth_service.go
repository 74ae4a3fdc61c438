package auth

import (
	"context"
	"fmt"

	"plateful-backend/domain"
	"plateful-backend/pkg/jwt"
	"plateful-backend/pkg/profile"
)

type (
	AuthService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Logout(ctx context.Context, accessToken string) error
	}

	Mailer interface {
		Send(toEmail, subject, body string) error
	}

	authService struct {
		provider       Provider
		profileService profile.ProfileService
		jwtService     jwt.JWTService
		mailer         Mailer
	}
)

func NewAuthService(provider Provider, profileService profile.ProfileService, jwtService jwt.JWTService, mailer Mailer) AuthService {
	return &authService{
		provider:       provider,
		profileService: profileService,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	metadata := map[string]any{"full_name": req.FullName}
	if req.Username != "" {
		metadata["username"] = req.Username
	}

	identity, err := s.provider.SignUp(ctx, req.Email, req.Password, metadata)
	if err != nil {
		// provider errors (e.g. duplicate email) carry the user-facing message
		return domain.AuthResponse{}, err
	}

	if len(identity.Metadata) == 0 {
		identity.Metadata = metadata
	}

	// Fallback in case provider-side provisioning did not run.
	if _, err := s.profileService.EnsureExists(ctx, identity.ID, identity.Email, identity.Metadata); err != nil {
		return domain.AuthResponse{}, err
	}

	if s.mailer != nil {
		// best effort, registration never fails on mail problems
		_ = s.mailer.Send(
			identity.Email,
			"Welcome to Plateful",
			fmt.Sprintf("<p>Hi %s, your Plateful account is ready. Start sharing recipes!</p>", req.FullName),
		)
	}

	token := s.jwtService.GenerateToken(identity.ID.String())
	return domain.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    identity.ID.String(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	identity, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	// Self-heal accounts created before profile provisioning existed.
	if _, err := s.profileService.EnsureExists(ctx, identity.ID, identity.Email, identity.Metadata); err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateToken(identity.ID.String())
	return domain.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    identity.ID.String(),
	}, nil
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	// Sessions are stateless JWTs; revoking at the provider is best
	// effort and sign-out always succeeds locally.
	if accessToken != "" {
		_ = s.provider.SignOut(ctx, accessToken)
	}
	return nil
}
