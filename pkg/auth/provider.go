package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"plateful-backend/internal/utils"
)

type (
	// Identity is what the hosted provider knows about an authenticated
	// user. The ID doubles as the Profile primary key.
	Identity struct {
		ID          uuid.UUID
		Email       string
		Metadata    map[string]any
		AccessToken string
	}

	// Provider is the hosted identity service. Production uses Supabase
	// GoTrue; tests substitute a fake.
	Provider interface {
		SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Identity, error)
		SignIn(ctx context.Context, email, password string) (*Identity, error)
		SignOut(ctx context.Context, accessToken string) error
	}

	gotrueProvider struct {
		client gotrue.Client
	}
)

// extractProjectRef reduces a Supabase URL to the bare project reference
// the gotrue client expects.
func extractProjectRef(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")

	parts := strings.Split(url, ".")
	return parts[0]
}

func NewGotrueProvider() Provider {
	utils.LoadConfig()
	projectRef := extractProjectRef(utils.GetConfig("SUPABASE_URL"))
	apiKey := utils.GetConfig("SUPABASE_SERVICE_KEY")

	return &gotrueProvider{client: gotrue.New(projectRef, apiKey)}
}

func (p *gotrueProvider) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Identity, error) {
	resp, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, err
	}

	return &Identity{
		ID:          resp.ID,
		Email:       resp.Email,
		Metadata:    resp.UserMetadata,
		AccessToken: resp.AccessToken,
	}, nil
}

func (p *gotrueProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	resp, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, err
	}

	return &Identity{
		ID:          resp.User.ID,
		Email:       resp.User.Email,
		Metadata:    resp.User.UserMetadata,
		AccessToken: resp.AccessToken,
	}, nil
}

func (p *gotrueProvider) SignOut(ctx context.Context, accessToken string) error {
	return p.client.WithToken(accessToken).Logout()
}
