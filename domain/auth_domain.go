package domain

var (
	MessageSuccessRegister = "account created successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessLogout   = "logout successful"
	MessageSuccessMe       = "success get current user"

	MessageFailedRegister = "failed to create account"
	MessageFailedLogin    = "failed to login"
	MessageFailedLogout   = "failed to logout"
	MessageFailedMe       = "failed to get current user"
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required"`
		Username string `json:"username" validate:"omitempty,min=3,max=30"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token     string `json:"token"`
		TokenType string `json:"type"`
		UserID    string `json:"user_id"`
	}
)
