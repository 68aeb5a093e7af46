package request

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	SecondName      string `json:"second_name" validate:"required,max=100"`
	PhoneNumber     string `json:"phone_number" validate:"required,e164"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest carries the refresh token to revoke. The field is
// optional, logout without a token is a no-op.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateAdminRequest provisions a privileged account. IsStaff and
// IsSuperuser must both be set, a privileged user is never created by
// accident.
type CreateAdminRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	SecondName  string `json:"second_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}
