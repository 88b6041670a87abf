package request

type RegisterRequest struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type LoginRequest struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required"`
}

type UpdateProfileRequest struct {
	OldEmail    string `validate:"required,email"`
	NewUsername string `validate:"required,min=3,max=50"`
	NewEmail    string `validate:"required,email"`
	NewPassword string `validate:"required,min=6"`
}
