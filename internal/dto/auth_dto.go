package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  AdminUserResponse `json:"user"`
}
