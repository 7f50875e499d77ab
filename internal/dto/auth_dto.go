package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  LoginUserInfo `json:"user"`
}

type LoginUserInfo struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

type VerifyResponse struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
}
