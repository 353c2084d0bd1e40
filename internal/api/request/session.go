package request

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecoverRequest struct {
	Email string `json:"email"`
}

type ChangePlanRequest struct {
	Plan string `json:"plan"`
}
