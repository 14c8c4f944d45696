package dto

// ── auth ──

// LoginRequest login body
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest self-service donor registration
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,swemail,max=255"`
	Password string `json:"password" binding:"required,strongpwd,max=72"`
}

// SessionUser identity returned by authentication
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse body of a successful login; the session itself travels in cookies
type LoginResponse struct {
	User SessionUser `json:"user"`
	Role string      `json:"role"`
}

// RegisterResponse created account
type RegisterResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
