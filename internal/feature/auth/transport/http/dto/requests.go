// Package dto defines the request and response bodies of the auth endpoints.
package dto

// RegisterReq is the body of POST /api/auth/register.
// bcrypt ignores input beyond 72 bytes, hence the upper bound.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required"`
}

// LoginReq is the body of POST /api/auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileReq is the body of PUT /api/auth/profile. Absent fields are kept.
type UpdateProfileReq struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}
