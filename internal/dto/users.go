package dto

// CreateUserRequest is the payload an administrator sends to provision a user.
// Role is stored verbatim; it is not validated against a fixed enum. Phone is
// optional and normalized to E.164 when present.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// CreateUserResponse is returned on successful provisioning.
type CreateUserResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
