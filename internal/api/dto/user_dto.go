package dto

// UserCreateRequest payload for admin account creation.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdateRequest payload for role/status updates.
type UserUpdateRequest struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}
