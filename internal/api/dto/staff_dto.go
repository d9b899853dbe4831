package dto

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ActivateAccountRequest payload for POST /staff/activate.
type ActivateAccountRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordChangeRequest payload for POST /staff/change-password.
type PasswordChangeRequest struct {
	Email           string `json:"email" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// MessageResponse is the body of operations that return no record.
type MessageResponse struct {
	Message string `json:"message"`
}
