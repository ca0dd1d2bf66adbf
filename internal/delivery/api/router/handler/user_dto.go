package handler

import (
	"time"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        entity.Role `json:"role"`
	Active      bool        `json:"active"`
	NationalID  string      `json:"nationalId"`
	DateOfBirth string      `json:"dateOfBirth"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		Active:      user.Active,
		NationalID:  user.NationalID,
		DateOfBirth: user.DateOfBirth.Format(dateLayout),
		CreatedAt:   user.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}
