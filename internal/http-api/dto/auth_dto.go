package dto

import (
	"strconv"
	"time"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
)

// TelegramLoginDTO carries the payload the Telegram Login Widget posts back.
// Hash signs every other field; see auth.ValidateLoginHash.
type TelegramLoginDTO struct {
	ID        int64   `json:"id" binding:"required"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	PhotoURL  *string `json:"photo_url"`
	AuthDate  int64   `json:"auth_date" binding:"required"`
	Hash      string  `json:"hash" binding:"required"`
}

// Fields returns the signed widget fields as a string map, hash excluded,
// in the shape the hash validator expects. Nil optionals are omitted.
func (d *TelegramLoginDTO) Fields() map[string]string {
	fields := map[string]string{
		"id":        strconv.FormatInt(d.ID, 10),
		"auth_date": strconv.FormatInt(d.AuthDate, 10),
	}
	if d.FirstName != nil {
		fields["first_name"] = *d.FirstName
	}
	if d.LastName != nil {
		fields["last_name"] = *d.LastName
	}
	if d.Username != nil {
		fields["username"] = *d.Username
	}
	if d.PhotoURL != nil {
		fields["photo_url"] = *d.PhotoURL
	}
	return fields
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	TelegramID   int64      `json:"telegram_id"`
	Username     *string    `json:"username"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	TeamID       *uuid.UUID `json:"team_id"`
	SkillLevelID *uuid.UUID `json:"skill_level_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		TelegramID:   user.TelegramID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		TeamID:       user.TeamID,
		SkillLevelID: user.SkillLevelID,
		CreatedAt:    user.CreatedAt,
	}
}

// TelegramAuthResponse is returned after a successful widget login.
type TelegramAuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
