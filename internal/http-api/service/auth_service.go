package service

import (
	"context"
	"errors"
	"time"

	"techvault/internal/auth"
	"techvault/internal/config"
	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAuthNotConfigured = errors.New("telegram auth is not configured")
	ErrInvalidLoginHash  = errors.New("invalid telegram login hash")
	ErrInvalidToken      = errors.New("invalid token")
)

type AuthService interface {
	// LoginWithTelegram validates the widget payload, upserts the user by
	// telegram id and issues an access token.
	LoginWithTelegram(ctx context.Context, payload *dto.TelegramLoginDTO) (*dto.TelegramAuthResponse, error)
	// ValidateToken parses the JWT and returns the authenticated user id.
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authService struct {
	userRepo  repository.UserRepository
	botToken  string
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		botToken:  cfg.TelegramBotToken,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

func (s *authService) LoginWithTelegram(ctx context.Context, payload *dto.TelegramLoginDTO) (*dto.TelegramAuthResponse, error) {
	if s.botToken == "" {
		return nil, ErrAuthNotConfigured
	}
	if !auth.ValidateLoginHash(payload.Fields(), payload.Hash, s.botToken) {
		return nil, ErrInvalidLoginHash
	}

	user, err := s.userRepo.FindByTelegramID(ctx, payload.ID)
	switch {
	case err == nil:
		// Refresh the profile fields Telegram sent along.
		user.Username = payload.Username
		user.FirstName = payload.FirstName
		user.LastName = payload.LastName
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			TelegramID: payload.ID,
			Username:   payload.Username,
			FirstName:  payload.FirstName,
			LastName:   payload.LastName,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			// Two first logins racing on the same telegram id: the loser
			// reuses the row the winner inserted.
			if !repository.IsUniqueViolation(err) {
				return nil, err
			}
			user, err = s.userRepo.FindByTelegramID(ctx, payload.ID)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TelegramAuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *dto.FromModelToUserResponse(user),
	}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(s.jwtExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
