package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/config"
	"golang.org/x/oauth2"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 7 * 24 * time.Hour

	userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var ErrUserNotFound = errors.New("user not found")

type LoginResult struct {
	User         *UserResponse
	AccessToken  string
	RefreshToken string
}

type Service interface {
	GoogleLogin(ctx context.Context, dto GoogleLoginDTO) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
}

type service struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) Service {
	return &service{repo: repo, oauthConfig: oauthConfig}
}

func (s *service) GoogleLogin(ctx context.Context, dto GoogleLoginDTO) (*LoginResult, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, dto.Code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}

	u, err := s.repo.GetByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}

	encryptedAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encryptedRefresh := ""
	if token.RefreshToken != "" {
		if encryptedRefresh, err = config.Encrypt(token.RefreshToken); err != nil {
			return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	if u == nil {
		role := dto.Role
		if !role.IsValid() {
			role = RolePatient
		}
		u = &User{
			GoogleID:                    info.ID,
			Name:                        info.Name,
			Email:                       info.Email,
			AvatarURL:                   info.Picture,
			Role:                        role,
			EncryptedGoogleAccessToken:  encryptedAccess,
			EncryptedGoogleRefreshToken: encryptedRefresh,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("New user registered via Google")
	} else {
		u.Name = info.Name
		u.AvatarURL = info.Picture
		u.EncryptedGoogleAccessToken = encryptedAccess
		if encryptedRefresh != "" {
			u.EncryptedGoogleRefreshToken = encryptedRefresh
		}
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Failed to update user on login")
			return nil, err
		}
	}

	accessJWT, err := auth.GenerateJWT(u.ID.String(), string(u.Role), AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refreshJWT, err := auth.GenerateJWT(u.ID.String(), string(u.Role), RefreshTokenDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         toResponse(u),
		AccessToken:  accessJWT,
		RefreshToken: refreshJWT,
	}, nil
}

func (s *service) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		return "", err
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return auth.GenerateJWT(u.ID.String(), string(u.Role), AccessTokenDuration)
}

func (s *service) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}
