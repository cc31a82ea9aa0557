package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

// Service exposes authentication workflows.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	cfg    Config
	repo   Repository
	tokens TokenStore
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, tokens TokenStore, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		tokens: tokens,
		logger: logger.With("component", "auth.service"),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeInvalidParameter, err.Error(), nil)
	}
	if err := validatePassword(req.Password); err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeInvalidParameter, err.Error(), nil)
	}
	_, exists, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeAuthError, "failed to check user", err)
	}
	if exists {
		return User{}, apperrors.Wrap(apperrors.CodeUsernameExists, "username already exists", nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.CodeAuthError, "failed to hash password", err)
	}
	user, err := s.repo.Create(ctx, username, string(hashed))
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			return User{}, apperrors.Wrap(apperrors.CodeUsernameExists, "username already exists", err)
		}
		return User{}, apperrors.Wrap(apperrors.CodeAuthError, "failed to create user", err)
	}
	s.logger.Info("user registered", "username", user.Username)
	return user, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidCredentials, "incorrect username or password", nil)
	}
	user, found, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeAuthError, "failed to fetch user", err)
	}
	if !found {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidCredentials, "incorrect username or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, apperrors.Wrap(apperrors.CodeInvalidCredentials, "incorrect username or password", nil)
	}
	signed, err := s.generateToken(user)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{AccessToken: signed, TokenType: "bearer"}, nil
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing", nil)
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenID != "" {
		revoked, err := s.tokens.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return Claims{}, apperrors.Wrap(apperrors.CodeAuthError, "failed to check token revocation", err)
		}
		if revoked {
			return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token revoked", nil)
		}
	}
	return claims, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	if claims.TokenID == "" {
		return apperrors.Wrap(apperrors.CodeInvalidToken, "token missing id", nil)
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.tokens.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return apperrors.Wrap(apperrors.CodeAuthError, "failed to revoke token", err)
	}
	s.logger.Info("token revoked", "username", claims.Username)
	return nil
}

func (s *service) generateToken(user User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAuthError, "failed to sign token", err)
	}
	return signed, nil
}

func (s *service) parseToken(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token invalid", nil)
	}
	if claims.ExpiresAt == nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing expiry", nil)
	}
	if claims.ExpiresAt.Time.Before(time.Now()) {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token expired", nil)
	}
	return Claims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if len(username) < 3 || len(username) > 30 {
		return "", errors.New("username must be 3 to 30 characters")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return "", errors.New("username may contain only letters, digits, '_' and '-'")
		}
	}
	return username, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

func newTokenID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return hex.EncodeToString(buf)
}
