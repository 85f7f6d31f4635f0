package service

import (
	"context"
	"strings"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/logger"
	"antrian-truk-be/internal/pkg/tokenstore"
	"antrian-truk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 12 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Me resolves the authenticated admin behind a token's subject claim.
	Me(ctx context.Context, userId uuid.UUID) (*dto.AdminUserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	denylist   tokenstore.TokenDenylist
	jwtSecret  string
	logger     logger.ILogger
	now        func() time.Time
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	denylist tokenstore.TokenDenylist,
	jwtSecret string,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		denylist:   denylist,
		jwtSecret:  jwtSecret,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	username := strings.ToLower(strings.TrimSpace(req.Username))
	user, err := uow.AdminUserRepository().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Username atau password salah")
	}

	if strings.HasPrefix(user.PasswordHash, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return nil, apperror.Unauthorized("Username atau password salah")
		}
	} else {
		// Legacy rows store the password in the clear. Accept once, then
		// rehash in place.
		if user.PasswordHash != req.Password {
			return nil, apperror.Unauthorized("Username atau password salah")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		if err := uow.AdminUserRepository().Update(ctx, user); err != nil {
			s.logger.Warn("auth", "Gagal rehash password legacy", map[string]interface{}{"error": err.Error()})
		}
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.Id.String(),
		"role":     string(user.Role),
		"username": user.Username,
		"name":     user.Name,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "Login berhasil", map[string]interface{}{"username": user.Username})

	return &dto.LoginResponse{
		Token: signedToken,
		User:  *toAdminUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Sesi tidak valid")
	}
	return toAdminUserResponse(user), nil
}

// Logout denylists the token for the remainder of its lifetime. Expired or
// unparsable tokens are already useless and pass through silently.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	ttl := time.Until(exp.Time)
	return s.denylist.Deny(ctx, token, ttl)
}
