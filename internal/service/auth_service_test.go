package service

import (
	"context"
	"testing"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDenylist struct {
	denied map[string]bool
}

func (d *fakeDenylist) Deny(_ context.Context, token string, _ time.Duration) error {
	if d.denied == nil {
		d.denied = make(map[string]bool)
	}
	d.denied[token] = true
	return nil
}

func (d *fakeDenylist) IsDenied(_ context.Context, token string) (bool, error) {
	return d.denied[token], nil
}

const testSecret = "test_secret"

func newAuthServiceForTest() (*authService, *fakeUnitOfWork, *fakeDenylist) {
	uow := newFakeUnitOfWork()
	denylist := &fakeDenylist{}
	svc := &authService{
		uowFactory: &fakeUowFactory{uow: uow},
		denylist:   denylist,
		jwtSecret:  testSecret,
		logger:     nopLogger{},
		now:        time.Now,
	}
	return svc, uow, denylist
}

func seedAdminUser(t *testing.T, uow *fakeUnitOfWork, password string, hashed bool) *entity.AdminUser {
	t.Helper()
	stored := password
	if hashed {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		require.NoError(t, err)
		stored = string(hash)
	}
	user := &entity.AdminUser{
		Id:           uuid.New(),
		Name:         "Siti",
		Position:     "Supervisor",
		Phone:        "0812000111",
		Role:         entity.RoleWarehouse,
		Username:     "siti",
		PasswordHash: stored,
	}
	require.NoError(t, uow.adminRepo.Create(context.Background(), user))
	return user
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	svc, uow, _ := newAuthServiceForTest()
	user := seedAdminUser(t, uow, "rahasia1", true)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "SITI", Password: "rahasia1"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.Id.String(), claims["sub"])
	assert.Equal(t, "WAREHOUSE", claims["role"])
	assert.Equal(t, "siti", claims["username"])
	assert.Equal(t, "Siti", claims["name"])
	assert.Equal(t, user.Username, res.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, uow, _ := newAuthServiceForTest()
	seedAdminUser(t, uow, "rahasia1", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "siti", Password: "salah"})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
}

func TestLoginRehashesLegacyPlaintextPassword(t *testing.T) {
	svc, uow, _ := newAuthServiceForTest()
	user := seedAdminUser(t, uow, "plainpass", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "siti", Password: "plainpass"})
	require.NoError(t, err)

	stored, _ := uow.adminRepo.FindByID(context.Background(), user.Id)
	assert.NotEqual(t, "plainpass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("plainpass")))

	// Second login goes through the bcrypt path.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "siti", Password: "plainpass"})
	assert.NoError(t, err)
}

func TestLogoutDenylistsTokenUntilExpiry(t *testing.T) {
	svc, uow, denylist := newAuthServiceForTest()
	seedAdminUser(t, uow, "rahasia1", true)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "siti", Password: "rahasia1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.Token))

	denied, err := denylist.IsDenied(context.Background(), res.Token)
	require.NoError(t, err)
	assert.True(t, denied)

	// Garbage tokens are ignored rather than erroring.
	assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))
}
