package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/data/repos/testutil"
	"github.com/bloomhaus/floristry-backend/internal/platform/ctxutil"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := testutil.MemoryDB(t)
	log := testutil.Logger(t)
	return NewAuthService(
		db, log,
		repos.NewAdminRepo(db, log),
		repos.NewStoreRepo(db, log),
		repos.NewAdminTokenRepo(db, log),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
}

func registerInput(email string) RegisterAdminInput {
	return RegisterAdminInput{
		Email:        email,
		Password:     "supersecret",
		FirstName:    "Flora",
		LastName:     "Bloom",
		Phone:        "+15550100",
		StoreName:    "Bloomhaus Central",
		StoreAddress: "1 Flower Market Rd",
	}
}

func TestRegisterAdmin_CreatesStoreAndAdmin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, registerInput("owner@bloomhaus.test"))
	require.NoError(t, err)
	require.Equal(t, "owner@bloomhaus.test", admin.Email)
	require.NotNil(t, admin.StoreID)
	require.NotEqual(t, "supersecret", admin.Password)
}

func TestRegisterAdmin_RejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.RegisterAdmin(ctx, registerInput("owner@bloomhaus.test"))
	require.NoError(t, err)
	_, err = svc.RegisterAdmin(ctx, registerInput("owner@bloomhaus.test"))
	require.Error(t, err)
}

func TestRegisterAdmin_RejectsShortPassword(t *testing.T) {
	svc := newAuthService(t)
	in := registerInput("owner@bloomhaus.test")
	in.Password = "short"
	_, err := svc.RegisterAdmin(context.Background(), in)
	require.Error(t, err)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.RegisterAdmin(ctx, registerInput("owner@bloomhaus.test"))
	require.NoError(t, err)

	_, _, err = svc.LoginAdmin(ctx, "owner@bloomhaus.test", "wrongpassword")
	require.Error(t, err)
}

func TestLoginRefreshLogoutRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.RegisterAdmin(ctx, registerInput("owner@bloomhaus.test"))
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.LoginAdmin(ctx, "owner@bloomhaus.test", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	authed, err := svc.SetContextFromToken(ctx, accessToken)
	require.NoError(t, err)
	rd := ctxutil.GetRequestData(authed)
	require.NotNil(t, rd)
	require.Equal(t, registered.ID, rd.AdminID)
	require.Equal(t, refreshToken, rd.RefreshToken)

	// Rotation invalidates the old refresh token.
	newAccess, newRefresh, err := svc.RefreshAdmin(authed)
	require.NoError(t, err)
	require.NotEmpty(t, newAccess)
	require.NotEqual(t, refreshToken, newRefresh)

	_, _, err = svc.RefreshAdmin(authed)
	require.Error(t, err)

	authed2, err := svc.SetContextFromToken(ctx, newAccess)
	require.NoError(t, err)
	require.NoError(t, svc.LogoutAdmin(authed2))
}

func TestSetContextFromToken_RejectsForgedToken(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.SetContextFromToken(context.Background(), "not.a.token")
	require.Error(t, err)
}
