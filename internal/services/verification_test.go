package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/data/repos/testutil"
	types "github.com/bloomhaus/floristry-backend/internal/domain"
)

type fakeCodeStore struct {
	codes map[uuid.UUID]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: map[uuid.UUID]string{}}
}

func (f *fakeCodeStore) SaveCode(_ context.Context, adminID uuid.UUID, code string, _ time.Duration) error {
	f.codes[adminID] = code
	return nil
}

func (f *fakeCodeStore) LoadCode(_ context.Context, adminID uuid.UUID) (string, error) {
	return f.codes[adminID], nil
}

func (f *fakeCodeStore) DeleteCode(_ context.Context, adminID uuid.UUID) error {
	delete(f.codes, adminID)
	return nil
}

type fakeSMS struct {
	to   []string
	body []string
}

func (f *fakeSMS) SendSMS(_ context.Context, to string, body string) error {
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return nil
}

type verificationFixture struct {
	db    *gorm.DB
	svc   VerificationService
	codes *fakeCodeStore
	sms   *fakeSMS
	admin *types.Admin
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	t.Helper()
	db := testutil.MemoryDB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	store := testutil.SeedStore(t, ctx, db, "Bloomhaus Central")
	admin := testutil.SeedAdmin(t, ctx, db, "owner@bloomhaus.test", testutil.PtrUUID(store.ID))

	codes := newFakeCodeStore()
	sms := &fakeSMS{}
	svc := NewVerificationService(db, log, repos.NewAdminRepo(db, log), codes, sms, 10*time.Minute)

	return &verificationFixture{db: db, svc: svc, codes: codes, sms: sms, admin: admin}
}

func TestRequestPhoneCode_StoresAndSends(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RequestPhoneCode(ctx, f.admin.ID))
	code := f.codes.codes[f.admin.ID]
	require.Len(t, code, 6)
	require.Len(t, f.sms.to, 1)
	require.Equal(t, f.admin.Phone, f.sms.to[0])
	require.Contains(t, f.sms.body[0], code)
}

func TestRequestPhoneCode_UnknownAdmin(t *testing.T) {
	f := newVerificationFixture(t)
	require.Error(t, f.svc.RequestPhoneCode(context.Background(), uuid.New()))
}

func TestConfirmPhoneCode_MarksVerifiedAndConsumesCode(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RequestPhoneCode(ctx, f.admin.ID))
	code := f.codes.codes[f.admin.ID]

	require.NoError(t, f.svc.ConfirmPhoneCode(ctx, f.admin.ID, code))

	var reloaded types.Admin
	require.NoError(t, f.db.First(&reloaded, "id = ?", f.admin.ID).Error)
	require.True(t, reloaded.PhoneVerified)
	require.Empty(t, f.codes.codes[f.admin.ID])

	// The code is single-use.
	require.Error(t, f.svc.ConfirmPhoneCode(ctx, f.admin.ID, code))
}

func TestConfirmPhoneCode_Mismatch(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RequestPhoneCode(ctx, f.admin.ID))
	require.Error(t, f.svc.ConfirmPhoneCode(ctx, f.admin.ID, "not-the-code"))

	var reloaded types.Admin
	require.NoError(t, f.db.First(&reloaded, "id = ?", f.admin.ID).Error)
	require.False(t, reloaded.PhoneVerified)
}
