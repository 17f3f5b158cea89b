package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/bloomhaus/floristry-backend/internal/clients/redis"
	"github.com/bloomhaus/floristry-backend/internal/clients/twilio"
	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type VerificationService interface {
	// RequestPhoneCode generates a single-use code, stores it with a TTL, and
	// sends it to the admin's phone.
	RequestPhoneCode(ctx context.Context, adminID uuid.UUID) error
	// ConfirmPhoneCode checks the pending code and marks the phone verified.
	ConfirmPhoneCode(ctx context.Context, adminID uuid.UUID, code string) error
}

type verificationService struct {
	db        *gorm.DB
	log       *logger.Logger
	adminRepo repos.AdminRepo
	codeStore redisclient.CodeStore
	sms       twilio.Client
	codeTTL   time.Duration
}

func NewVerificationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRepo repos.AdminRepo,
	codeStore redisclient.CodeStore,
	sms twilio.Client,
	codeTTL time.Duration,
) VerificationService {
	serviceLog := baseLog.With("service", "VerificationService")
	return &verificationService{
		db:        db,
		log:       serviceLog,
		adminRepo: adminRepo,
		codeStore: codeStore,
		sms:       sms,
		codeTTL:   codeTTL,
	}
}

func (vs *verificationService) RequestPhoneCode(ctx context.Context, adminID uuid.UUID) error {
	admin, err := vs.adminRepo.GetByIDWithStore(ctx, nil, adminID)
	if err != nil {
		return fmt.Errorf("load admin: %w", err)
	}
	if admin == nil {
		return fmt.Errorf("admin not found")
	}
	if admin.Phone == "" {
		return fmt.Errorf("admin has no phone number")
	}
	if admin.PhoneVerified {
		return fmt.Errorf("phone already verified")
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := vs.codeStore.SaveCode(ctx, adminID, code, vs.codeTTL); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(vs.codeTTL.Minutes()))
	if err := vs.sms.SendSMS(ctx, admin.Phone, body); err != nil {
		vs.log.Error("verification SMS failed", "admin_id", adminID, "error", err)
		return fmt.Errorf("send verification sms: %w", err)
	}

	vs.log.Info("verification code sent", "admin_id", adminID)
	return nil
}

func (vs *verificationService) ConfirmPhoneCode(ctx context.Context, adminID uuid.UUID, code string) error {
	if code == "" {
		return fmt.Errorf("code required")
	}
	pending, err := vs.codeStore.LoadCode(ctx, adminID)
	if err != nil {
		return err
	}
	if pending == "" {
		return fmt.Errorf("no pending verification code")
	}
	if pending != code {
		return fmt.Errorf("verification code mismatch")
	}

	if err := vs.adminRepo.SetPhoneVerified(ctx, nil, adminID, true); err != nil {
		return fmt.Errorf("mark phone verified: %w", err)
	}
	if err := vs.codeStore.DeleteCode(ctx, adminID); err != nil {
		vs.log.Warn("failed to delete used verification code", "admin_id", adminID, "error", err)
	}

	vs.log.Info("phone verified", "admin_id", adminID)
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
