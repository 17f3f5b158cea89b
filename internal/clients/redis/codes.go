package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
	"github.com/bloomhaus/floristry-backend/internal/utils"
)

// CodeStore keeps short-lived phone-verification codes. Codes expire on their
// own; a successful confirmation deletes the code so it is single-use.
type CodeStore interface {
	SaveCode(ctx context.Context, adminID uuid.UUID, code string, ttl time.Duration) error
	LoadCode(ctx context.Context, adminID uuid.UUID) (string, error)
	DeleteCode(ctx context.Context, adminID uuid.UUID) error
}

type codeStore struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewCodeStoreFromEnv(log *logger.Logger) (CodeStore, error) {
	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	db := utils.GetEnvAsInt("REDIS_DB", 0, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &codeStore{
		rdb: rdb,
		log: log.With("client", "VerificationCodeStore"),
	}, nil
}

func codeKey(adminID uuid.UUID) string {
	return fmt.Sprintf("phone_verification:%s", adminID)
}

func (cs *codeStore) SaveCode(ctx context.Context, adminID uuid.UUID, code string, ttl time.Duration) error {
	if err := cs.rdb.Set(ctx, codeKey(adminID), code, ttl).Err(); err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}
	return nil
}

// LoadCode returns "" (no error) when no code is pending.
func (cs *codeStore) LoadCode(ctx context.Context, adminID uuid.UUID) (string, error) {
	val, err := cs.rdb.Get(ctx, codeKey(adminID)).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load verification code: %w", err)
	}
	return val, nil
}

func (cs *codeStore) DeleteCode(ctx context.Context, adminID uuid.UUID) error {
	if err := cs.rdb.Del(ctx, codeKey(adminID)).Err(); err != nil {
		return fmt.Errorf("delete verification code: %w", err)
	}
	return nil
}
