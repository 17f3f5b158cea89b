package app

import (
	"time"

	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
	"github.com/bloomhaus/floristry-backend/internal/utils"
)

type Config struct {
	JWTSecretKey        string
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	VerificationCodeTTL time.Duration

	Environment string
	Version     string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	verificationCodeTTLSeconds := utils.GetEnvAsInt("VERIFICATION_CODE_TTL", 600, log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	version := utils.GetEnv("APP_VERSION", "dev", log)
	return Config{
		JWTSecretKey:        jwtSecretKey,
		AccessTokenTTL:      time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:     time.Duration(refreshTokenTTLSeconds) * time.Second,
		VerificationCodeTTL: time.Duration(verificationCodeTTLSeconds) * time.Second,
		Environment:         environment,
		Version:             version,
	}
}
