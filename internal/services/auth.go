package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
	"github.com/bloomhaus/floristry-backend/internal/platform/ctxutil"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type RegisterAdminInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Phone        string
	StoreName    string
	StoreAddress string
}

type AuthService interface {
	// RegisterAdmin creates the admin and its store in one transaction.
	RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*types.Admin, error)
	LoginAdmin(ctx context.Context, email, password string) (string, string, error)
	RefreshAdmin(ctx context.Context) (string, string, error)
	LogoutAdmin(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	adminRepo      repos.AdminRepo
	storeRepo      repos.StoreRepo
	adminTokenRepo repos.AdminTokenRepo
	jwtSecretKey   string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRepo repos.AdminRepo,
	storeRepo repos.StoreRepo,
	adminTokenRepo repos.AdminTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:             db,
		log:            serviceLog,
		adminRepo:      adminRepo,
		storeRepo:      storeRepo,
		adminTokenRepo: adminTokenRepo,
		jwtSecretKey:   jwtSecretKey,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
	}
}

func (as *authService) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*types.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if strings.TrimSpace(in.StoreName) == "" {
		return nil, fmt.Errorf("store name required")
	}

	exists, err := as.adminRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &types.Admin{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
	}

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shop := &types.Store{
			ID:      uuid.New(),
			Name:    strings.TrimSpace(in.StoreName),
			Address: strings.TrimSpace(in.StoreAddress),
		}
		if _, err := as.storeRepo.Create(ctx, tx, []*types.Store{shop}); err != nil {
			return fmt.Errorf("create store: %w", err)
		}
		admin.StoreID = &shop.ID
		if _, err := as.adminRepo.Create(ctx, tx, []*types.Admin{admin}); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		return nil
	})
	if err != nil {
		as.log.Error("RegisterAdmin failed", "error", err)
		return nil, err
	}
	as.log.Info("admin registered", "admin_id", admin.ID, "store_id", admin.StoreID)
	return admin, nil
}

func (as *authService) LoginAdmin(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admins, err := as.adminRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("load admin by email: %w", err)
	}
	if len(admins) == 0 {
		return "", "", fmt.Errorf("invalid credentials")
	}
	admin := admins[0]
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}

	var accessToken string
	var refreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, ftErr := as.adminTokenRepo.GetByAdminIDs(ctx, tx, []uuid.UUID{admin.ID})
		if ftErr != nil {
			return fmt.Errorf("check admin tokens: %w", ftErr)
		}
		var stale []uuid.UUID
		for _, tok := range existing {
			if tok != nil && tok.ExpiresAt.Before(time.Now()) {
				stale = append(stale, tok.ID)
			}
		}
		if len(stale) > 0 {
			if dtErr := as.adminTokenRepo.DeleteByIDs(ctx, tx, stale); dtErr != nil {
				return fmt.Errorf("delete expired admin tokens: %w", dtErr)
			}
		}

		tok, genErr := as.generateAccessToken(admin)
		if genErr != nil {
			return fmt.Errorf("generate access token: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		adminToken := &types.AdminToken{
			ID:           uuid.New(),
			AdminID:      admin.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, ctErr := as.adminTokenRepo.Create(ctx, tx, []*types.AdminToken{adminToken}); ctErr != nil {
			return fmt.Errorf("create admin token: %w", ctErr)
		}
		return nil
	})
	if err != nil {
		as.log.Warn("LoginAdmin failed", "admin_id", admin.ID, "error", err)
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) RefreshAdmin(ctx context.Context) (string, string, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return "", "", fmt.Errorf("no refresh token in request context")
	}

	var accessToken string
	var newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, ftErr := as.adminTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
		if ftErr != nil {
			return fmt.Errorf("load refresh token: %w", ftErr)
		}
		if len(found) == 0 || found[0] == nil {
			return fmt.Errorf("unknown refresh token")
		}
		existing := found[0]
		if existing.ExpiresAt.Before(time.Now()) {
			if dtErr := as.adminTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existing.ID}); dtErr != nil {
				return fmt.Errorf("delete expired refresh token: %w", dtErr)
			}
			return fmt.Errorf("refresh token expired")
		}

		admin, aErr := as.adminRepo.GetByIDWithStore(ctx, tx, existing.AdminID)
		if aErr != nil {
			return fmt.Errorf("load admin for refresh: %w", aErr)
		}
		if admin == nil {
			return fmt.Errorf("no admin found for refresh token")
		}

		tok, genErr := as.generateAccessToken(admin)
		if genErr != nil {
			return fmt.Errorf("generate access token: %w", genErr)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()
		rotated := &types.AdminToken{
			ID:           uuid.New(),
			AdminID:      admin.ID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}
		if _, cErr := as.adminTokenRepo.Create(ctx, tx, []*types.AdminToken{rotated}); cErr != nil {
			return fmt.Errorf("create rotated token: %w", cErr)
		}
		if dErr := as.adminTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existing.ID}); dErr != nil {
			return fmt.Errorf("remove old refresh token: %w", dErr)
		}
		return nil
	})
	if err != nil {
		as.log.Warn("RefreshAdmin failed", "error", err)
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutAdmin(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return fmt.Errorf("no access token in request context")
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, ftErr := as.adminTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
		if ftErr != nil {
			return fmt.Errorf("load admin token: %w", ftErr)
		}
		if len(found) == 0 || found[0] == nil {
			return nil
		}
		if dErr := as.adminTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{found[0].ID}); dErr != nil {
			return fmt.Errorf("delete admin token: %w", dErr)
		}
		return nil
	})
}

func (as *authService) generateAccessToken(admin *types.Admin) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, nil
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid admin id in token: %w", err)
	}

	var refreshToken string
	found, ftErr := as.adminTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
	if ftErr != nil {
		return ctx, fmt.Errorf("load admin token by access token: %w", ftErr)
	}
	if len(found) > 0 && found[0] != nil {
		refreshToken = found[0].RefreshToken
	}

	rd := &ctxutil.RequestData{
		TokenString:  tokenString,
		RefreshToken: refreshToken,
		AdminID:      adminID,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
