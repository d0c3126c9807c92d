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

	authRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/auth"
	userRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/user"
	authDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/auth"
	userDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/user"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ctxutil"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ids"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

// TokenPair is one issued access/refresh pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService supplies identities: account registration, login, token
// refresh, and the token-to-context resolution used by the auth
// middleware.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*userDomain.User, error)
	Login(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context) error
	ContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	CurrentUser(ctx context.Context) (*userDomain.User, error)
}

type authService struct {
	db         *gorm.DB
	log        *logger.Logger
	ids        ids.Source
	users      userRepo.UserRepo
	tokens     authRepo.UserTokenRepo
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	idSource ids.Source,
	users userRepo.UserRepo,
	tokens authRepo.UserTokenRepo,
	jwtSecret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:         db,
		log:        log.With("service", "AuthService"),
		ids:        idSource,
		users:      users,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (as *authService) Register(ctx context.Context, email, password, name string) (*userDomain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apierr.Validation("a valid email is required")
	}
	if len(password) < 8 {
		return nil, apierr.Validation("password must be at least 8 characters")
	}

	exists, err := as.users.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apierr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &userDomain.User{
		ID:        as.ids.NewID(),
		Email:     email,
		Password:  string(hashed),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := as.users.Create(ctx, nil, account); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	as.log.Info("Registered user", "user_id", account.ID.String())
	return account, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := as.users.GetByEmail(ctx, nil, email)
	if err != nil {
		return TokenPair{}, fmt.Errorf("fetch user: %w", err)
	}
	if account == nil {
		return TokenPair{}, apierr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return TokenPair{}, apierr.Unauthorized("invalid credentials")
	}

	var pair TokenPair
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.tokens.DeleteByUserID(ctx, tx, account.ID); err != nil {
			return fmt.Errorf("clear prior tokens: %w", err)
		}
		issued, err := as.issueTokens(ctx, tx, account.ID)
		if err != nil {
			return err
		}
		pair = issued
		return nil
	}); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return TokenPair{}, apierr.Validation("refresh_token is required")
	}
	row, err := as.tokens.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		return TokenPair{}, fmt.Errorf("fetch token: %w", err)
	}
	if row == nil || row.ExpiresAt.Before(time.Now()) {
		return TokenPair{}, apierr.Unauthorized("refresh token invalid or expired")
	}

	var pair TokenPair
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.tokens.DeleteByID(ctx, tx, row.ID); err != nil {
			return fmt.Errorf("rotate token: %w", err)
		}
		issued, err := as.issueTokens(ctx, tx, row.UserID)
		if err != nil {
			return err
		}
		pair = issued
		return nil
	}); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

func (as *authService) Logout(ctx context.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if err := as.tokens.DeleteByUserID(ctx, nil, caller); err != nil {
		return fmt.Errorf("delete tokens: %w", err)
	}
	return nil
}

func (as *authService) ContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx, apierr.Unauthorized("invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return ctx, apierr.Unauthorized("invalid token subject")
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:      userID,
		TokenString: tokenString,
	}), nil
}

func (as *authService) CurrentUser(ctx context.Context) (*userDomain.User, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	account, err := as.users.GetByID(ctx, nil, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if account == nil {
		return nil, apierr.NotFound("user not found")
	}
	return account, nil
}

func (as *authService) issueTokens(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (TokenPair, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken := uuid.New().String()

	row := &authDomain.UserToken{
		ID:           as.ids.NewID(),
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(as.refreshTTL),
		CreatedAt:    now.UTC(),
	}
	if _, err := as.tokens.Create(ctx, tx, row); err != nil {
		return TokenPair{}, fmt.Errorf("persist token: %w", err)
	}
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
