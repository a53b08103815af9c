package usecase

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/entity"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/repository"
	internalEntity "github.com/nyayasathi/nyayasathi-be/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SessionUsecase interface {
	Register(ctx context.Context, clientID string, req entity.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, clientID string, req entity.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context, clientID string) error
	Current(ctx context.Context, clientID string) (*entity.User, bool)
	IsAuthenticated(ctx context.Context, clientID string) bool
}

type SessionConfig struct {
	DB       *gorm.DB
	Log      *logrus.Logger
	Storage  repository.StorageRepository
	Accounts repository.AccountRepository
}

type sessionUsecase struct {
	cfg SessionConfig
}

func NewSessionUsecase(cfg SessionConfig) SessionUsecase {
	return &sessionUsecase{cfg: cfg}
}

// Register creates an account and logs the client in as it. The password
// hash is stored for completeness; it is never checked afterwards.
func (u *sessionUsecase) Register(ctx context.Context, clientID string, req entity.RegisterRequest) (*entity.User, error) {
	existing, err := u.cfg.Accounts.FindByEmail(u.cfg.DB, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &internalEntity.Account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := u.cfg.Accounts.Create(u.cfg.DB, account); err != nil {
		return nil, err
	}

	return u.Login(ctx, clientID, entity.LoginRequest{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	})
}

// Login unconditionally sets the current user and persists the record.
// Repeated logins overwrite the previous record.
func (u *sessionUsecase) Login(_ context.Context, clientID string, req entity.LoginRequest) (*entity.User, error) {
	user := &entity.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := u.cfg.Storage.Put(u.cfg.DB, storageKey(clientID, keySessionUser), string(raw)); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *sessionUsecase) Logout(_ context.Context, clientID string) error {
	return u.cfg.Storage.Delete(u.cfg.DB, storageKey(clientID, keySessionUser))
}

// Current loads the persisted session record. A missing record means
// unauthenticated. A record that fails to parse is discarded and the
// client starts unauthenticated; the failure is logged, never surfaced.
func (u *sessionUsecase) Current(_ context.Context, clientID string) (*entity.User, bool) {
	key := storageKey(clientID, keySessionUser)
	raw, ok, err := u.cfg.Storage.Get(u.cfg.DB, key)
	if err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("session record read failed")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("discarding corrupt session record")
		}
		_ = u.cfg.Storage.Delete(u.cfg.DB, key)
		return nil, false
	}
	return &user, true
}

func (u *sessionUsecase) IsAuthenticated(ctx context.Context, clientID string) bool {
	_, ok := u.Current(ctx, clientID)
	return ok
}
