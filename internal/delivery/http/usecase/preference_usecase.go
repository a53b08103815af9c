package usecase

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/repository"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/i18n"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PreferenceUsecase interface {
	Language(ctx context.Context, clientID string) i18n.Language
	SetLanguage(ctx context.Context, clientID string, code string) (i18n.Language, error)
	Notifications(ctx context.Context, clientID string) bool
	SetNotifications(ctx context.Context, clientID string, enabled bool) error
	Translate(ctx context.Context, clientID string, key, fallback string) string
}

type PreferenceConfig struct {
	DB      *gorm.DB
	Log     *logrus.Logger
	Storage repository.StorageRepository
}

type preferenceUsecase struct {
	cfg PreferenceConfig
}

func NewPreferenceUsecase(cfg PreferenceConfig) PreferenceUsecase {
	return &preferenceUsecase{cfg: cfg}
}

// Language reads the persisted selection, defaulting to English when the
// record is absent or holds an unknown code.
func (u *preferenceUsecase) Language(_ context.Context, clientID string) i18n.Language {
	raw, ok, err := u.cfg.Storage.Get(u.cfg.DB, storageKey(clientID, keyLanguage))
	if err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).Warn("language record read failed")
		}
		return i18n.LanguageDefault
	}
	if !ok {
		return i18n.LanguageDefault
	}
	lang, valid := i18n.ParseLanguage(raw)
	if !valid {
		return i18n.LanguageDefault
	}
	return lang
}

// SetLanguage persists the selection; it takes effect for every
// subsequent Translate call with no restart.
func (u *preferenceUsecase) SetLanguage(_ context.Context, clientID string, code string) (i18n.Language, error) {
	lang, valid := i18n.ParseLanguage(code)
	if !valid {
		return i18n.LanguageDefault, fiber.NewError(fiber.StatusBadRequest, "unsupported language: "+code)
	}
	if err := u.cfg.Storage.Put(u.cfg.DB, storageKey(clientID, keyLanguage), string(lang)); err != nil {
		return i18n.LanguageDefault, err
	}
	return lang, nil
}

// Notifications defaults to enabled when nothing is persisted. The value
// is stored as a raw "true"/"false" string.
func (u *preferenceUsecase) Notifications(_ context.Context, clientID string) bool {
	raw, ok, err := u.cfg.Storage.Get(u.cfg.DB, storageKey(clientID, keyNotifications))
	if err != nil || !ok {
		return true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}

func (u *preferenceUsecase) SetNotifications(_ context.Context, clientID string, enabled bool) error {
	return u.cfg.Storage.Put(u.cfg.DB, storageKey(clientID, keyNotifications), strconv.FormatBool(enabled))
}

// Translate resolves a key in the client's current language. It never
// returns an empty string.
func (u *preferenceUsecase) Translate(ctx context.Context, clientID string, key, fallback string) string {
	return i18n.Translate(u.Language(ctx, clientID), key, fallback)
}
