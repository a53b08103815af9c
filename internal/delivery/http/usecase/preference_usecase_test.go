package usecase

import (
	"context"
	"testing"

	"github.com/nyayasathi/nyayasathi-be/internal/pkg/i18n"
)

func newPreferencesForTest(store *fakeStorage) PreferenceUsecase {
	return NewPreferenceUsecase(PreferenceConfig{Storage: store})
}

func TestLanguageDefaultsToEnglish(t *testing.T) {
	u := newPreferencesForTest(newFakeStorage())
	if got := u.Language(context.Background(), "c1"); got != i18n.LanguageEnglish {
		t.Errorf("Language() = %s, want en", got)
	}
}

func TestSetLanguagePersistsAcrossRestart(t *testing.T) {
	store := newFakeStorage()
	ctx := context.Background()

	u := newPreferencesForTest(store)
	lang, err := u.SetLanguage(ctx, "c1", "hi")
	if err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if lang != i18n.LanguageHindi {
		t.Errorf("SetLanguage returned %s, want hi", lang)
	}

	restarted := newPreferencesForTest(store)
	if got := restarted.Language(ctx, "c1"); got != i18n.LanguageHindi {
		t.Errorf("Language after restart = %s, want hi", got)
	}
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	u := newPreferencesForTest(newFakeStorage())
	if _, err := u.SetLanguage(context.Background(), "c1", "fr"); err == nil {
		t.Error("SetLanguage(fr) should fail")
	}
}

func TestInvalidPersistedLanguageFallsBack(t *testing.T) {
	store := newFakeStorage()
	store.m["c1/"+keyLanguage] = "klingon"

	u := newPreferencesForTest(store)
	if got := u.Language(context.Background(), "c1"); got != i18n.LanguageEnglish {
		t.Errorf("Language() = %s, want en fallback", got)
	}
}

func TestTranslateUsesCurrentLanguage(t *testing.T) {
	store := newFakeStorage()
	ctx := context.Background()
	u := newPreferencesForTest(store)

	if got := u.Translate(ctx, "c1", "nav.laws", ""); got != "Laws" {
		t.Errorf("Translate before switch = %q, want Laws", got)
	}

	if _, err := u.SetLanguage(ctx, "c1", "ta"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	// the switch takes effect immediately, no restart needed
	if got := u.Translate(ctx, "c1", "nav.laws", ""); got != "சட்டங்கள்" {
		t.Errorf("Translate after switch = %q", got)
	}

	if got := u.Translate(ctx, "c1", "no.such.key", "fallback text"); got != "fallback text" {
		t.Errorf("Translate miss = %q, want fallback", got)
	}
	if got := u.Translate(ctx, "c1", "no.such.key", ""); got != "no.such.key" {
		t.Errorf("Translate miss without fallback = %q, want key", got)
	}
}

func TestNotificationsToggle(t *testing.T) {
	store := newFakeStorage()
	ctx := context.Background()
	u := newPreferencesForTest(store)

	if !u.Notifications(ctx, "c1") {
		t.Error("notifications should default to enabled")
	}

	if err := u.SetNotifications(ctx, "c1", false); err != nil {
		t.Fatalf("SetNotifications: %v", err)
	}
	if store.m["c1/"+keyNotifications] != "false" {
		t.Errorf("persisted value = %q, want raw \"false\"", store.m["c1/"+keyNotifications])
	}

	restarted := newPreferencesForTest(store)
	if restarted.Notifications(ctx, "c1") {
		t.Error("notifications should stay off after restart")
	}
}

func TestCorruptNotificationsRecordFallsBack(t *testing.T) {
	store := newFakeStorage()
	store.m["c1/"+keyNotifications] = "maybe"

	u := newPreferencesForTest(store)
	if !u.Notifications(context.Background(), "c1") {
		t.Error("unparsable toggle should fall back to enabled")
	}
}
