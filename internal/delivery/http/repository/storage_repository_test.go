package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	internalEntity "github.com/nyayasathi/nyayasathi-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&internalEntity.StorageEntry{}, &internalEntity.Account{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStorageRoundTrip(t *testing.T) {
	repo := NewStorageRepository(testDB(t))

	if err := repo.Put(nil, "c1/prefs:language", "hi"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	value, ok, err := repo.Get(nil, "c1/prefs:language")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "hi" {
		t.Errorf("Get = (%q, %v), want (hi, true)", value, ok)
	}
}

func TestStorageGetMiss(t *testing.T) {
	repo := NewStorageRepository(testDB(t))

	value, ok, err := repo.Get(nil, "c1/session:user")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get miss = (%q, %v), want empty and false", value, ok)
	}
}

func TestStoragePutOverwrites(t *testing.T) {
	repo := NewStorageRepository(testDB(t))

	if err := repo.Put(nil, "c1/prefs:language", "en"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(nil, "c1/prefs:language", "ta"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	value, ok, err := repo.Get(nil, "c1/prefs:language")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "ta" {
		t.Errorf("Get = (%q, %v), want last write (ta, true)", value, ok)
	}
}

func TestStorageDelete(t *testing.T) {
	repo := NewStorageRepository(testDB(t))

	if err := repo.Put(nil, "c1/session:user", `{"id":"u1"}`); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Delete(nil, "c1/session:user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok, err := repo.Get(nil, "c1/session:user"); err != nil || ok {
		t.Errorf("Get after delete = (ok=%v, err=%v), want miss", ok, err)
	}

	// deleting a missing key is not an error
	if err := repo.Delete(nil, "c1/session:user"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestStorageKeysAreIndependent(t *testing.T) {
	repo := NewStorageRepository(testDB(t))

	if err := repo.Put(nil, "c1/prefs:language", "hi"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(nil, "c2/prefs:language", "ta"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Delete(nil, "c1/prefs:language"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	value, ok, err := repo.Get(nil, "c2/prefs:language")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "ta" {
		t.Errorf("c2 record = (%q, %v), want (ta, true)", value, ok)
	}
}

func TestAccountRepository(t *testing.T) {
	repo := NewAccountRepository(testDB(t))

	account := &internalEntity.Account{
		ID:           "a1",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
	}
	if err := repo.Create(nil, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byEmail, err := repo.FindByEmail(nil, "asha@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != "a1" {
		t.Errorf("FindByEmail = %+v, want a1", byEmail)
	}

	byID, err := repo.FindByID(nil, "a1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Email != "asha@example.com" {
		t.Errorf("FindByID = %+v", byID)
	}

	missing, err := repo.FindByEmail(nil, "nobody@example.com")
	if err != nil {
		t.Fatalf("FindByEmail miss: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByEmail miss = %+v, want nil", missing)
	}
}
