package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(&domain.User{}, &domain.CallRecord{}, &domain.IngestReceipt{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestUserService_Register_Success(t *testing.T) {
	svc := &UserService{DB: newServiceDB(t)}

	u, err := svc.Register(context.Background(), "Lina Haddad", "96279111111")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" || u.Name != "Lina Haddad" || u.MSISDN != "96279111111" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserService_Register_ValidationFailures(t *testing.T) {
	svc := &UserService{DB: newServiceDB(t)}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Lina", "123"); !errors.Is(err, ErrInvalidMSISDN) {
		t.Fatalf("short msisdn err = %v, want ErrInvalidMSISDN", err)
	}
	if _, err := svc.Register(ctx, "  ", "96279111111"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name err = %v, want ErrEmptyName", err)
	}

	// Nothing was stored.
	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}

func TestUserService_Register_DuplicateMSISDN(t *testing.T) {
	svc := &UserService{DB: newServiceDB(t)}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Lina", "96279111111"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, "Omar", "96279111111")
	if !errors.Is(err, ErrDuplicateMSISDN) {
		t.Fatalf("second Register err = %v, want ErrDuplicateMSISDN", err)
	}
}

func TestUserService_List_ReturnsAllInRegistrationOrder(t *testing.T) {
	svc := &UserService{DB: newServiceDB(t)}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Lina", "96279111111"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Omar", "96279222222"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].Name != "Lina" || users[1].Name != "Omar" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
