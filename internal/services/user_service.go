// Package services – UserService
//
// This file implements the UserService, which manages subscriber
// registration and listing. Registration validates the payload, performs the
// store-dependent duplicate-MSISDN check, and inserts the row. The check and
// the insert are not one atomic step; the unique index on the msisdn column
// is the backstop that turns a lost race into ErrDuplicateMSISDN instead of
// a second row.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
	"github.com/tbourn/go-cdr-backend/internal/repo"
)

// UserService implements the use-cases around subscriber accounts.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Register validates and stores a new subscriber.
//
// Semantics:
//   - name and msisdn are validated per ValidateUser.
//   - An existing user with the same MSISDN yields ErrDuplicateMSISDN, both
//     from the pre-insert existence check and from the unique index when two
//     registrations race past the check concurrently.
//   - The stored row (including the assigned ID) is returned; handlers decide
//     what to expose, and registration responses deliberately omit the ID.
func (s *UserService) Register(ctx context.Context, name, msisdn string) (*domain.User, error) {
	if err := ValidateUser(name, msisdn); err != nil {
		return nil, err
	}

	exists, err := repo.UserExistsByMSISDN(ctx, s.DB, msisdn)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMSISDN
	}

	u, err := repo.CreateUser(ctx, s.DB, name, msisdn)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateMSISDN
		}
		return nil, err
	}
	return u, nil
}

// List returns all subscribers in deterministic scan order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return repo.ListUsers(ctx, s.DB)
}
