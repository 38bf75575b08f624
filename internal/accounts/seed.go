package accounts

import (
	"context"
	"fmt"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// SeedAdmin creates an admin account when the store holds no users at all.
// It reports whether a record was written.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load users: %w", err)
	}
	if len(file.Users) > 0 {
		return false, nil
	}

	admin, err := s.create(ctx, Registration{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  password,
	}, schema.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info("store initialized with default admin user", "email", admin.Email)
	return true, nil
}
