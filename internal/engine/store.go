// Package engine implements the flat-file record store behind the Account
// Service.
package engine

import (
	"context"
	"errors"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// ErrCorruptFile is returned when the store file exists but cannot be decoded.
var ErrCorruptFile = errors.New("record store file is corrupt")

// RecordStore is the contract the account service depends on. Load returns a
// fresh copy of the whole file; Update runs fn against a fresh copy and
// rewrites the file when fn returns nil.
type RecordStore interface {
	Load(ctx context.Context) (*schema.UserFile, error)
	Update(ctx context.Context, fn func(f *schema.UserFile) error) error
}
