package engine

import (
	"context"
	"fmt"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// MigrationReport counts what Migrate did with each source record.
type MigrationReport struct {
	Imported   int
	Duplicates int
	Rejected   int
}

// Migrate copies the records of src into dst. This merges the user files of
// older deployments into the current store. Records whose email already
// exists in dst are left alone; records for which accept returns false are
// rejected. A nil accept takes everything. dst is rewritten once.
func Migrate(ctx context.Context, src, dst RecordStore, accept func(schema.UserRecord) bool) (MigrationReport, error) {
	var report MigrationReport

	source, err := src.Load(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to load source records: %w", err)
	}

	err = dst.Update(ctx, func(f *schema.UserFile) error {
		for _, u := range source.Users {
			if f.FindByEmail(u.Email) >= 0 {
				report.Duplicates++
				continue
			}
			if accept != nil && !accept(u) {
				report.Rejected++
				continue
			}
			f.Users = append(f.Users, u)
			report.Imported++
		}
		return nil
	})
	if err != nil {
		return MigrationReport{}, fmt.Errorf("failed to write destination records: %w", err)
	}
	return report, nil
}
