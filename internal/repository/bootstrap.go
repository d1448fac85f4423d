package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timely/internal/domain"
)

// Bootstrap creates the project store (empty) and the time log (holding a
// single summary header) when they are missing. Existing stores are left as
// they are.
func Bootstrap(ctx context.Context, projects, timeLog Ensurer) error {
	if err := projects.Ensure(ctx, nil); err != nil {
		return fmt.Errorf("bootstrapping project store: %w", err)
	}
	if err := timeLog.Ensure(ctx, []string{domain.SummaryHeader}); err != nil {
		return fmt.Errorf("bootstrapping time log: %w", err)
	}
	return nil
}
