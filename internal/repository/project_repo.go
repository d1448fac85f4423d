package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timely/internal/domain"
)

// LineProjectRepo stores one project name per line. Names are not required
// to be unique.
type LineProjectRepo struct {
	store LineStore
}

// NewLineProjectRepo creates a project repository over store.
func NewLineProjectRepo(store LineStore) *LineProjectRepo {
	return &LineProjectRepo{store: store}
}

// List returns projects in file order, skipping blank lines.
func (r *LineProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	lines, err := r.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	projects := make([]domain.Project, 0, len(lines))
	for _, l := range lines {
		name := strings.TrimSpace(l)
		if name == "" {
			continue
		}
		projects = append(projects, domain.Project{Name: name})
	}
	return projects, nil
}

func (r *LineProjectRepo) Add(ctx context.Context, name string) (domain.Project, error) {
	name, err := domain.NormalizeProjectName(name)
	if err != nil {
		return domain.Project{}, err
	}
	if err := r.store.Append(ctx, name); err != nil {
		return domain.Project{}, fmt.Errorf("adding project: %w", err)
	}
	return domain.Project{Name: name}, nil
}

// Delete removes every line whose trimmed text equals the trimmed name and
// returns how many were removed. Other lines keep their order and content.
func (r *LineProjectRepo) Delete(ctx context.Context, name string) (int, error) {
	name = strings.TrimSpace(name)
	lines, err := r.store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting project: %w", err)
	}

	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != name {
			kept = append(kept, l)
		}
	}
	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.store.OverwriteAll(ctx, kept); err != nil {
		return 0, fmt.Errorf("deleting project: %w", err)
	}
	return removed, nil
}
