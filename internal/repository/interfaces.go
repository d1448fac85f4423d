package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timely/internal/domain"
)

// ErrStoreNotFound is returned when a line store has not been bootstrapped.
// Stores are never created implicitly by reads or writes.
var ErrStoreNotFound = errors.New("line store not found")

// LineStore is an ordered, append-mostly sequence of text lines.
type LineStore interface {
	ReadAll(ctx context.Context) ([]string, error)
	Append(ctx context.Context, lines ...string) error
	OverwriteAll(ctx context.Context, lines []string) error
}

// Ensurer creates a store with initial content when it does not exist yet.
type Ensurer interface {
	Ensure(ctx context.Context, initial []string) error
}

type ProjectRepo interface {
	List(ctx context.Context) ([]domain.Project, error)
	Add(ctx context.Context, name string) (domain.Project, error)
	Delete(ctx context.Context, name string) (int, error)
}
