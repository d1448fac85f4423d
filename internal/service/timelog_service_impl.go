package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/timely/internal/clock"
	"github.com/alexanderramin/timely/internal/contract"
	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/repository"
	"github.com/alexanderramin/timely/internal/timelog"
)

type timeLogService struct {
	writer   *timelog.Writer
	projects repository.ProjectRepo
	clock    clock.Clock
	observer UseCaseObserver
}

func NewTimeLogService(
	log timelog.Store,
	projects repository.ProjectRepo,
	c clock.Clock,
	observers ...UseCaseObserver,
) TimeLogService {
	return &timeLogService{
		writer:   timelog.NewWriter(log, c),
		projects: projects,
		clock:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timeLogService) LogTime(ctx context.Context, req contract.LogTimeRequest) (entry domain.TimeEntry, err error) {
	fields := map[string]any{
		"project":  req.Project,
		"hours":    req.Hours,
		"days_ago": req.DaysAgo,
	}
	defer observe(ctx, s.observer, "log-time", time.Now().UTC(), fields, &err)

	name, err := domain.NormalizeProjectName(req.Project)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	if err = s.requireProject(ctx, name); err != nil {
		return domain.TimeEntry{}, err
	}

	if !req.At.IsZero() {
		entry, err = s.writer.AppendEntryAt(ctx, name, req.Hours, req.At, req.Comment)
		if err != nil {
			return domain.TimeEntry{}, err
		}
		fields["date"] = entry.Date
		return entry, nil
	}

	date := req.Date
	if date == "" {
		date, err = domain.BackdatedDate(s.clock.Now(), req.DaysAgo)
		if err != nil {
			return domain.TimeEntry{}, &contract.LogTimeError{
				Code:    contract.LogTimeErrOutOfRange,
				Message: fmt.Sprintf("cannot log %d days ago", req.DaysAgo),
				Err:     err,
			}
		}
	}

	entry, err = s.writer.AppendEntry(ctx, name, req.Hours, date, req.Comment)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	fields["date"] = entry.Date
	return entry, nil
}

func (s *timeLogService) requireProject(ctx context.Context, name string) error {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return err
	}
	if slices.ContainsFunc(projects, func(p domain.Project) bool { return p.Name == name }) {
		return nil
	}
	return &contract.LogTimeError{
		Code:    contract.LogTimeErrUnknownProject,
		Message: fmt.Sprintf("project %q is not registered", name),
		Err:     domain.ErrUnknownProject,
	}
}

// IsUnknownProject reports whether err came from logging against an
// unregistered project.
func IsUnknownProject(err error) bool {
	return errors.Is(err, domain.ErrUnknownProject)
}
