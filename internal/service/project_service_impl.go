package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timely/internal/domain"
	"github.com/alexanderramin/timely/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Add(ctx context.Context, name string) (p domain.Project, err error) {
	fields := map[string]any{"project": name}
	defer observe(ctx, s.observer, "add-project", time.Now().UTC(), fields, &err)

	return s.projects.Add(ctx, name)
}

func (s *projectService) Remove(ctx context.Context, name string) (n int, err error) {
	fields := map[string]any{"project": name}
	defer observe(ctx, s.observer, "remove-project", time.Now().UTC(), fields, &err)

	n, err = s.projects.Delete(ctx, name)
	fields["removed"] = n
	return n, err
}
