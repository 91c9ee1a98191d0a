package tasks

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectAttacher is the slice of the project store the task service needs:
// after a task is created its id is pushed onto the parent project's list.
type ProjectAttacher interface {
	AttachTask(ctx context.Context, projectID, taskID primitive.ObjectID) error
}

// Service creates tasks and links them to their parent project.
type Service struct {
	repo     Repository
	projects ProjectAttacher
}

func NewService(repo Repository, projects ProjectAttacher) *Service {
	return &Service{repo: repo, projects: projects}
}

// Create stores the task and attaches it to the project. The attach is a
// no-op when the project id matches nothing, matching the store-side update
// semantics the frontend was built against.
func (s *Service) Create(ctx context.Context, title, description string, projectID primitive.ObjectID) (*models.Task, error) {
	t := &models.Task{
		Title:       title,
		Description: description,
		ProjectID:   projectID,
	}
	t, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	if err := s.projects.AttachTask(ctx, projectID, t.ID); err != nil {
		return nil, err
	}
	return t, nil
}
