package projects

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskLister is the slice of the task store the project service needs to
// populate task references on reads.
type TaskLister interface {
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Task, error)
}

// Service provides project operations with task population on reads,
// mirroring the document-store populate the frontend expects.
type Service struct {
	repo  Repository
	tasks TaskLister
}

func NewService(repo Repository, tasks TaskLister) *Service {
	return &Service{repo: repo, tasks: tasks}
}

func (s *Service) Create(ctx context.Context, title, description, imgURL string) (*models.Project, error) {
	p := &models.Project{
		Title:       title,
		Description: description,
		ImgURL:      imgURL,
		TaskIDs:     []primitive.ObjectID{},
	}
	p, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.Tasks = []models.Task{}
	return p, nil
}

// List returns all projects with their tasks populated.
func (s *Service) List(ctx context.Context) ([]*models.Project, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := s.populate(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*models.Project, error) {
	p, err := s.repo.Update(ctx, id, title, description)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

// populate resolves the project's task references in stored order.
func (s *Service) populate(ctx context.Context, p *models.Project) error {
	p.Tasks = []models.Task{}
	if len(p.TaskIDs) == 0 {
		return nil
	}
	tasks, err := s.tasks.ListByIDs(ctx, p.TaskIDs)
	if err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	for _, id := range p.TaskIDs {
		if t, ok := byID[id]; ok {
			p.Tasks = append(p.Tasks, t)
		}
	}
	return nil
}
