package projects

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no project exists under the requested id.
var ErrNotFound = errors.New("project not found")

// Repository provides project persistence operations.
//
// AttachTask appends a task reference to a project's task list. When the
// project does not exist the attach is a silent no-op; task creation never
// fails because its parent vanished between validation and attach.
type Repository interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, title, description string) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AttachTask(ctx context.Context, projectID, taskID primitive.ObjectID) error
}
