package projects_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/projects"
	"github.com/taskhive/taskhive-api/internal/tasks"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newServices() (*projects.Service, *tasks.Service) {
	projectRepo := projects.NewMemoryRepository()
	taskRepo := tasks.NewMemoryRepository()
	return projects.NewService(projectRepo, taskRepo), tasks.NewService(taskRepo, projectRepo)
}

func TestCreateAndGet(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	p, err := svc.Create(ctx, "Website", "Marketing site", "https://img.example/x.png")
	require.NoError(t, err)
	require.False(t, p.ID.IsZero())
	require.NotNil(t, p.Tasks)
	require.Empty(t, p.Tasks)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Website", got.Title)
	require.NotNil(t, got.Tasks)
}

func TestGet_Unknown(t *testing.T) {
	svc, _ := newServices()
	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.True(t, errors.Is(err, projects.ErrNotFound))
}

func TestListPopulatesTasks(t *testing.T) {
	svc, taskSvc := newServices()
	ctx := context.Background()

	p, err := svc.Create(ctx, "Backend", "API work", "")
	require.NoError(t, err)

	t1, err := taskSvc.Create(ctx, "Design schema", "collections", p.ID)
	require.NoError(t, err)
	t2, err := taskSvc.Create(ctx, "Write handlers", "auth first", p.ID)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Tasks, 2)
	require.Equal(t, t1.ID, list[0].Tasks[0].ID, "populate must preserve stored order")
	require.Equal(t, t2.ID, list[0].Tasks[1].ID)
}

func TestUpdate(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	p, err := svc.Create(ctx, "Old", "old desc", "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, "New", "new desc")
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "new desc", updated.Description)

	_, err = svc.Update(ctx, primitive.NewObjectID(), "x", "y")
	require.True(t, errors.Is(err, projects.ErrNotFound))
}

func TestDelete_Idempotent(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	p, err := svc.Create(ctx, "Doomed", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	// deleting again is not an error
	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.Get(ctx, p.ID)
	require.True(t, errors.Is(err, projects.ErrNotFound))
}

func TestTaskCreate_MissingProjectStillCreates(t *testing.T) {
	_, taskSvc := newServices()
	task, err := taskSvc.Create(context.Background(), "Orphan", "no parent", primitive.NewObjectID())
	require.NoError(t, err)
	require.False(t, task.ID.IsZero())
}
