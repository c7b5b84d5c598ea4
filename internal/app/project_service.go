package app

import (
	"context"
	"log"
	"time"

	"projectpad/internal/model"
)

// ProjectStore is the persistence surface ProjectService depends on.
type ProjectStore interface {
	Create(project *model.Project) error
	ListByUserID(userID string) ([]model.Project, error)
	GetByID(id string) (*model.Project, error)
	DeleteByID(id string) error
}

// ProjectCache holds per-user list snapshots. All methods are optional to
// the service; a nil cache disables caching entirely.
type ProjectCache interface {
	GetList(ctx context.Context, userID string) ([]model.Project, bool, error)
	SetList(ctx context.Context, userID string, projects []model.Project) error
	Invalidate(ctx context.Context, userID string) error
}

type ProjectService struct {
	projectStore ProjectStore
	cache        ProjectCache
	publisher    ActivityPublisher
}

type CreateProjectInput struct {
	OwnerID     string
	Title       string
	Description string
}

func NewProjectService(projectStore ProjectStore, cache ProjectCache, publisher ActivityPublisher) *ProjectService {
	return &ProjectService{
		projectStore: projectStore,
		cache:        cache,
		publisher:    publisher,
	}
}

// Create persists a project for the supplied owner id and returns the record
// verbatim. An empty title is accepted: the title requirement is a
// client-side rule only, and the server stays lenient on purpose. The owner
// id is a loose reference — it is not checked against the users table.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if input.OwnerID == "" {
		return nil, ErrInvalidInput
	}

	project := &model.Project{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.projectStore.Create(project); err != nil {
		return nil, err
	}

	s.invalidate(ctx, input.OwnerID)
	s.publishProjectActivity(ctx, project.UserID, model.ActionProjectCreated, project.Title)
	return project, nil
}

// List returns every project owned by the given id, serving from the cache
// when a snapshot exists.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	if ownerID == "" {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		if cached, hit, err := s.cache.GetList(ctx, ownerID); err == nil && hit {
			return cached, nil
		}
	}

	projects, err := s.projectStore.ListByUserID(ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, ownerID, projects); err != nil {
			log.Printf("cache project list failed: %v", err)
		}
	}
	return projects, nil
}

// Delete removes a project by id. Deleting an id that does not exist is a
// successful no-op, mirroring the original contract.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	existing, err := s.projectStore.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.projectStore.DeleteByID(id); err != nil {
		return err
	}

	if existing != nil {
		s.invalidate(ctx, existing.UserID)
		s.publishProjectActivity(ctx, existing.UserID, model.ActionProjectDeleted, existing.Title)
	}
	return nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.projectStore.GetByID(id)
}

func (s *ProjectService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		log.Printf("invalidate project list cache failed: %v", err)
	}
}

func (s *ProjectService) publishProjectActivity(ctx context.Context, userID, action, detail string) {
	if s.publisher == nil {
		return
	}
	event := model.ActivityEvent{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("publish %s event failed: %v", action, err)
	}
}
