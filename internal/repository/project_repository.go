package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"projectpad/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("create project failed: %w", err)
	}
	return nil
}

// ListByUserID returns the owner's projects in insertion order. An unknown
// owner id yields an empty slice, not an error.
func (r *ProjectRepository) ListByUserID(userID string) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query project by id failed: %w", err)
	}
	return &project, nil
}

// DeleteByID is a no-op when the id does not exist.
func (r *ProjectRepository) DeleteByID(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Project{}).Error; err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}
	return nil
}
