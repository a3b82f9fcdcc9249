// Package categories provides database operations for category management.
//
// This package implements the CategoryStore interface defined in
// internal/http/categories.go.
package categories

import (
	"gorm.io/gorm"

	"github.com/ekaraca/wordbank/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCategoryByID retrieves a category by ID.
func (r *Repository) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName retrieves a category by its unique name. Used by the
// duplicate pre-check before creating a category.
func (r *Repository) GetCategoryByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns a page of categories. No filtering or ordering
// options exist for categories.
func (r *Repository) ListCategories(skip, limit int) ([]entities.Category, error) {
	query := r.db.Model(&entities.Category{})
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var categories []entities.Category
	err := query.Find(&categories).Error
	return categories, err
}

// CreateCategory creates a new category. Duplicate names are the caller's
// pre-check, with the unique index on name as the backstop.
func (r *Repository) CreateCategory(name string) (*entities.Category, error) {
	category := &entities.Category{Name: name}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}
