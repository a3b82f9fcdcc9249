package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekaraca/wordbank/internal/entities"
)

// CategoryStore defines database operations for category management.
type CategoryStore interface {
	GetCategoryByID(id uint) (*entities.Category, error)
	GetCategoryByName(name string) (*entities.Category, error)
	ListCategories(skip, limit int) ([]entities.Category, error)
	CreateCategory(name string) (*entities.Category, error)
}

type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// CategoryCreateRequest is the request body for creating a category.
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CreateCategory adds a new category.
// POST /categories/
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	existing, err := cc.store.GetCategoryByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		respondInternalError(c, err, "check category")
		return
	}
	if existing != nil {
		respondBadRequest(c, "Category already exists.")
		return
	}

	category, err := cc.store.CreateCategory(req.Name)
	if err != nil {
		respondInternalError(c, err, "create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories returns a paginated category listing.
// GET /categories/
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	skip, limit := parsePagination(c)

	categories, err := cc.store.ListCategories(skip, limit)
	if err != nil {
		respondInternalError(c, err, "list categories")
		return
	}
	if categories == nil {
		categories = []entities.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
