package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneytrack/internal/errors"
	"moneytrack/internal/models"
)

// categoryService enforces category visibility and mutation rules.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns the union of all global categories and the
// non-global categories owned by the requesting user.
func (s *categoryService) ListCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.
		Where("is_global = ?", true).
		Or("user_id = ? AND is_global = ?", userID, false).
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory creates a non-global category owned by the requesting
// user. Clients can never create a global category through this path.
func (s *categoryService) CreateCategory(userID, name string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		Name:     name,
		IsGlobal: false,
		UserID:   &userID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// DeleteCategory deletes a category owned by the requesting user. The
// checks run in a fixed order: existence, then the global guard, then
// ownership. A global category always fails with the global-category
// error regardless of who asks.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if category.IsGlobal {
		return apperrors.ErrGlobalCategory
	}

	if category.UserID == nil || *category.UserID != userID {
		return apperrors.ErrCategoryNotOwned
	}

	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).
		Delete(&models.Category{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
