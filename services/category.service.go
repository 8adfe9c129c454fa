package services

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category contains all the category related services
type Category struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new category, the name carries
// a unique index so a duplicate name fails with a duplicate key error
func (cat *Category) Create(ctx context.Context, category models.Category) (models.Category, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	err := cat.Conn.DB.WithContext(ctx).Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// GetByNames is a function that is used to resolve category names to records,
// every name must resolve for the lookup to succeed
func (cat *Category) GetByNames(ctx context.Context, names []string) ([]models.Category, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var categories []models.Category
	err := cat.Conn.DB.WithContext(ctx).Where("name IN ?", names).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	if len(categories) != len(names) {
		return nil, gorm.ErrRecordNotFound
	}

	return categories, nil
}

// GetAll is a function that is used to get all the categories
func (cat *Category) GetAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var categories []models.Category
	err := cat.Conn.DB.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// UpdateImage is a function that is used to update the image of the category
func (cat *Category) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) (*models.Category, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var category models.Category
	err := cat.Conn.DB.WithContext(ctx).Where(&models.Category{
		ID: &id,
	}).First(&category).Error
	if err != nil {
		return nil, err
	}

	err = cat.Conn.DB.WithContext(ctx).Model(&category).Update("image_url", imageURL).Error
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// CreateSub is a function that is used to create a new sub category under a category
func (cat *Category) CreateSub(ctx context.Context, sub models.SubCategory) (models.SubCategory, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	err := cat.Conn.DB.WithContext(ctx).Create(&sub).Error
	if err != nil {
		return models.SubCategory{}, err
	}

	return sub, nil
}

// GetAllSub is a function that is used to get all the sub categories of a category
func (cat *Category) GetAllSub(ctx context.Context, categoryID uuid.UUID) ([]models.SubCategory, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	var subs []models.SubCategory
	err := cat.Conn.DB.WithContext(ctx).Where(&models.SubCategory{
		CategoryID: &categoryID,
	}).Find(&subs).Error
	return subs, err
}
