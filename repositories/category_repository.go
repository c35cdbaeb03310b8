package repositories

import (
	"carcatalog-api/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(category *models.Category) error {
	return r.db.Delete(category).Error
}

func (r *CategoryRepository) Filter(where Conjunction, page, size int) ([]models.Category, int64, error) {
	var total int64
	query := where.Apply(r.db.Model(&models.Category{}))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Category
	err := query.Order("id ASC").Limit(size).Offset(page * size).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
