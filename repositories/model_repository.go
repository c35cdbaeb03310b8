package repositories

import (
	"carcatalog-api/models"

	"gorm.io/gorm"
)

type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) FindByID(id uint) (*models.Model, error) {
	var model models.Model
	if err := r.db.First(&model, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &model, nil
}

func (r *ModelRepository) FindByName(name string) (*models.Model, error) {
	var model models.Model
	if err := r.db.Where("name = ?", name).First(&model).Error; err != nil {
		return nil, mapError(err)
	}
	return &model, nil
}

func (r *ModelRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Model{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ModelRepository) Create(model *models.Model) error {
	return r.db.Create(model).Error
}

func (r *ModelRepository) Save(model *models.Model) error {
	return r.db.Save(model).Error
}

func (r *ModelRepository) Delete(model *models.Model) error {
	return r.db.Delete(model).Error
}

func (r *ModelRepository) Filter(where Conjunction, page, size int) ([]models.Model, int64, error) {
	var total int64
	query := where.Apply(r.db.Model(&models.Model{}))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Model
	err := query.Order("id ASC").Limit(size).Offset(page * size).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ModelRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Model{}).Count(&count).Error
	return count, err
}
