package repositories

import (
	"carcatalog-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) FindByID(id uint) (*models.Car, error) {
	var car models.Car
	err := r.db.Preload("Make").Preload("Model").Preload("Category").First(&car, id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &car, nil
}

// Create inserts the car row. The referenced make, model and category
// rows must already exist; their structs on the car are not written.
func (r *CarRepository) Create(car *models.Car) error {
	return r.db.Omit(clause.Associations).Create(car).Error
}

// Save persists the car's own columns. Associated rows are managed
// through their own repositories.
func (r *CarRepository) Save(car *models.Car) error {
	return r.db.Omit(clause.Associations).Save(car).Error
}

func (r *CarRepository) Delete(car *models.Car) error {
	return r.db.Delete(car).Error
}

func (r *CarRepository) ExistsByObjectID(objectID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Car{}).Where("object_id = ?", objectID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CarRepository) FindByMakeID(makeID uint) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.Where("make_id = ?", makeID).Find(&cars).Error
	return cars, err
}

func (r *CarRepository) FindByModelID(modelID uint) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.Where("model_id = ?", modelID).Find(&cars).Error
	return cars, err
}

func (r *CarRepository) FindByCategoryID(categoryID uint) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.Where("category_id = ?", categoryID).Find(&cars).Error
	return cars, err
}

// Filter runs the catalog query: cars joined to their reference tables
// so the conjunction can constrain the name columns, ordered by
// cars.id ascending for stable pagination. Returns the page slice and
// the total match count.
func (r *CarRepository) Filter(where Conjunction, page, size int) ([]models.Car, int64, error) {
	base := r.db.Model(&models.Car{}).
		Joins("JOIN makes ON makes.id = cars.make_id").
		Joins("JOIN models ON models.id = cars.model_id").
		Joins("JOIN categories ON categories.id = cars.category_id")
	base = where.Apply(base)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cars []models.Car
	err := base.Order("cars.id ASC").
		Limit(size).
		Offset(page * size).
		Preload("Make").Preload("Model").Preload("Category").
		Find(&cars).Error
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *CarRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Car{}).Count(&count).Error
	return count, err
}
