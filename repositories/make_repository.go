package repositories

import (
	"carcatalog-api/models"

	"gorm.io/gorm"
)

type MakeRepository struct {
	db *gorm.DB
}

func NewMakeRepository(db *gorm.DB) *MakeRepository {
	return &MakeRepository{db: db}
}

func (r *MakeRepository) FindByID(id uint) (*models.Make, error) {
	var make models.Make
	if err := r.db.First(&make, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &make, nil
}

func (r *MakeRepository) FindByName(name string) (*models.Make, error) {
	var make models.Make
	if err := r.db.Where("name = ?", name).First(&make).Error; err != nil {
		return nil, mapError(err)
	}
	return &make, nil
}

func (r *MakeRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Make{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MakeRepository) Create(make *models.Make) error {
	return r.db.Create(make).Error
}

func (r *MakeRepository) Save(make *models.Make) error {
	return r.db.Save(make).Error
}

func (r *MakeRepository) Delete(make *models.Make) error {
	return r.db.Delete(make).Error
}

// Filter returns a page of makes ordered by id ascending, optionally
// restricted to an exact name match, plus the total match count.
func (r *MakeRepository) Filter(where Conjunction, page, size int) ([]models.Make, int64, error) {
	var total int64
	query := where.Apply(r.db.Model(&models.Make{}))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var makes []models.Make
	err := query.Order("id ASC").Limit(size).Offset(page * size).Find(&makes).Error
	if err != nil {
		return nil, 0, err
	}
	return makes, total, nil
}

func (r *MakeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Make{}).Count(&count).Error
	return count, err
}
