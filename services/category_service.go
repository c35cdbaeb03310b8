package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// CategoryService owns the category name registry. Same contract as
// MakeService.
type CategoryService struct {
	repo   *repositories.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo *repositories.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) FindByID(id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("category not found", zap.Uint("id", id))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindByNameOrCreate(name string) (*models.Category, error) {
	category, err := s.repo.FindByName(name)
	if err == nil {
		return category, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	category = &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	s.logger.Info("created category", zap.String("name", name))
	return category, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", repositories.ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("category already exists", zap.String("name", name))
		return nil, fmt.Errorf("%w: category %q", repositories.ErrDuplicateName, name)
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", repositories.ErrInvalidArgument)
	}

	category, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("category not found", zap.Uint("id", id))
		return nil, err
	}

	category.Name = name
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("category not found", zap.Uint("id", id))
		return err
	}
	return s.repo.Delete(category)
}

func (s *CategoryService) Filter(name string, page, size int) ([]models.Category, int64, error) {
	var where repositories.Conjunction
	if name != "" {
		where = where.And("name", name)
	}
	return s.repo.Filter(where, page, size)
}
