package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// ModelService owns the model name registry. Same contract as
// MakeService.
type ModelService struct {
	repo   *repositories.ModelRepository
	logger *zap.Logger
}

func NewModelService(repo *repositories.ModelRepository, logger *zap.Logger) *ModelService {
	return &ModelService{repo: repo, logger: logger}
}

func (s *ModelService) FindByID(id uint) (*models.Model, error) {
	model, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("model not found", zap.Uint("id", id))
		return nil, err
	}
	return model, nil
}

func (s *ModelService) FindByNameOrCreate(name string) (*models.Model, error) {
	model, err := s.repo.FindByName(name)
	if err == nil {
		return model, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	model = &models.Model{Name: name}
	if err := s.repo.Create(model); err != nil {
		return nil, err
	}
	s.logger.Info("created model", zap.String("name", name))
	return model, nil
}

func (s *ModelService) Create(name string) (*models.Model, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: model name is required", repositories.ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("model already exists", zap.String("name", name))
		return nil, fmt.Errorf("%w: model %q", repositories.ErrDuplicateName, name)
	}

	model := &models.Model{Name: name}
	if err := s.repo.Create(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *ModelService) Update(id uint, name string) (*models.Model, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: model name is required", repositories.ErrInvalidArgument)
	}

	model, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("model not found", zap.Uint("id", id))
		return nil, err
	}

	model.Name = name
	if err := s.repo.Save(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *ModelService) Delete(id uint) error {
	model, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("model not found", zap.Uint("id", id))
		return err
	}
	return s.repo.Delete(model)
}

func (s *ModelService) Filter(name string, page, size int) ([]models.Model, int64, error) {
	var where repositories.Conjunction
	if name != "" {
		where = where.And("name", name)
	}
	return s.repo.Filter(where, page, size)
}
