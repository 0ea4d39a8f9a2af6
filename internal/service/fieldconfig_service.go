package service

import (
	"errors"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/repository"
)

type FieldConfigService struct {
	cfg *repository.FieldConfigRepo
}

func NewFieldConfigService(cfg *repository.FieldConfigRepo) *FieldConfigService {
	return &FieldConfigService{cfg: cfg}
}

// Effective returns the stored configuration, or the defaults when none is
// stored.
func (s *FieldConfigService) Effective() ([]models.Field, error) {
	fields, present, err := s.cfg.Load()
	if err != nil {
		return nil, err
	}
	if !present {
		return models.DefaultFields(), nil
	}
	return fields, nil
}

// Save overwrites the configuration wholesale, re-normalized so a hidden
// field can never arrive marked required.
func (s *FieldConfigService) Save(fields []models.Field) ([]models.Field, error) {
	if len(fields) == 0 {
		return nil, errors.New("at least one field is required")
	}
	normalized := models.Normalize(fields)
	if err := s.cfg.Save(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Toggle flips one property of one field and persists the result.
func (s *FieldConfigService) Toggle(fieldID, property string, value bool) ([]models.Field, error) {
	if property != "visible" && property != "required" {
		return nil, errors.New("property must be visible or required")
	}
	fields, err := s.Effective()
	if err != nil {
		return nil, err
	}
	known := false
	for _, f := range fields {
		if f.ID == fieldID {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrNotFound
	}
	updated := models.Toggle(fields, fieldID, property, value)
	if err := s.cfg.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reset deletes the stored override and reports the defaults now in effect.
func (s *FieldConfigService) Reset() ([]models.Field, error) {
	if err := s.cfg.Reset(); err != nil {
		return nil, err
	}
	return models.DefaultFields(), nil
}
