package repository

import (
	"encoding/json"
	"log"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/store"
)

type FieldConfigRepo struct {
	store *store.Store
}

func NewFieldConfigRepo(s *store.Store) *FieldConfigRepo {
	return &FieldConfigRepo{store: s}
}

// Load returns the stored configuration and whether one was present.
// Absent or malformed config means the defaults apply.
func (r *FieldConfigRepo) Load() ([]models.Field, bool, error) {
	raw, err := r.store.Read(store.FieldConfigSlot)
	if err != nil {
		return nil, false, err
	}
	if len(raw) == 0 {
		return nil, false, nil
	}
	var fields []models.Field
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Printf("Warning: malformed %s slot, falling back to defaults: %v", store.FieldConfigSlot, err)
		return nil, false, nil
	}
	return fields, true, nil
}

// Save overwrites the configuration wholesale.
func (r *FieldConfigRepo) Save(fields []models.Field) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return r.store.Write(store.FieldConfigSlot, data)
}

// Reset deletes the stored override, reverting to defaults.
func (r *FieldConfigRepo) Reset() error {
	return r.store.Delete(store.FieldConfigSlot)
}
