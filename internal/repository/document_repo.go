package repository

import (
	"encoding/json"
	"log"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/store"
)

type DocumentRepo struct {
	store *store.Store
}

func NewDocumentRepo(s *store.Store) *DocumentRepo {
	return &DocumentRepo{store: s}
}

// List returns every stored document in insertion order. A missing or
// malformed slot reads as an empty collection, never an error for callers.
func (r *DocumentRepo) List() ([]models.Document, error) {
	raw, err := r.store.Read(store.DocumentsSlot)
	if err != nil {
		return nil, err
	}
	return decodeDocuments(raw), nil
}

// Append adds one document by rewriting the whole collection.
func (r *DocumentRepo) Append(doc models.Document) error {
	docs, err := r.List()
	if err != nil {
		return err
	}
	return r.saveAll(append(docs, doc))
}

// Remove deletes a document by id, rewriting the collection without it.
// Returns false when the id was not present.
func (r *DocumentRepo) Remove(id string) (bool, error) {
	docs, err := r.List()
	if err != nil {
		return false, err
	}
	kept := make([]models.Document, 0, len(docs))
	found := false
	for _, d := range docs {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return false, nil
	}
	return true, r.saveAll(kept)
}

// FindByID returns the document or nil when absent.
func (r *DocumentRepo) FindByID(id string) (*models.Document, error) {
	docs, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, nil
}

func (r *DocumentRepo) saveAll(docs []models.Document) error {
	data, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return r.store.Write(store.DocumentsSlot, data)
}

func decodeDocuments(raw []byte) []models.Document {
	if len(raw) == 0 {
		return []models.Document{}
	}
	var docs []models.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		log.Printf("Warning: malformed %s slot, treating as empty: %v", store.DocumentsSlot, err)
		return []models.Document{}
	}
	return docs
}
