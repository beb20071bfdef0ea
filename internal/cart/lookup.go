package cart

import (
	"strconv"

	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// Lookup resolves a scanned or typed code against an already-fetched catalog.
// Barcode equality wins; when no barcode matches and the code is numeric, it
// falls back to an id match. Pure function, no side effects.
func Lookup(code string, catalog []model.Product) (model.Product, error) {
	for _, p := range catalog {
		if p.Barcode != "" && p.Barcode == code {
			return p, nil
		}
	}
	if id, err := strconv.ParseInt(code, 10, 64); err == nil {
		return FindByID(id, catalog)
	}
	return model.Product{}, ErrNotFound
}

// FindByID returns the catalog entry with the given id, or ErrNotFound.
func FindByID(id int64, catalog []model.Product) (model.Product, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}
