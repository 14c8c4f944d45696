package repository

import (
	"context"
	"fmt"
)

// DefaultCategories drive both donation categorisation and the impact lookup table
var DefaultCategories = []string{
	"Clothing",
	"Men",
	"Women",
	"Children",
	"Coats & Jackets",
	"Tops",
}

// DefaultCharities partner charities donations can be shipped to
var DefaultCharities = []string{
	"Community Wardrobe",
	"Winter Coat Appeal",
	"Children's Clothing Bank",
	"Homeless Outreach Trust",
}

// SeedReferenceData inserts missing categories and charities; safe to rerun
func (r *Repository) SeedReferenceData(ctx context.Context) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		for _, name := range DefaultCategories {
			if _, err := tx.Category.Ensure(ctx, name); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
		}
		for _, name := range DefaultCharities {
			if _, err := tx.Charity.Ensure(ctx, name); err != nil {
				return fmt.Errorf("seed charity %q: %w", name, err)
			}
		}
		return nil
	})
}
