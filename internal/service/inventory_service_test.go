package service

import (
	"context"
	"testing"

	"github.com/MobeenM17/SuswearGProject/internal/repository"
)

func TestListShopItems(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.donor(t, "Donor", "donor@example.com")
	staff := env.staff(t, "Staff", "staff@example.com")
	ctx := context.Background()

	empty, err := env.svc.Inventory.ListShopItems(ctx)
	if err != nil {
		t.Fatalf("ListShopItems failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected an empty list, got %v", empty)
	}

	id := env.submit(t, donor.UserID, "Children")
	env.submit(t, donor.UserID, "Tops") // still pending, not listed
	env.accept(t, staff.UserID, id)

	items, err := env.svc.Inventory.ListShopItems(ctx)
	if err != nil {
		t.Fatalf("ListShopItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	it := items[0]
	if it.DonationID != id || it.Category != "Children" || it.CharityName != "Unknown" {
		t.Errorf("unexpected item %+v", it)
	}
	if len(it.PhotoURLs) != 1 {
		t.Errorf("expected the donation photo, got %v", it.PhotoURLs)
	}
}

func TestReferenceLists(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	charities, err := env.svc.Inventory.ListCharities(ctx)
	if err != nil {
		t.Fatalf("ListCharities failed: %v", err)
	}
	if len(charities) != len(repository.DefaultCharities) {
		t.Errorf("expected %d charities, got %d", len(repository.DefaultCharities), len(charities))
	}

	categories, err := env.svc.Inventory.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != len(repository.DefaultCategories) {
		t.Errorf("expected %d categories, got %d", len(repository.DefaultCategories), len(categories))
	}
}
