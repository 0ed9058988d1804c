package db

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/carty/internal/models"
	"gorm.io/gorm"
)

func TestFindBySlugForUserScopesToOwner(t *testing.T) {
	database := openTestDB(t)
	repo := NewListRepository(database)
	owner := createTestUser(t, database, "owner@example.com")
	stranger := createTestUser(t, database, "stranger@example.com")

	list := models.ShoppingList{Name: "Groceries", Slug: "groceries", UserID: owner.ID}
	if err := repo.Create(&list); err != nil {
		t.Fatalf("create list: %v", err)
	}

	if _, err := repo.FindBySlugForUser(owner.ID, "groceries"); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := repo.FindBySlugForUser(stranger.ID, "groceries")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected a foreign list to be invisible, got %v", err)
	}
}

func TestListAggregatesSplitByPurchaseState(t *testing.T) {
	database := openTestDB(t)
	repo := NewListRepository(database)
	owner := createTestUser(t, database, "owner@example.com")

	list := models.ShoppingList{Name: "Groceries", Slug: "groceries", UserID: owner.ID}
	if err := repo.Create(&list); err != nil {
		t.Fatalf("create list: %v", err)
	}

	items := []models.Item{
		{Name: "Milk", Slug: "milk", Quantity: 2, Price: decimal.RequireFromString("1.50"), IsPurchased: true, ListID: list.ID},
		{Name: "Eggs", Slug: "eggs", Quantity: 1, Price: decimal.RequireFromString("3.20"), ListID: list.ID},
		{Name: "Bread", Slug: "bread", Quantity: 3, Price: decimal.RequireFromString("2.00"), ListID: list.ID},
	}
	for index := range items {
		if err := database.Create(&items[index]).Error; err != nil {
			t.Fatalf("create item %s: %v", items[index].Name, err)
		}
	}

	loaded, err := repo.FindBySlugForUser(owner.ID, "groceries")
	if err != nil {
		t.Fatalf("load list: %v", err)
	}

	total := loaded.TotalPrice()
	split := loaded.TotalPricePurchased().Add(loaded.TotalPricePending())
	if !total.Equal(split) {
		t.Fatalf("total %s != purchased+pending %s", total, split)
	}
	if !total.Equal(decimal.RequireFromString("12.20")) {
		t.Fatalf("TotalPrice() = %s, want 12.20", total)
	}
	if loaded.TotalItems() != loaded.PurchasedItems()+loaded.PendingItems() {
		t.Fatalf("item counts do not add up: %d != %d + %d",
			loaded.TotalItems(), loaded.PurchasedItems(), loaded.PendingItems())
	}
	if loaded.PurchasedItems() != 1 || loaded.PendingItems() != 2 {
		t.Fatalf("counts = %d purchased / %d pending, want 1/2",
			loaded.PurchasedItems(), loaded.PendingItems())
	}
}

func TestListItemsOrderPendingFirstNewestFirst(t *testing.T) {
	database := openTestDB(t)
	repo := NewListRepository(database)
	owner := createTestUser(t, database, "owner@example.com")

	list := models.ShoppingList{Name: "Groceries", Slug: "groceries", UserID: owner.ID}
	if err := repo.Create(&list); err != nil {
		t.Fatalf("create list: %v", err)
	}

	names := []struct {
		name      string
		purchased bool
	}{
		{"First", false},
		{"Second", true},
		{"Third", false},
	}
	for _, entry := range names {
		item := models.Item{
			Name: entry.name, Slug: "item-" + entry.name, Quantity: 1,
			Price: decimal.RequireFromString("1.00"), IsPurchased: entry.purchased, ListID: list.ID,
		}
		if err := database.Create(&item).Error; err != nil {
			t.Fatalf("create item %s: %v", entry.name, err)
		}
	}

	loaded, err := repo.FindBySlugForUser(owner.ID, "groceries")
	if err != nil {
		t.Fatalf("load list: %v", err)
	}

	got := make([]string, 0, len(loaded.Items))
	for _, item := range loaded.Items {
		got = append(got, item.Name)
	}
	want := []string{"Third", "First", "Second"}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("item order = %v, want %v", got, want)
		}
	}
}

func TestDeleteListRemovesItems(t *testing.T) {
	database := openTestDB(t)
	repo := NewListRepository(database)
	owner := createTestUser(t, database, "owner@example.com")

	list := models.ShoppingList{Name: "Groceries", Slug: "groceries", UserID: owner.ID}
	if err := repo.Create(&list); err != nil {
		t.Fatalf("create list: %v", err)
	}
	item := models.Item{
		Name: "Milk", Slug: "milk", Quantity: 1,
		Price: decimal.RequireFromString("1.50"), ListID: list.ID,
	}
	if err := database.Create(&item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := repo.Delete(&list); err != nil {
		t.Fatalf("delete list: %v", err)
	}

	var orphans int64
	if err := database.Model(&models.Item{}).Where("list_id = ?", list.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count orphaned items: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected cascade delete to remove items, %d left", orphans)
	}
}
