package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingList aggregates (totals and counts) are computed from the loaded
// item collection, never stored.
type ShoppingList struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	UserID      uint   `gorm:"not null;index"`
	Items       []Item `gorm:"foreignKey:ListID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (list ShoppingList) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range list.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (list ShoppingList) TotalPricePurchased() decimal.Decimal {
	total := decimal.Zero
	for _, item := range list.Items {
		if item.IsPurchased {
			total = total.Add(item.TotalPrice())
		}
	}
	return total
}

func (list ShoppingList) TotalPricePending() decimal.Decimal {
	total := decimal.Zero
	for _, item := range list.Items {
		if !item.IsPurchased {
			total = total.Add(item.TotalPrice())
		}
	}
	return total
}

func (list ShoppingList) TotalItems() int {
	return len(list.Items)
}

func (list ShoppingList) PurchasedItems() int {
	count := 0
	for _, item := range list.Items {
		if item.IsPurchased {
			count++
		}
	}
	return count
}

func (list ShoppingList) PendingItems() int {
	return list.TotalItems() - list.PurchasedItems()
}
