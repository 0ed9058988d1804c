package api

import (
	"github.com/shopspring/decimal"
	"github.com/terraincognita07/carty/internal/models"
)

type itemResponse struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	IsPurchased bool            `json:"is_purchased"`
}

type listResponse struct {
	Name                string          `json:"name"`
	Slug                string          `json:"slug"`
	Description         string          `json:"description"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	TotalPricePurchased decimal.Decimal `json:"total_price_purchased"`
	TotalPricePending   decimal.Decimal `json:"total_price_pending"`
	TotalItems          int             `json:"total_items"`
	PurchasedItems      int             `json:"purchased_items"`
	PendingItems        int             `json:"pending_items"`
	Items               []itemResponse  `json:"items"`
}

func newItemResponse(item models.Item) itemResponse {
	return itemResponse{
		Name:        item.Name,
		Slug:        item.Slug,
		Price:       item.Price,
		Quantity:    item.Quantity,
		TotalPrice:  item.TotalPrice(),
		IsPurchased: item.IsPurchased,
	}
}

func newListResponse(list models.ShoppingList) listResponse {
	items := make([]itemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, newItemResponse(item))
	}

	return listResponse{
		Name:                list.Name,
		Slug:                list.Slug,
		Description:         list.Description,
		TotalPrice:          list.TotalPrice(),
		TotalPricePurchased: list.TotalPricePurchased(),
		TotalPricePending:   list.TotalPricePending(),
		TotalItems:          list.TotalItems(),
		PurchasedItems:      list.PurchasedItems(),
		PendingItems:        list.PendingItems(),
		Items:               items,
	}
}
