package models

import "github.com/google/uuid"

// KitItems holds the line items of a kit. A product id appears at most once:
// adding one that is already present merges quantities instead of appending a
// second row.
type KitItems []KitItem

// Add returns the items with the given line merged in. If the product is
// already present its quantity is incremented in place and the stored unit
// price and name are kept; otherwise a new line is appended.
func (items KitItems) Add(productID uuid.UUID, productName string, quantity int, unitPrice float64) KitItems {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity

			return items
		}
	}

	return append(items, KitItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       unitPrice,
	})
}

// Remove drops the line for the given product. No-op when absent.
func (items KitItems) Remove(productID uuid.UUID) KitItems {
	for i := range items {
		if items[i].ProductID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}

	return items
}

// Total is the authoritative kit price: sum of unit price times quantity over
// all lines. The persisted kit price is a cache of this value.
func (items KitItems) Total() float64 {
	var total float64

	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}
