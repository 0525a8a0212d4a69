package item

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is an immutable, priced line item that can be ordered or kept as a
// customer favorite. Items are compared by identity.
type Item struct {
	id    string
	name  string
	price decimal.Decimal
}

// New creates an Item with a freshly generated ID. The price is stored as
// given.
func New(name string, price decimal.Decimal) *Item {
	return &Item{
		id:    uuid.New().String(),
		name:  name,
		price: price,
	}
}

func (i *Item) ID() string { return i.id }

func (i *Item) Name() string { return i.name }

func (i *Item) Price() decimal.Decimal { return i.price }
