package order

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/order-management/internal/domain/customer"
	"github.com/xenking/order-management/internal/domain/item"
)

// PaymentType enumerates accepted payment methods.
type PaymentType string

const (
	PaymentCreditCard PaymentType = "credit_card"
	PaymentCash       PaymentType = "cash"
	PaymentCheck      PaymentType = "check"
	PaymentOther      PaymentType = "other"
)

// Tier classifies an order. VIP orders are discounted and may only be
// placed by VIP customers.
type Tier string

const (
	TierRegular Tier = "regular"
	TierVIP     Tier = "vip"
)

// Order is a placed order. All fields are fixed at construction.
type Order struct {
	id              string
	name            string
	deliveryAddress string
	items           []*item.Item
	customer        *customer.Customer
	paymentType     PaymentType
	tier            Tier
	createdAt       time.Time
	totalPrice      decimal.Decimal
}

func (o *Order) ID() string                   { return o.id }
func (o *Order) Name() string                 { return o.name }
func (o *Order) DeliveryAddress() string      { return o.deliveryAddress }
func (o *Order) Customer() *customer.Customer { return o.customer }
func (o *Order) PaymentType() PaymentType     { return o.paymentType }
func (o *Order) Tier() Tier                   { return o.tier }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

// Items returns a copy of the ordered items, duplicates included.
func (o *Order) Items() []*item.Item { return slices.Clone(o.items) }

// TotalPrice returns the item sum, less the customer discount for VIP orders.
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }
