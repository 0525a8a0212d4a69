package customer

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-management/internal/domain/item"
)

// NoGiftNotice is written by OpenMyGift when the customer holds no gift.
const NoGiftNotice = "Sorry, you don't have any gift to open!"

// Tier classifies a customer for discount eligibility.
type Tier string

const (
	// TierRegular customers pay list price and cannot place VIP orders.
	TierRegular Tier = "regular"
	// TierVIP customers may place VIP orders at their discount.
	TierVIP Tier = "vip"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierRegular || t == TierVIP
}

// ParseTier converts s to a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", errors.Errorf("unknown customer tier: %q", s)
	}
	return t, nil
}

// Gift is a reward a customer can hold and open.
type Gift interface {
	OpenGift()
}

// Params holds the immutable profile of a new customer.
type Params struct {
	FirstName       string
	LastName        string
	Email           string
	DeliveryAddress string
	Tier            Tier
	// Output receives customer notices. Defaults to os.Stdout.
	Output io.Writer
}

// Customer holds a profile, an optional discount percentage, the items the
// customer has ordered and at most one gift.
//
// Discount and gift only move from unset to set; there is no way to clear
// either.
type Customer struct {
	id              string
	firstName       string
	lastName        string
	email           string
	deliveryAddress string
	tier            Tier
	out             io.Writer

	mu        sync.Mutex
	discount  decimal.NullDecimal
	favorites []*item.Item
	gift      Gift
}

// New creates a Customer with a freshly generated ID and no discount.
func New(p Params) *Customer {
	out := p.Output
	if out == nil {
		out = os.Stdout
	}
	return &Customer{
		id:              uuid.New().String(),
		firstName:       p.FirstName,
		lastName:        p.LastName,
		email:           p.Email,
		deliveryAddress: p.DeliveryAddress,
		tier:            p.Tier,
		out:             out,
	}
}

func (c *Customer) ID() string              { return c.id }
func (c *Customer) FirstName() string       { return c.firstName }
func (c *Customer) LastName() string        { return c.lastName }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) DeliveryAddress() string { return c.deliveryAddress }
func (c *Customer) Tier() Tier              { return c.tier }

// Discount returns the discount percentage and whether it was ever set.
func (c *Customer) Discount() (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discount.Decimal, c.discount.Valid
}

// SetDiscount replaces the discount percentage. The value is not bounds
// checked.
func (c *Customer) SetDiscount(percent decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount = decimal.NewNullDecimal(percent)
}

// FavoriteItems returns a copy of the favorites in insertion order.
func (c *Customer) FavoriteItems() []*item.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.favorites)
}

// HasFavorite reports whether it is among the favorites.
func (c *Customer) HasFavorite(it *item.Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Contains(c.favorites, it)
}

// AddFavoriteItem appends it unless it is already a favorite.
func (c *Customer) AddFavoriteItem(it *item.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.favorites, it) {
		c.favorites = append(c.favorites, it)
	}
}

// RemoveFavoriteItem removes it if present.
func (c *Customer) RemoveFavoriteItem(it *item.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.Index(c.favorites, it); i >= 0 {
		c.favorites = slices.Delete(c.favorites, i, i+1)
	}
}

// Gift returns the held gift, or nil.
func (c *Customer) Gift() Gift {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gift
}

// TakeGift replaces any held gift with g. A nil gift is ignored.
func (c *Customer) TakeGift(g Gift) {
	if g == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gift = g
}

// OpenMyGift opens the held gift, or writes NoGiftNotice when there is none.
// The gift is kept after opening.
func (c *Customer) OpenMyGift() {
	g := c.Gift()
	if g == nil {
		fmt.Fprintln(c.out, NoGiftNotice)
		return
	}
	g.OpenGift()
}
