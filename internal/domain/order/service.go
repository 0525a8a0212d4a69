package order

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xenking/order-management/internal/domain/customer"
	"github.com/xenking/order-management/internal/domain/item"
)

var (
	// ErrInvalidOrderConfiguration matches *InvalidOrderConfigurationError.
	ErrInvalidOrderConfiguration = errors.New("invalid order configuration")
	// ErrMissingDiscount is returned for a VIP order whose customer never
	// had a discount set.
	ErrMissingDiscount = errors.New("customer discount is not set")
)

// InvalidOrderConfigurationError indicates a VIP order for a customer that is
// not VIP.
type InvalidOrderConfigurationError struct {
	OrderTier    Tier
	CustomerTier customer.Tier
}

func (e *InvalidOrderConfigurationError) Error() string {
	return fmt.Sprintf("only VIP customers can make a VIP order: customer tier is %q", e.CustomerTier)
}

// Is reports whether target is ErrInvalidOrderConfiguration.
func (e *InvalidOrderConfigurationError) Is(target error) bool {
	return target == ErrInvalidOrderConfiguration
}

// PlaceRequest holds the input for placing an order.
type PlaceRequest struct {
	Name            string
	DeliveryAddress string
	Items           []*item.Item
	Customer        *customer.Customer
	PaymentType     PaymentType
	Tier            Tier
}

// Service places orders.
type Service struct {
	now   func() time.Time
	newID func() string
}

// NewService creates an order Service using the wall clock and random UUIDs.
func NewService() *Service {
	return &Service{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// New places an order with a default Service.
func New(req PlaceRequest) (*Order, error) {
	return NewService().Place(context.Background(), req)
}

// Place validates the tier combination, computes the total and records every
// item as a customer favorite. On error the customer is left untouched.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	c := req.Customer
	if c == nil {
		return nil, errors.New("customer required")
	}

	if req.Tier == TierVIP && c.Tier() != customer.TierVIP {
		return nil, &InvalidOrderConfigurationError{
			OrderTier:    req.Tier,
			CustomerTier: c.Tier(),
		}
	}

	// Read the discount once so the total and the check agree.
	discount, hasDiscount := c.Discount()
	if req.Tier == TierVIP && !hasDiscount {
		return nil, errors.Wrapf(ErrMissingDiscount, "customer %s", c.ID())
	}

	total := calcSubtotal(req.Items)
	for _, it := range req.Items {
		c.AddFavoriteItem(it)
	}
	if req.Tier == TierVIP {
		total = applyPercentage(total, discount)
	}

	o := &Order{
		id:              s.newID(),
		name:            req.Name,
		deliveryAddress: req.DeliveryAddress,
		items:           slices.Clone(req.Items),
		customer:        c,
		paymentType:     req.PaymentType,
		tier:            req.Tier,
		createdAt:       s.now(),
		totalPrice:      total,
	}

	zctx.From(ctx).Debug("Order placed",
		zap.String("order_id", o.id),
		zap.String("customer_id", c.ID()),
		zap.String("tier", string(o.tier)),
		zap.Int("items", len(o.items)),
		zap.Stringer("total", o.totalPrice),
	)

	return o, nil
}
