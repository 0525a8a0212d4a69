package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/order-management/internal/domain/customer"
	"github.com/xenking/order-management/internal/domain/gift"
	"github.com/xenking/order-management/internal/domain/item"
	"github.com/xenking/order-management/internal/domain/order"
)

// TotalLinePrefix starts the line printed with the sample order total.
const TotalLinePrefix = "Prix total pour la commande1: "

// Result holds what the scenario built.
type Result struct {
	Customer *customer.Customer
	Order    *order.Order
}

// RunScenario places the sample order, prints its total to w, then gives the
// customer a gift and opens it.
func RunScenario(ctx context.Context, w io.Writer, cfg *Config) (*Result, error) {
	lg := zctx.From(ctx)

	tier, err := cfg.customerTier()
	if err != nil {
		return nil, err
	}

	items := []*item.Item{
		item.New("Laptop", decimal.NewFromFloat(1000.0)),
		item.New("Mobile Phone", decimal.NewFromFloat(500.0)),
	}

	c := customer.New(customer.Params{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		DeliveryAddress: "123 Street",
		Tier:            tier,
		Output:          w,
	})
	if !cfg.NoDiscount {
		percent, err := cfg.discount()
		if err != nil {
			return nil, err
		}
		c.SetDiscount(percent)
	}

	o, err := order.NewService().Place(ctx, order.PlaceRequest{
		Name:            "Commande de John",
		DeliveryAddress: "123 Rue",
		Items:           items,
		Customer:        c,
		PaymentType:     order.PaymentType(cfg.PaymentType),
		Tier:            order.Tier(cfg.OrderTier),
	})
	if err != nil {
		return nil, errors.Wrap(err, "place order")
	}
	lg.Info("Sample order placed",
		zap.String("order_id", o.ID()),
		zap.Stringer("total", o.TotalPrice()),
	)

	fmt.Fprintln(w, TotalLinePrefix+FormatAmount(o.TotalPrice()))

	c.TakeGift(gift.New(w))
	c.OpenMyGift()

	return &Result{Customer: c, Order: o}, nil
}

// FormatAmount renders v with at least one fractional digit, so whole
// amounts print as "1350.0".
func FormatAmount(v decimal.Decimal) string {
	s := v.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
