package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-management/internal/domain/customer"
	"github.com/xenking/order-management/internal/domain/order"
)

// Config controls the demo scenario, loadable from environment variables
// (ORDER_ prefix), flags, or YAML config files.
type Config struct {
	CustomerTier string `default:"vip" usage:"Tier of the sample customer (regular, vip)" flag:"customer-tier" validate:"oneof=regular vip"`
	OrderTier    string `default:"vip" usage:"Tier of the sample order (regular, vip)" flag:"order-tier" validate:"oneof=regular vip"`
	Discount     string `default:"10" usage:"Customer discount percentage" validate:"omitempty,numeric"`
	NoDiscount   bool   `default:"false" usage:"Leave the customer discount unset" flag:"no-discount"`
	PaymentType  string `default:"credit_card" usage:"Payment method (credit_card, cash, check, other)" flag:"payment-type" validate:"oneof=credit_card cash check other"`
}

// LoadConfig loads configuration from flags, environment variables and YAML
// config files, then validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{})
}

func loadConfig(base aconfig.Config) (*Config, error) {
	base.EnvPrefix = "ORDER"
	base.Files = []string{"order-demo.yaml", "/etc/order-demo/config.yaml"}
	base.FileDecoders = map[string]aconfig.FileDecoder{
		".yaml": aconfigyaml.New(),
	}

	var cfg Config
	if err := aconfig.LoaderFor(&cfg, base).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration of the reference scenario.
func DefaultConfig() *Config {
	return &Config{
		CustomerTier: string(customer.TierVIP),
		OrderTier:    string(order.TierVIP),
		Discount:     "10",
		PaymentType:  string(order.PaymentCreditCard),
	}
}

func (c *Config) customerTier() (customer.Tier, error) {
	return customer.ParseTier(c.CustomerTier)
}

func (c *Config) discount() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(c.Discount)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "parse discount %q", c.Discount)
	}
	return v, nil
}
