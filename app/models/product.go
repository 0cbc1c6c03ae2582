package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/acme/acme/pkg/logger"
	"github.com/acme/acme/pkg/notification"
)

const (
	DefaultCategory = "Tools"

	minNameLength = 3
	maxNameLength = 20

	helloRecipient = "sales@abc.com"
)

// Product is an item carried in inventory.
//
// Name assignments are validated softly: a rejected name is discarded and
// the reason is kept in ValidationMessage instead of being returned.
type Product struct {
	ID               int
	Description      string
	Cost             decimal.Decimal
	AvailabilityDate *time.Time
	Category         string
	SequenceNumber   int

	// Notifier and Actions default to notification.Default() and
	// logger.Actions when nil.
	Notifier notification.Sender
	Actions  logger.ActionLogger

	name              string
	nameSet           bool
	validationMessage string
	vendor            *Vendor
}

// NewBlankProduct returns a product with only the defaults applied.
func NewBlankProduct() *Product {
	logger.Debug("models: product instance created")
	return &Product{
		Category:       DefaultCategory,
		SequenceNumber: 1,
	}
}

// NewProduct returns a product with defaults, then assigns id, name and
// description. An invalid name leaves the product unnamed.
func NewProduct(id int, name, description string) *Product {
	p := NewBlankProduct()
	p.SetName(name)
	p.Description = description
	p.ID = id
	logger.Debug("models: product instance named", "name", p.Name())
	return p
}

// Name returns the trimmed stored name, or "" if none was ever accepted.
func (p *Product) Name() string {
	return strings.TrimSpace(p.name)
}

// HasName reports whether any name has been accepted.
func (p *Product) HasName() bool { return p.nameSet }

// SetName stores name if its trimmed length is 3 to 20 characters.
// Otherwise the current name is kept and ValidationMessage is set.
// A successful assignment does not clear an earlier message.
func (p *Product) SetName(name string) {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n < minNameLength:
		p.validationMessage = fmt.Sprintf("Product Name must be at least %d characters", minNameLength)
	case n > maxNameLength:
		p.validationMessage = fmt.Sprintf("Product Name cannot be more than %d characters", maxNameLength)
	default:
		p.name = name
		p.nameSet = true
	}
}

// ValidationMessage returns the last name-validation failure.
func (p *Product) ValidationMessage() string { return p.validationMessage }

// Code is "{Category}-{SequenceNumber}".
func (p *Product) Code() string {
	return fmt.Sprintf("%s-%d", p.Category, p.SequenceNumber)
}

// Vendor returns the product's vendor, creating and remembering an empty
// one if none was set. Use HasVendor to check without creating.
func (p *Product) Vendor() *Vendor {
	if p.vendor == nil {
		p.vendor = &Vendor{}
	}
	return p.vendor
}

// SetVendor replaces the product's vendor.
func (p *Product) SetVendor(v *Vendor) { p.vendor = v }

// HasVendor reports whether a vendor is set.
func (p *Product) HasVendor() bool { return p.vendor != nil }

// CalculateSuggestedPrice returns Cost marked up by markupPercent percent.
func (p *Product) CalculateSuggestedPrice(markupPercent decimal.Decimal) decimal.Decimal {
	// Shift(-2) divides by 100 without rounding.
	return p.Cost.Add(p.Cost.Mul(markupPercent).Shift(-2))
}

// SayHello announces the product to sales and returns a greeting.
func (p *Product) SayHello() string {
	notification.Dispatch(p.notifier(), "New Product", p.Name(), helloRecipient)
	p.actions().LogAction("saying hello")
	return fmt.Sprintf("Hello %s (%d): %s", p.Name(), p.ID, p.Description)
}

func (p *Product) String() string {
	return fmt.Sprintf("%s (%d)", p.Name(), p.ID)
}

func (p *Product) notifier() notification.Sender {
	if p.Notifier != nil {
		return p.Notifier
	}
	return notification.Default()
}

func (p *Product) actions() logger.ActionLogger {
	if p.Actions != nil {
		return p.Actions
	}
	return logger.Actions
}
