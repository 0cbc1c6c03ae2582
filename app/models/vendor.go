package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acme/acme/config"
	"github.com/acme/acme/pkg/logger"
	"github.com/acme/acme/pkg/metrics"
	"github.com/acme/acme/pkg/notification"
	"github.com/acme/acme/pkg/result"
)

const (
	orderSubject        = "New Order"
	DefaultInstructions = "Standard delivery"
)

var (
	ErrNilProduct         = errors.New("product is required")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrDeliverByNotFuture = errors.New("deliver-by must be in the future")
)

// IncludeAddress controls the "WithAddress" order line.
type IncludeAddress uint8

const (
	IncludeAddressYes IncludeAddress = iota
	IncludeAddressNo
)

// SendCopy controls the "With Copy" order line.
type SendCopy uint8

const (
	SendCopyYes SendCopy = iota
	SendCopyNo
)

// Vendor is a supplier we purchase inventory from. Two vendors are equal
// when ID, CompanyName and Email match; see Equal.
type Vendor struct {
	ID          int
	CompanyName string
	Email       string

	// Notifier defaults to notification.Default() when nil.
	Notifier notification.Sender
	// Now defaults to time.Now when nil.
	Now func() time.Time
}

// Equal reports whether v and other share ID, CompanyName and Email.
func (v *Vendor) Equal(other *Vendor) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.ID == other.ID &&
		v.CompanyName == other.CompanyName &&
		v.Email == other.Email
}

func (v *Vendor) String() string {
	return fmt.Sprintf("Vendor: %s (%d)", v.CompanyName, v.ID)
}

// ─── Order options ────────────────────────────────────────────────────────────

type orderOptions struct {
	deliverBy    *time.Time
	instructions string
}

// OrderOption customizes PlaceOrder.
type OrderOption func(*orderOptions)

// DeliverBy requests delivery by t. t must be after the call time.
func DeliverBy(t time.Time) OrderOption {
	return func(o *orderOptions) { o.deliverBy = &t }
}

// Instructions replaces the default "Standard delivery" line. An empty
// string omits the line.
func Instructions(s string) OrderOption {
	return func(o *orderOptions) { o.instructions = s }
}

// ─── Ordering ─────────────────────────────────────────────────────────────────

// PlaceOrder sends a purchase order for quantity units of product. The
// result reports whether the notification was accepted; its Message is the
// order text either way.
func (v *Vendor) PlaceOrder(product *Product, quantity int, opts ...OrderOption) (result.OperationResult[bool], error) {
	o := orderOptions{instructions: DefaultInstructions}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkOrder(product, quantity); err != nil {
		return result.OperationResult[bool]{}, err
	}
	if o.deliverBy != nil && !o.deliverBy.After(v.now()) {
		return result.OperationResult[bool]{}, fmt.Errorf("models: place order: %w", ErrDeliverByNotFuture)
	}

	var b strings.Builder
	b.WriteString(orderHeader(product, quantity))
	if o.deliverBy != nil {
		b.WriteString("\nDeliver By: " + o.deliverBy.Format(config.OrderDateLayout()))
	}
	if o.instructions != "" {
		b.WriteString("\nInstructions: " + o.instructions)
	}

	return v.sendOrder("deliver_by", b.String()), nil
}

// PlaceOrderWithFlags sends a purchase order that may note the shipping
// address and a customer copy.
func (v *Vendor) PlaceOrderWithFlags(product *Product, quantity int, includeAddress IncludeAddress, sendCopy SendCopy) (result.OperationResult[bool], error) {
	if err := checkOrder(product, quantity); err != nil {
		return result.OperationResult[bool]{}, err
	}

	text := orderHeader(product, quantity)
	if includeAddress == IncludeAddressYes {
		text += "\nWithAddress"
	}
	// sendCopy is matched against IncludeAddressYes by value; both Yes
	// members share the same representation.
	if uint8(sendCopy) == uint8(IncludeAddressYes) {
		text += "\nWith Copy"
	}

	return v.sendOrder("flags", text), nil
}

// SendWelcomeEmail greets the vendor and returns the raw confirmation.
func (v *Vendor) SendWelcomeEmail(message string) string {
	subject := strings.TrimSpace("Hello " + v.CompanyName)
	return notification.Dispatch(v.notifier(), subject, message, v.Email)
}

func checkOrder(product *Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("models: place order: %w", ErrNilProduct)
	}
	if quantity <= 0 {
		return fmt.Errorf("models: place order: %w (got %d)", ErrInvalidQuantity, quantity)
	}
	return nil
}

func orderHeader(product *Product, quantity int) string {
	return fmt.Sprintf("Order from Acme, Inc\nProduct: %s\nQuantity: %d", product.Code(), quantity)
}

func (v *Vendor) sendOrder(variant, text string) result.OperationResult[bool] {
	conf := notification.Dispatch(v.notifier(), orderSubject, text, v.Email)
	ok := notification.Accepted(conf)

	metrics.RecordOrder(variant, ok)
	logger.Info("models: order placed",
		"vendor", v.ID, "variant", variant, "success", ok)

	return result.New(ok, text)
}

func (v *Vendor) notifier() notification.Sender {
	if v.Notifier != nil {
		return v.Notifier
	}
	return notification.Default()
}

func (v *Vendor) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}
