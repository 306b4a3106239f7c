// Package billing computes invoice totals. All amounts are in fils
// (hundredths of an AED) so percentage maths never accumulates float drift;
// conversion to decimal happens only at the JSON boundary.
package billing

import (
	"errors"
	"time"
)

// Rates are in basis points of the invoice subtotal.
const (
	VATRateBps          = 500 // 5%, applied to every invoice
	MunicipalityRateBps = 500 // 5%, optional per invoice
	ServiceFeeRateBps   = 500 // 5%, attributed to customer or merchant
)

var (
	ErrNoSelection     = errors.New("selection required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("unit price must be greater than 0")
)

// Line is one invoice line: a catalog item at a quantity.
type Line struct {
	Name      string
	UnitPrice int64 // fils
	Quantity  int
}

// Options are the per-invoice tax and fee toggles.
type Options struct {
	MunicipalityTax bool
	CustomerPaysFee bool
}

// Breakdown is the priced result of an invoice draft. Total is the
// customer-facing amount before any tip: subtotal + VAT + municipality fee,
// plus the service fee only when the customer pays it.
type Breakdown struct {
	Subtotal        int64
	VAT             int64
	MunicipalityFee int64
	ServiceFee      int64
	CustomerPaysFee bool
	Total           int64
}

// Compute prices a set of selected lines under the given toggles.
func Compute(lines []Line, opts Options) (Breakdown, error) {
	if len(lines) == 0 {
		return Breakdown{}, ErrNoSelection
	}

	var subtotal int64
	for _, l := range lines {
		if l.Quantity < 1 {
			return Breakdown{}, ErrInvalidQuantity
		}
		if l.UnitPrice <= 0 {
			return Breakdown{}, ErrInvalidPrice
		}
		subtotal += l.UnitPrice * int64(l.Quantity)
	}

	b := Breakdown{
		Subtotal:        subtotal,
		VAT:             PercentOf(subtotal, VATRateBps),
		ServiceFee:      PercentOf(subtotal, ServiceFeeRateBps),
		CustomerPaysFee: opts.CustomerPaysFee,
	}
	if opts.MunicipalityTax {
		b.MunicipalityFee = PercentOf(subtotal, MunicipalityRateBps)
	}

	b.Total = subtotal + b.VAT + b.MunicipalityFee
	if opts.CustomerPaysFee {
		b.Total += b.ServiceFee
	}
	return b, nil
}

// Tip is either a preset percentage of the pre-tip total or a custom
// absolute amount in fils. The zero value means no tip.
type Tip struct {
	Percent int
	Custom  int64
}

// TipPercentOptions are the preset tip choices offered on the invoice screen.
var TipPercentOptions = []int{10, 25}

// ValidTipPercent reports whether p is one of the preset tip choices.
// Any other tip goes through the custom absolute amount instead.
func ValidTipPercent(p int) bool {
	for _, opt := range TipPercentOptions {
		if p == opt {
			return true
		}
	}
	return false
}

// Amount resolves the tip against a pre-tip total.
func (t Tip) Amount(total int64) int64 {
	if t.Percent > 0 {
		return PercentOf(total, int64(t.Percent)*100)
	}
	if t.Custom > 0 {
		return t.Custom
	}
	return 0
}

// PayableWithTip returns the final amount due: pre-tip total plus tip.
func (b Breakdown) PayableWithTip(t Tip) int64 {
	return b.Total + t.Amount(b.Total)
}

// PercentOf applies a basis-point rate to an amount with half-up rounding.
func PercentOf(amount, bps int64) int64 {
	return (amount*bps + 5000) / 10000
}

// ServiceFeeOn returns the service fee charged on a partial payment amount.
func ServiceFeeOn(amount int64) int64 {
	return PercentOf(amount, ServiceFeeRateBps)
}

// Expiry windows selectable on the invoice creation screen, in hours.
const (
	Expiry24Hours = 24
	Expiry48Hours = 48
	Expiry7Days   = 168
	Expiry30Days  = 720
)

// ExpiryDuration maps an expiry selection to a duration. Unknown values
// report false.
func ExpiryDuration(hours int) (time.Duration, bool) {
	switch hours {
	case Expiry24Hours, Expiry48Hours, Expiry7Days, Expiry30Days:
		return time.Duration(hours) * time.Hour, true
	}
	return 0, false
}

// FromAED converts a decimal AED amount to fils.
func FromAED(v float64) int64 {
	if v >= 0 {
		return int64(v*100 + 0.5)
	}
	return int64(v*100 - 0.5)
}

// ToAED converts fils to a decimal AED amount for display.
func ToAED(v int64) float64 {
	return float64(v) / 100
}
