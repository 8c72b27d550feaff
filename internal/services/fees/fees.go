// Package fees derives the tax, MDR, charges and profit figures for a
// debit transaction from a fixed per-channel rate table.
package fees

import (
	"errors"
	"math"

	"github.com/SagarP2/Billing-Software/internal/models"
)

var (
	ErrUnknownPOSType = errors.New("unknown POS type")
	ErrUnpairedRate   = errors.New("tax rate not available for POS type")
)

// RatePair couples a selectable tax rate with the MDR rate it implies.
type RatePair struct {
	Tax float64
	MDR float64
}

// ratePairs is the fixed rate menu per point-of-sale channel. Order
// matters: the first pair matching a tax rate decides the MDR rate.
var ratePairs = map[string][]RatePair{
	models.POSTypeMP: {
		{Tax: 3.50, MDR: 1.50},
		{Tax: 3.00, MDR: 2.00},
		{Tax: 2.80, MDR: 2.00},
		{Tax: 2.00, MDR: 1.50},
	},
	models.POSTypePH: {
		{Tax: 3.50, MDR: 1.50},
		{Tax: 2.80, MDR: 2.00},
		{Tax: 1.90, MDR: 1.50},
	},
	models.POSTypeMOS: {
		{Tax: 2.80, MDR: 2.00},
		{Tax: 2.50, MDR: 2.00},
		{Tax: 2.00, MDR: 1.50},
		{Tax: 1.80, MDR: 1.50},
	},
}

// Breakdown is the derived fee set, each figure rounded to the cent.
type Breakdown struct {
	Tax     float64 `json:"tax"`
	MDR     float64 `json:"mdr"`
	Charges float64 `json:"charges"`
	Profit  float64 `json:"profit"`
}

// normalize maps the persisted INJ channel name onto the PH rate menu;
// the two name the same channel.
func normalize(posType string) string {
	if posType == models.POSTypeINJ {
		return models.POSTypePH
	}
	return posType
}

// TaxRates lists the selectable tax rates for a channel, in menu order.
func TaxRates(posType string) ([]float64, error) {
	pairs, ok := ratePairs[normalize(posType)]
	if !ok {
		return nil, ErrUnknownPOSType
	}
	rates := make([]float64, len(pairs))
	for i, p := range pairs {
		rates[i] = p.Tax
	}
	return rates, nil
}

// MDRRate returns the MDR rate paired with taxRate under the channel's
// menu: the first matching pair wins.
func MDRRate(posType string, taxRate float64) (float64, error) {
	pairs, ok := ratePairs[normalize(posType)]
	if !ok {
		return 0, ErrUnknownPOSType
	}
	for _, p := range pairs {
		if sameRate(p.Tax, taxRate) {
			return p.MDR, nil
		}
	}
	return 0, ErrUnpairedRate
}

// Compute derives the fee breakdown for a debit transaction:
//
//	tax     = amount * taxRate / 100
//	mdr     = amount * mdrRate / 100
//	charges = mdr
//	profit  = tax - mdr
func Compute(amount float64, posType string, taxRate float64) (Breakdown, error) {
	mdrRate, err := MDRRate(posType, taxRate)
	if err != nil {
		return Breakdown{}, err
	}
	tax := amount * taxRate / 100
	mdr := amount * mdrRate / 100
	return Breakdown{
		Tax:     round2(tax),
		MDR:     round2(mdr),
		Charges: round2(mdr),
		Profit:  round2(tax - mdr),
	}, nil
}

// ForTransaction applies the debit-only rule: credits carry no derived
// fee figures and the result is nil.
func ForTransaction(transactionType string, amount float64, posType string, taxRate float64) (*Breakdown, error) {
	if transactionType != models.TransactionTypeDebit {
		return nil, nil
	}
	b, err := Compute(amount, posType, taxRate)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// round2 rounds half away from zero at the cent.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sameRate(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
