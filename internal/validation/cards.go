package validation

import (
	"regexp"
	"strings"

	"github.com/SagarP2/Billing-Software/internal/models"
	"github.com/SagarP2/Billing-Software/internal/schema"
)

type cardKey struct {
	Bank string
	Type string
}

// cardCatalog maps (bank, card type) to the card names selectable for
// that combination. Banks without cataloged cards accept no card name.
var cardCatalog = map[cardKey][]string{
	{"State Bank of India", models.CardTypeCredit}: {
		"SBI SimplySAVE Credit Card",
		"SBI SimplyCLICK Credit Card",
	},
	{"State Bank of India", models.CardTypeDebit}: {
		"SBI Classic Debit Card",
		"SBI Global Debit Card",
	},
	{"HDFC Bank", models.CardTypeCredit}: {
		"HDFC Moneyback Credit Card",
		"HDFC Regalia Credit Card",
	},
	{"HDFC Bank", models.CardTypeDebit}: {
		"HDFC Premium Debit Card",
		"HDFC International Debit Card",
	},
	{"ICICI Bank", models.CardTypeCredit}: {
		"ICICI Coral Credit Card",
		"ICICI Platinum Credit Card",
	},
	{"ICICI Bank", models.CardTypeDebit}: {
		"ICICI Coral Debit Card",
		"ICICI Sapphiro Debit Card",
	},
	{"Axis Bank", models.CardTypeCredit}: {
		"Axis Neo Credit Card",
		"Axis Magnus Credit Card",
	},
	{"Axis Bank", models.CardTypeDebit}: {
		"Axis Visa Platinum Debit Card",
		"Axis RuPay Platinum Debit Card",
	},
	{"Kotak Mahindra Bank", models.CardTypeCredit}: {
		"Kotak Royale Credit Card",
		"Kotak Urbane Credit Card",
	},
	{"Kotak Mahindra Bank", models.CardTypeDebit}: {
		"Kotak Classic Debit Card",
		"Kotak Premium Debit Card",
	},
}

var cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)

// CardNamesFor returns the card names selectable for a bank and card
// type, or nil when the bank has no cataloged cards of that type.
func CardNamesFor(bank, cardType string) []string {
	return cardCatalog[cardKey{Bank: bank, Type: cardType}]
}

// NormalizeCardNumber strips spacing from a card number so it can be
// length-checked and stored consistently.
func NormalizeCardNumber(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// ValidCardNumber reports whether the normalized number is 13-19 digits.
func ValidCardNumber(s string) bool {
	return cardDigitsRegex.MatchString(NormalizeCardNumber(s))
}

// FormatCardNumber re-groups a normalized card number into blocks of 4
// for display.
func FormatCardNumber(s string) string {
	digits := NormalizeCardNumber(s)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CardDetail validates a card record: known bank, known type, a card
// name cataloged for that bank and type, and a plausible card number.
func (v *Validator) CardDetail(bank, cardType, cardName, cardNumber string) {
	v.Required("bank_name", bank)
	v.Required("card_type", cardType)
	v.Required("card_name", cardName)
	v.Required("card_number", cardNumber)

	if bank != "" && !knownBank(bank) {
		v.AddError("bank_name", "unknown bank")
	}
	if cardType != "" && cardType != models.CardTypeCredit && cardType != models.CardTypeDebit {
		v.AddError("card_type", "card type must be Credit Card or Debit Card")
	}
	if bank != "" && cardType != "" && cardName != "" {
		if !containsString(CardNamesFor(bank, cardType), cardName) {
			v.AddError("card_name", "card name is not available for the selected bank and type")
		}
	}
	if cardNumber != "" && !ValidCardNumber(cardNumber) {
		v.AddError("card_number", "card number should be between 13 and 19 digits")
	}
}

func knownBank(bank string) bool {
	return containsString(schema.Banks, bank)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
