package schema

// Banks selectable on the card details form.
var Banks = []string{
	"State Bank of India",
	"HDFC Bank",
	"ICICI Bank",
	"Punjab National Bank",
	"Bank of Baroda",
	"Canara Bank",
	"Union Bank of India",
	"Axis Bank",
	"Kotak Mahindra Bank",
	"IndusInd Bank",
	"Yes Bank",
	"Federal Bank",
	"IDBI Bank",
	"RBL Bank",
}

// CardNames is the full card-name menu across all banks. Which subset
// is selectable for a given bank and card type is decided by the
// validation package's card catalog.
var CardNames = []string{
	"SBI SimplySAVE Credit Card",
	"SBI SimplyCLICK Credit Card",
	"HDFC Moneyback Credit Card",
	"HDFC Regalia Credit Card",
	"ICICI Coral Credit Card",
	"ICICI Platinum Credit Card",
	"Axis Neo Credit Card",
	"Axis Magnus Credit Card",
	"Kotak Royale Credit Card",
	"Kotak Urbane Credit Card",
	"SBI Classic Debit Card",
	"SBI Global Debit Card",
	"HDFC Premium Debit Card",
	"HDFC International Debit Card",
	"ICICI Coral Debit Card",
	"ICICI Sapphiro Debit Card",
	"Axis Visa Platinum Debit Card",
	"Axis RuPay Platinum Debit Card",
	"Kotak Classic Debit Card",
	"Kotak Premium Debit Card",
}
