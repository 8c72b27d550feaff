// Package schema is the single source of truth for which tables and
// columns the generic table gateway may touch. The registry is plain
// data, loaded once, and never mutated at runtime: every table name a
// request carries is checked against it before reaching SQL text.
package schema

// FieldType describes how a field is rendered and validated by admin forms.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldDatetime FieldType = "datetime"
	FieldEnum     FieldType = "enum"
	FieldSelect   FieldType = "select"
)

// Relation points a select field at another table for foreign-key pickers.
type Relation struct {
	Table      string `json:"table"`
	ValueField string `json:"valueField"`
	LabelField string `json:"labelField"`
}

// Field is one insertable/updatable column of an entity.
// DefaultNow marks timestamp columns the gateway fills with the
// submission time when a create omits them.
type Field struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Type       FieldType `json:"type"`
	Required   bool      `json:"required,omitempty"`
	EnumValues []string  `json:"enumValues,omitempty"`
	Relation   *Relation `json:"relation,omitempty"`
	DefaultNow bool      `json:"-"`
}

// Column is a list-view display column.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable,omitempty"`
}

// TableSchema declares one entity: its physical table, ordered field
// list and display columns.
type TableSchema struct {
	Table       string   `json:"table"`
	Title       string   `json:"title"`
	Fields      []Field  `json:"fields"`
	ListColumns []Column `json:"listColumns"`
}

// FieldSet returns the acceptable JSON body keys for insert/update.
func (s *TableSchema) FieldSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		set[f.Name] = struct{}{}
	}
	return set
}

var registry = map[string]TableSchema{
	"customers": {
		Table: "customers",
		Title: "Customers",
		Fields: []Field{
			{Name: "full_name", Label: "Full Name", Type: FieldText, Required: true},
			{Name: "billing_address", Label: "Billing Address", Type: FieldTextarea},
			{Name: "city", Label: "City", Type: FieldText},
			{Name: "state", Label: "State", Type: FieldText},
			{Name: "pin_code", Label: "PIN Code", Type: FieldText},
			{Name: "country", Label: "Country", Type: FieldText},
			{Name: "email_id", Label: "Email", Type: FieldText},
			{Name: "contact_no", Label: "Contact No", Type: FieldText},
			{Name: "created_at", Label: "Created At", Type: FieldDatetime, DefaultNow: true},
		},
		ListColumns: []Column{
			{Key: "full_name", Label: "Full Name", Sortable: true},
			{Key: "email_id", Label: "Email", Sortable: true},
			{Key: "contact_no", Label: "Contact"},
			{Key: "city", Label: "City"},
			{Key: "created_at", Label: "Created"},
		},
	},
	"customer_tax_details": {
		Table: "customer_tax_details",
		Title: "Customer Tax Details",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "pan_no", Label: "PAN No", Type: FieldText, Required: true},
			{Name: "gst_no", Label: "GST No", Type: FieldText, Required: true},
			{Name: "gst_type", Label: "GST Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"Regular", "Composition", "Casual", "Non-Resident", "UN Body", "SEZ"}},
		},
		ListColumns: []Column{
			{Key: "customer_id", Label: "Customer"},
			{Key: "pan_no", Label: "PAN"},
			{Key: "gst_no", Label: "GST"},
			{Key: "gst_type", Label: "GST Type"},
		},
	},
	"card_details": {
		Table: "card_details",
		Title: "Card Details",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "bank_name", Label: "Bank Name", Type: FieldEnum, Required: true, EnumValues: Banks},
			{Name: "card_type", Label: "Card Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"Credit Card", "Debit Card"}},
			{Name: "card_name", Label: "Card Name", Type: FieldEnum, Required: true, EnumValues: CardNames},
			{Name: "card_number", Label: "Card Number", Type: FieldText, Required: true},
			{Name: "due_date", Label: "Due Date", Type: FieldDatetime},
		},
		ListColumns: []Column{
			{Key: "customer_id", Label: "Customer"},
			{Key: "bank_name", Label: "Bank"},
			{Key: "card_type", Label: "Type"},
			{Key: "card_name", Label: "Name on Card"},
			{Key: "card_number", Label: "Card Number"},
		},
	},
	"identity_documents": {
		Table: "identity_documents",
		Title: "Identity Documents",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "document_type", Label: "Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"Aadhaar Card", "PAN Card", "Voter ID"}},
			{Name: "document_number", Label: "Number", Type: FieldText},
			{Name: "document_image", Label: "Image URL", Type: FieldText},
		},
		ListColumns: []Column{
			{Key: "customer_id", Label: "Customer"},
			{Key: "document_type", Label: "Type"},
			{Key: "document_number", Label: "Number"},
		},
	},
	"accounts": {
		Table: "accounts",
		Title: "Accounts",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "opening_balance", Label: "Opening Balance", Type: FieldNumber},
			{Name: "credit_allowed", Label: "Credit Allowed", Type: FieldBoolean},
			{Name: "credit_limit", Label: "Credit Limit", Type: FieldNumber},
			{Name: "price_category", Label: "Price Category", Type: FieldText},
			{Name: "remark", Label: "Remark", Type: FieldTextarea},
			{Name: "received", Label: "Received", Type: FieldNumber},
			{Name: "pending_amount", Label: "Pending Amount", Type: FieldNumber},
		},
		ListColumns: []Column{
			{Key: "customer_id", Label: "Customer"},
			{Key: "opening_balance", Label: "Opening"},
			{Key: "credit_allowed", Label: "Credit Allowed"},
			{Key: "pending_amount", Label: "Pending"},
		},
	},
	"transactions": {
		Table: "transactions",
		Title: "Transactions",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "account_id", Label: "Account", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "accounts", ValueField: "id", LabelField: "id"}},
			{Name: "card_name", Label: "Card Name", Type: FieldText},
			{Name: "card_number", Label: "Card Number", Type: FieldText},
			{Name: "transaction_type", Label: "Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"credit", "debit"}},
			{Name: "amount", Label: "Amount", Type: FieldNumber, Required: true},
			{Name: "pos_type", Label: "POS Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"MP", "MOS", "INJ"}},
			{Name: "tax_rate", Label: "Tax Rate", Type: FieldNumber},
			{Name: "tax", Label: "Tax", Type: FieldNumber},
			{Name: "charges", Label: "Charges", Type: FieldNumber},
			{Name: "mdr", Label: "MDR", Type: FieldNumber},
			{Name: "profit", Label: "Profit", Type: FieldNumber},
			{Name: "transaction_date", Label: "Transaction Date", Type: FieldDatetime, DefaultNow: true},
		},
		ListColumns: []Column{
			{Key: "transaction_date", Label: "Date", Sortable: true},
			{Key: "customer_id", Label: "Customer"},
			{Key: "transaction_type", Label: "Type"},
			{Key: "amount", Label: "Amount", Sortable: true},
			{Key: "pos_type", Label: "POS Type"},
			{Key: "tax", Label: "Tax (₹)", Sortable: true},
			{Key: "mdr", Label: "MDR (₹)", Sortable: true},
			{Key: "charges", Label: "Charges (₹)", Sortable: true},
			{Key: "profit", Label: "Profit (₹)", Sortable: true},
		},
	},
	"customer_credits": {
		Table: "customer_credits",
		Title: "Customer Credits",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "account_id", Label: "Account", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "accounts", ValueField: "id", LabelField: "id"}},
			{Name: "type", Label: "Type", Type: FieldEnum, Required: true,
				EnumValues: []string{"credit_given", "repayment"}},
			{Name: "amount", Label: "Amount", Type: FieldNumber, Required: true},
			{Name: "date", Label: "Date", Type: FieldDatetime, DefaultNow: true},
			{Name: "note", Label: "Note", Type: FieldTextarea},
		},
		ListColumns: []Column{
			{Key: "date", Label: "Date", Sortable: true},
			{Key: "customer_id", Label: "Customer"},
			{Key: "type", Label: "Type"},
			{Key: "amount", Label: "Amount", Sortable: true},
		},
	},
	"payment_alerts": {
		Table: "payment_alerts",
		Title: "Payment Alerts",
		Fields: []Field{
			{Name: "customer_id", Label: "Customer", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "customers", ValueField: "id", LabelField: "full_name"}},
			{Name: "account_id", Label: "Account", Type: FieldSelect, Required: true,
				Relation: &Relation{Table: "accounts", ValueField: "id", LabelField: "id"}},
			{Name: "alert_message", Label: "Message", Type: FieldTextarea},
			{Name: "due_date", Label: "Due Date", Type: FieldDatetime},
			{Name: "is_paid", Label: "Is Paid", Type: FieldBoolean},
		},
		ListColumns: []Column{
			{Key: "due_date", Label: "Due", Sortable: true},
			{Key: "customer_id", Label: "Customer"},
			{Key: "alert_message", Label: "Message"},
			{Key: "is_paid", Label: "Paid?"},
		},
	},
}

var allowedTables = func() map[string]struct{} {
	set := make(map[string]struct{}, len(registry))
	for _, s := range registry {
		set[s.Table] = struct{}{}
	}
	return set
}()

// Allowed reports whether the physical table name may be addressed by
// the gateway. The match is case-sensitive.
func Allowed(table string) bool {
	_, ok := allowedTables[table]
	return ok
}

// Lookup returns the schema for a physical table name.
func Lookup(table string) (*TableSchema, bool) {
	for name := range registry {
		if s := registry[name]; s.Table == table {
			return &s, true
		}
	}
	return nil, false
}

// Tables lists every registered physical table name.
func Tables() []string {
	names := make([]string, 0, len(registry))
	for _, s := range registry {
		names = append(names, s.Table)
	}
	return names
}
