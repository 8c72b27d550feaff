package validation

import (
	"regexp"

	"github.com/SagarP2/Billing-Software/internal/models"
)

var (
	// PAN: 5 letters, 4 digits, 1 letter (e.g. ABCDE1234F)
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	// GST: 2-digit state code, embedded PAN, entity code, Z, checksum
	// (e.g. 22ABCDE1234F1Z5)
	gstRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

var gstTypes = map[string]struct{}{
	models.GSTTypeRegular:     {},
	models.GSTTypeComposition: {},
	models.GSTTypeCasual:      {},
	models.GSTTypeNonResident: {},
	models.GSTTypeUNBody:      {},
	models.GSTTypeSEZ:         {},
}

// ValidPAN reports whether s is a well-formed PAN identifier.
func ValidPAN(s string) bool {
	return panRegex.MatchString(s)
}

// ValidGST reports whether s is a well-formed GST identifier.
func ValidGST(s string) bool {
	return gstRegex.MatchString(s)
}

// PANFromGST extracts the 10-character PAN embedded at positions 3-12
// of a GST identifier. Returns "" when the GST is too short.
func PANFromGST(gst string) string {
	if len(gst) < 12 {
		return ""
	}
	return gst[2:12]
}

// TaxDetail validates a customer tax record: both identifiers are
// required and well-formed, the GST type is a known registration kind,
// and the PAN embedded in the GST must equal the PAN field.
func (v *Validator) TaxDetail(pan, gst, gstType string) {
	v.Required("pan_no", pan)
	v.Required("gst_no", gst)
	v.Required("gst_type", gstType)

	if pan != "" && !ValidPAN(pan) {
		v.AddError("pan_no", "invalid PAN number format (e.g. ABCDE1234F)")
	}
	if gst != "" && !ValidGST(gst) {
		v.AddError("gst_no", "invalid GST number format (e.g. 22ABCDE1234F1Z5)")
	}
	if gstType != "" {
		if _, ok := gstTypes[gstType]; !ok {
			v.AddError("gst_type", "unknown GST type")
		}
	}
	if pan != "" && gst != "" && ValidGST(gst) && PANFromGST(gst) != pan {
		v.AddError("gst_no", "PAN number in GST does not match with provided PAN")
	}
}
