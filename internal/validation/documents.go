package validation

import (
	"regexp"

	"github.com/SagarP2/Billing-Software/internal/models"
)

var (
	aadhaarRegex = regexp.MustCompile(`^\d{12}$`)
	voterIDRegex = regexp.MustCompile(`^[A-Z]{3}\d{7}$`)
)

// IdentityDocument validates a proof-of-identity record. The number
// format depends on the document type; an empty number passes, since
// the field is optional.
func (v *Validator) IdentityDocument(docType, number string) {
	v.Required("document_type", docType)

	switch docType {
	case models.DocumentTypeAadhaar:
		if number != "" && !aadhaarRegex.MatchString(number) {
			v.AddError("document_number", "Aadhaar number must be 12 digits")
		}
	case models.DocumentTypePAN:
		if number != "" && !ValidPAN(number) {
			v.AddError("document_number", "invalid PAN number format (e.g. ABCDE1234F)")
		}
	case models.DocumentTypeVoterID:
		if number != "" && !voterIDRegex.MatchString(number) {
			v.AddError("document_number", "invalid Voter ID format (e.g. ABC1234567)")
		}
	case "":
		// already reported by Required
	default:
		v.AddError("document_type", "unknown document type")
	}
}
