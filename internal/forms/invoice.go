package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Messages surfaced next to the invoice form fields.
const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountPositive   = "Please enter an amount greater than $0."
	MsgStatusInvalid    = "Please select an invoice status."
)

// FieldErrors maps a form field name to the ordered messages reported for it.
type FieldErrors map[string][]string

// InvoiceDraft is a coerced, validated invoice submission. The id and date
// fields are never part of the form: the server stamps the date on create and
// the id arrives as a route parameter on update.
type InvoiceDraft struct {
	CustomerID  string `validate:"required"`
	AmountCents int64  `validate:"gt=0"`
	Status      string `validate:"oneof=pending paid"`
}

var validate = validator.New()

// ParseInvoiceForm coerces raw form values into an InvoiceDraft. Every failing
// field is reported, not just the first; a non-nil FieldErrors means the draft
// must not be persisted.
func ParseInvoiceForm(values map[string]string) (*InvoiceDraft, FieldErrors) {
	draft := &InvoiceDraft{
		CustomerID: strings.TrimSpace(values["customerId"]),
		Status:     values["status"],
	}

	errs := FieldErrors{}

	cents, ok := parseAmountCents(values["amount"])
	if ok {
		draft.AmountCents = cents
	} else {
		errs["amount"] = append(errs["amount"], MsgAmountPositive)
	}

	if err := validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "CustomerID":
					errs["customerId"] = append(errs["customerId"], MsgCustomerRequired)
				case "AmountCents":
					// An unparseable amount already reported this field.
					if _, seen := errs["amount"]; !seen {
						errs["amount"] = append(errs["amount"], MsgAmountPositive)
					}
				case "Status":
					errs["status"] = append(errs["status"], MsgStatusInvalid)
				}
			}
		} else {
			errs["form"] = append(errs["form"], err.Error())
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return draft, nil
}

// parseAmountCents converts a dollar amount string to integer cents, rounding
// to the nearest cent. Decimal arithmetic avoids float drift on values like
// "45.00".
func parseAmountCents(raw string) (int64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}
