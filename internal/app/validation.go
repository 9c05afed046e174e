package app

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"property_booking/internal/domain"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	card16Re = regexp.MustCompile(`^\d{16}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
	mmyyRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// formatRules run after the presence check, in this order. The first failure
// is the only one reported.
var formatRules = []struct {
	tag   string
	value func(b domain.Booking) string
	msg   string
}{
	{"booking_email", func(b domain.Booking) string { return b.Email }, "Invalid email format"},
	{"card16", func(b domain.Booking) string { return b.CardNumber }, "Invalid card number. Must be 16 digits."},
	{"cvv", func(b domain.Booking) string { return b.CVV }, "Invalid CVV. Must be 3 or 4 digits."},
	{"mmyy", func(b domain.Booking) string { return b.ExpirationDate }, "Invalid expiration date. Use MM/YY format."},
}

type BookingValidator struct{ v *validator.Validate }

func NewBookingValidator() *BookingValidator {
	v := validator.New()

	// report json names ("cardNumber") rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("booking_email", matchRe(emailRe))
	must("card16", func(fl validator.FieldLevel) bool {
		return card16Re.MatchString(stripSpace(fl.Field().String()))
	})
	must("cvv", matchRe(cvvRe))
	must("mmyy", matchRe(mmyyRe))

	return &BookingValidator{v: v}
}

// Validate checks required fields first, then each format rule in order.
func (bv *BookingValidator) Validate(b domain.Booking) error {
	if err := bv.v.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return domain.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	for _, r := range formatRules {
		if err := bv.v.Var(r.value(b), r.tag); err != nil {
			return domain.NewValidationError(r.msg)
		}
	}
	return nil
}

func matchRe(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool { return re.MatchString(fl.Field().String()) }
}

func stripSpace(s string) string { return strings.Join(strings.Fields(s), "") }
