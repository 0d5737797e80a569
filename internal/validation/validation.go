// Package validation is the single registration rule set, shared in
// spirit with the browser-side validator: the script served from web/
// applies the same patterns and the same message strings, so a payload
// the form accepts is exactly a payload this package accepts. The
// server never trusts the client — every rule is re-run here.
//
// Check returns structured field/message faults rather than writing
// anything to the response; the handler decides how to surface them.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/aanand-mishra/student-registration/internal/types"
	"github.com/go-playground/validator/v10"
)

// Messages are matched by substring in the browser script ("email",
// "Phone", "PIN") to highlight the offending field. Do not reword them
// without updating web/public/script.js.
const (
	MsgRequiredFields   = "Full name, email, and password are required"
	MsgInvalidEmail     = "Invalid email format"
	MsgPhoneDigits      = "Phone number must be 10 digits"
	MsgPinDigits        = "PIN code must be 6 digits"
	MsgPasswordLength   = "Password must be at least 6 characters"
	MsgPasswordMismatch = "Passwords do not match"
)

var (
	// Two non-space parts around "@", with a dot somewhere in the
	// domain part. Deliberately loose; stricter RFC checks reject
	// addresses real registrants use.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	tenDigits = regexp.MustCompile(`^[0-9]{10}$`)
	sixDigits = regexp.MustCompile(`^[0-9]{6}$`)
)

// Fault is one field-targeted validation failure.
type Fault struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rules wraps a configured validator instance. Safe for concurrent use;
// build one with New at startup and share it.
type Rules struct {
	validate *validator.Validate
}

// New builds the rule set: the validate tags on types.RegisterRequest
// plus the custom tags below.
func New() *Rules {
	v := validator.New()

	// Report faults under the JSON key the client knows the field by,
	// not the Go struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Phones arrive formatted ("123-456-7890"); only the digits count.
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return tenDigits.MatchString(stripNonDigits(fl.Field().String()))
	})

	mustRegister(v, "pin6", func(fl validator.FieldLevel) bool {
		return sixDigits.MatchString(fl.Field().String())
	})

	return &Rules{validate: v}
}

// Check runs every rule against the request and returns all faults in
// struct-field order, or nil if the payload is valid. Missing fullName,
// email and password collapse into one combined fault so the client
// sees a single "required" message however many of the three are blank.
func (r *Rules) Check(req types.RegisterRequest) []Fault {
	err := r.validate.Struct(req)
	if err == nil {
		return nil
	}

	validateErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable if the struct itself is unusable, which would
		// be a programming error, not bad input.
		return []Fault{{Message: "invalid request"}}
	}

	faults := make([]Fault, 0, len(validateErrs))
	seenRequired := false

	for _, fe := range validateErrs {
		var msg string

		switch fe.ActualTag() {
		case "required":
			if seenRequired {
				continue
			}
			seenRequired = true
			msg = MsgRequiredFields
		case "simple_email":
			msg = MsgInvalidEmail
		case "phone10":
			msg = MsgPhoneDigits
		case "pin6":
			msg = MsgPinDigits
		case "min":
			msg = MsgPasswordLength
		case "eqfield":
			msg = MsgPasswordMismatch
		default:
			msg = "field " + fe.Field() + " is invalid"
		}

		faults = append(faults, Fault{Field: fe.Field(), Message: msg})
	}

	return faults
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}
