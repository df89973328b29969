// Package newsletter implements the subscription flow: client-side email
// validation, the form state machine, and the HTTP client for the subscribe
// endpoint.
package newsletter

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var basicEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail applies the form's validation rules in order. Note the domain
// check inspects only the first '.' in the whole address, so later empty
// labels slip through; the server applies a different, simpler rule on top
// (see api.serverEmailPattern). Both behaviours are kept as the site ships
// them.
func ValidateEmail(email string) bool {
	if !basicEmailPattern.MatchString(email) {
		return false
	}
	// Domain label before the first dot must be non-empty.
	if strings.Index(email, ".") == strings.LastIndex(email, "@")+1 {
		return false
	}
	// TLD has at least 2 characters.
	if strings.LastIndex(email, ".") >= len(email)-2 {
		return false
	}
	return !strings.Contains(email, "..")
}

// EmailRule adapts ValidateEmail for ozzo-validation field rules.
var EmailRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if !ValidateEmail(s) {
		return errors.New("must be a valid email address")
	}
	return nil
})
