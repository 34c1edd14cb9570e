package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// mobilePattern matches Indian mobile numbers: ten digits, first digit 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// Result is what every validator returns. Validators never panic and never
// return an error: a bad input is a Valid=false Result with a message for the
// form. Value carries the normalized input where normalization applies.
type Result struct {
	Valid   bool
	Message string
	Value   string
}

// Rules carries the field thresholds so tests can run with alternate limits.
type Rules struct {
	MinNameLen    int
	MinAddressLen int
	MinCityLen    int
	PinLen        int
	MinQuantity   int
	MaxQuantity   int
}

func DefaultRules() Rules {
	return Rules{
		MinNameLen:    2,
		MinAddressLen: 10,
		MinCityLen:    2,
		PinLen:        6,
		MinQuantity:   1,
		MaxQuantity:   10,
	}
}

func ok(value string) Result {
	return Result{Valid: true, Value: value}
}

func fail(value, message string) Result {
	return Result{Valid: false, Message: message, Value: value}
}

func (r Rules) Name(s string) Result {
	name := strings.TrimSpace(s)
	if utf8.RuneCountInString(name) < r.MinNameLen {
		return fail(name, fmt.Sprintf("name must be at least %d characters", r.MinNameLen))
	}

	return ok(name)
}

// Phone trims the input and strips internal whitespace before matching. The
// normalized value is returned whether or not it is valid, so the form can
// echo it back.
func (r Rules) Phone(s string) Result {
	phone := strings.Join(strings.Fields(s), "")
	if !mobilePattern.MatchString(phone) {
		return fail(phone, "enter a valid 10-digit mobile number")
	}

	return ok(phone)
}

func (r Rules) Address(s string) Result {
	address := strings.TrimSpace(s)
	if utf8.RuneCountInString(address) < r.MinAddressLen {
		return fail(address, fmt.Sprintf("address must be at least %d characters", r.MinAddressLen))
	}

	return ok(address)
}

func (r Rules) City(s string) Result {
	city := strings.TrimSpace(s)
	if utf8.RuneCountInString(city) < r.MinCityLen {
		return fail(city, fmt.Sprintf("city must be at least %d characters", r.MinCityLen))
	}

	return ok(city)
}

func (r Rules) Pin(s string) Result {
	pin := strings.TrimSpace(s)
	if len(pin) != r.PinLen {
		return fail(pin, fmt.Sprintf("PIN code must be exactly %d digits", r.PinLen))
	}

	for _, c := range pin {
		if c < '0' || c > '9' {
			return fail(pin, fmt.Sprintf("PIN code must be exactly %d digits", r.PinLen))
		}
	}

	return ok(pin)
}

func (r Rules) Payment(s string) Result {
	payment := strings.TrimSpace(s)
	if payment == "" {
		return fail(payment, "choose a payment method")
	}

	return ok(payment)
}

func (r Rules) Quantity(s string) Result {
	raw := strings.TrimSpace(s)

	qty, err := strconv.Atoi(raw)
	if err != nil {
		return fail(raw, "quantity must be a number")
	}

	if qty < r.MinQuantity || qty > r.MaxQuantity {
		return fail(raw, fmt.Sprintf("quantity must be between %d and %d", r.MinQuantity, r.MaxQuantity))
	}

	return ok(raw)
}
