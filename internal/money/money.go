package money

import (
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const rupee = "₹"

// Format renders a whole-rupee amount with Indian digit grouping: the last
// three digits form one group, every pair after that its own ("₹1,299",
// "₹1,29,900"). Negative amounts render as the zero amount.
func Format(amount int) string {
	if amount < 0 {
		log.WithField("amount", amount).Warn("money: negative amount, formatting as zero")

		return rupee + "0"
	}

	return rupee + group(strconv.Itoa(amount))
}

// FormatFloat tolerates the values a careless caller can produce: NaN and
// infinities format as the zero amount with a logged warning, never a panic.
// Fractions are truncated; prices here are whole rupees.
func FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		log.WithField("amount", amount).Warn("money: non-numeric amount, formatting as zero")

		return rupee + "0"
	}

	return Format(int(amount))
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	out := "," + digits[len(digits)-3:]

	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}

	return head + out
}
