// file: internals/helpers/currency.go
package helper

import (
	"fmt"
	"math"
	"strings"
)

// FormatAmount renders an amount for display. JPY has no minor unit, so it
// gets thousands grouping with no decimals; every other code is fixed to
// two decimal places.
func FormatAmount(currencyCode string, amount float64) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "JPY" {
		return groupThousands(int64(math.Round(amount)))
	}
	return fmt.Sprintf("%.2f", amount)
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}
