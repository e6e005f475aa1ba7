package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dokind/esim-admin/pkg/models/domain"
)

// FormatDataAmount renders a package's data volume. Megabyte quantities of
// a gigabyte or more are shown in whole gigabytes, halves rounding up;
// everything else keeps its raw quantity and unit.
func FormatDataAmount(flows int, unit string) string {
	if flows >= 1000 && unit == "MB" {
		return fmt.Sprintf("%dGB", int(math.Round(float64(flows)/1000)))
	}
	return fmt.Sprintf("%d%s", flows, unit)
}

// DurationText renders a validity period. The month and year labels are a
// fixed lookup of the common validities, not a general conversion.
func DurationText(days int) string {
	switch {
	case days == 1:
		return "1 Day"
	case days < 30:
		return fmt.Sprintf("%d Days", days)
	case days == 30:
		return "1 Month"
	case days == 90:
		return "3 Months"
	case days == 180:
		return "6 Months"
	case days == 365:
		return "1 Year"
	default:
		return fmt.Sprintf("%d Days", days)
	}
}

// DiscountLabel renders the discount badge. A tiered discount wins over a
// flat one; no discount yields no label.
func DiscountLabel(maxDiscount, singleDiscount int) string {
	if maxDiscount > 0 {
		return fmt.Sprintf("Up to %d%% off", maxDiscount)
	}
	if singleDiscount > 0 {
		return fmt.Sprintf("%d%% off", singleDiscount)
	}
	return ""
}

// FormatDollar renders a USD cost price with two decimals.
func FormatDollar(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatTugrik converts a USD cost price at the given rate and renders it
// as whole tugriks with thousands separators.
func FormatTugrik(price float64, rate float64) string {
	return groupDigits(int64(math.Round(price*rate))) + "₮"
}

// SellingPriceLabel renders a stored resale price. The store keeps it as a
// string-encoded integer; an unparsable value yields no label, same as an
// unset price.
func SellingPriceLabel(stored string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(stored), 10, 64)
	if err != nil {
		return ""
	}
	return groupDigits(n) + "₮"
}

// PackageName returns the display name of a package: the upstream showName
// when present, otherwise "data - duration".
func PackageName(pkg domain.EsimPackage) string {
	if pkg.ShowName != "" {
		return pkg.ShowName
	}
	return fmt.Sprintf("%s - %s", FormatDataAmount(pkg.Flows, pkg.Unit), DurationText(pkg.Days))
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
