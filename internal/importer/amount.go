package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

// parseAmountCell reads a cell as money in cents. String values tolerate
// thousands-separator commas, whitespace, and a leading currency marker
// ("₹1,234.56" and "1,234.56" both parse to 123456). The sign is kept;
// callers decide whether to drop or absolute negative amounts.
func parseAmountCell(c sheet.Cell) (int64, bool) {
	var d decimal.Decimal

	switch c.Kind {
	case sheet.KindNumber:
		d = decimal.NewFromFloat(c.Number)
	case sheet.KindString:
		clean := cleanAmountString(c.Text)
		if clean == "" {
			return 0, false
		}

		var err error

		d, err = decimal.NewFromString(clean)
		if err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

func cleanAmountString(s string) string {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	for _, sym := range []string{"₹", "$", "€", "£", "Rs.", "Rs", "INR"} {
		clean = strings.TrimPrefix(clean, sym)
	}

	return clean
}
