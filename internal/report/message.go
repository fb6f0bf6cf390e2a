package report

import (
	"fmt"
	"strings"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"

// Message serializes the report into the shareable bill-split summary. It is
// a pure rendering of the report's figures: payment requests first, then bill
// details, then the per-guest breakdown.
func Message(r Report) string {
	if len(r.Guests) == 0 {
		return "No guests have been added yet."
	}

	var sb strings.Builder
	sb.WriteString("💸💸💸 BILL SPLIT SUMMARY 💸💸💸\n\n")

	if !r.Complete {
		fmt.Fprintf(&sb, "⚠️ PARTIAL SPLIT: %d item(s) worth %s still unassigned\n\n",
			len(r.Remaining), r.RemainingValue.Format(r.Symbol))
	}

	sb.WriteString("👥 PAYMENT REQUESTS 👥\n")
	sb.WriteString(divider)
	sb.WriteString("\n")
	for _, g := range r.Guests {
		fmt.Fprintf(&sb, "%s owes %s 💰\n", g.Name, g.Total.Format(r.Symbol))
	}

	sb.WriteString("\n📋 BILL DETAILS 📋\n")
	sb.WriteString(divider)
	fmt.Fprintf(&sb, "🧾 Subtotal: %s\n", r.BillSubtotal.Format(r.Symbol))
	fmt.Fprintf(&sb, "🏛️ Tax: %s\n", r.BillTax.Format(r.Symbol))
	fmt.Fprintf(&sb, "💁 Tip: %s\n", r.BillTip.Format(r.Symbol))
	fmt.Fprintf(&sb, "💯 Total: %s\n", r.TotalCollected.Format(r.Symbol))
	fmt.Fprintf(&sb, "👥 Split between %d people\n\n", len(r.Guests))

	if r.Converted {
		fmt.Fprintf(&sb, "🌍 Converted from %s to %s\n", r.FromCurrency, r.Currency)
		fmt.Fprintf(&sb, "📈 Exchange rate: 1 %s = %.4f %s\n", r.FromCurrency, r.Rate, r.Currency)
		sb.WriteString(divider)
		sb.WriteString("\n")
	}

	sb.WriteString("📊 DETAILED BREAKDOWN 📊\n")
	sb.WriteString(divider)
	sb.WriteString("\n")
	for _, g := range r.Guests {
		fmt.Fprintf(&sb, "👤 %s's TOTAL: %s\n", g.Name, g.Total.Format(r.Symbol))
		sb.WriteString("   ITEMS:\n")
		for _, item := range g.Items {
			fmt.Fprintf(&sb, "   • %s: %s\n", item.Name, item.Price.Format(r.Symbol))
		}
		fmt.Fprintf(&sb, "   📝 Subtotal: %s\n", g.Subtotal.Format(r.Symbol))
		fmt.Fprintf(&sb, "   🏛️ Tax: %s\n", g.Tax.Format(r.Symbol))
		fmt.Fprintf(&sb, "   💁 Tip: %s\n", g.Tip.Format(r.Symbol))
		fmt.Fprintf(&sb, "   💰 Total: %s\n\n", g.Total.Format(r.Symbol))
	}

	sb.WriteString(divider)
	sb.WriteString("💳 Please Venmo or pay in cash!\n")
	sb.WriteString("🚀 Sent via Flick2Split\n")
	sb.WriteString("✨ Hassle-free bill splitting ✨")

	return sb.String()
}
