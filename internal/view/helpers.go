package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PauloHFS/pagelinks/internal/i18n"
)

// Label returns the text shown for a link in the locale of ctx.
func Label(ctx context.Context, l Link) string {
	t := i18n.Get(ctx)
	switch l.Kind {
	case LinkPrev:
		return t.Previous
	case LinkNext:
		return t.Next
	case LinkEllipsis:
		return t.Ellipsis
	default:
		return strconv.Itoa(l.Number())
	}
}

// FormatLinks renders links as a single plain-text line, marking the current
// page with brackets, e.g. "« 1 … 5 [6] 7 … 20 »".
func FormatLinks(links []Link) string {
	var b strings.Builder
	for i, l := range links {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch l.Kind {
		case LinkPrev:
			b.WriteString("«")
		case LinkNext:
			b.WriteString("»")
		case LinkEllipsis:
			b.WriteString("…")
		default:
			if l.Current {
				fmt.Fprintf(&b, "[%d]", l.Number())
			} else {
				b.WriteString(strconv.Itoa(l.Number()))
			}
		}
	}
	return b.String()
}
