// Package invite renders shareable e-invites for an event.
package invite

import (
	"fmt"
	"strings"

	"github.com/utsavhq/utsav/internal/event"
)

// Template names an invite layout.
type Template string

const (
	Classic Template = "classic"
	Floral  Template = "floral"
	Modern  Template = "modern"
)

// Templates lists the available invite templates in display order.
var Templates = []Template{Classic, Floral, Modern}

// Valid reports whether t names a known template.
func Valid(t Template) bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// Invite is a composed e-invite for one event.
type Invite struct {
	Template Template `json:"template"`
	Message  string   `json:"message"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// Render produces the shareable text card for the event. The message is
// required; an unknown template is rejected.
func Render(e event.Event, inv Invite) (string, error) {
	if !Valid(inv.Template) {
		return "", fmt.Errorf("unknown invite template %q", inv.Template)
	}
	if strings.TrimSpace(inv.Message) == "" {
		return "", fmt.Errorf("invite message is required")
	}

	var b strings.Builder
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "  You're invited: %s\n", e.Title)
	fmt.Fprintln(&b, rule)
	if e.Date != "" {
		fmt.Fprintf(&b, "  When:  %s\n", e.Date)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "  Where: %s\n", e.Location)
	}
	fmt.Fprintf(&b, "\n  %s\n", inv.Message)
	fmt.Fprintf(&b, "\n  (%s template)\n", inv.Template)
	fmt.Fprint(&b, rule)
	return b.String(), nil
}
