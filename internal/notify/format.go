package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// Format renders one cycle's change events as a single subject and body.
// All events from a cycle go into one message; callers skip sending
// entirely when the event list is empty.
func Format(events []domain.ChangeEvent) (subject, body string) {
	if len(events) == 0 {
		return "", ""
	}

	urgency := "Update"
	for _, e := range events {
		if e.Critical() {
			urgency = "URGENT"
			break
		}
	}

	if len(events) == 1 {
		subject = fmt.Sprintf("%s: %s status change", urgency, events[0].Domain)
	} else {
		subject = fmt.Sprintf("%s: %d domain status changes", urgency, len(events))
	}

	var b strings.Builder
	b.WriteString("CHANGES DETECTED:\n")
	for _, e := range events {
		fmt.Fprintf(&b, "- %s: %s -> %s (at %s)\n",
			e.Domain, e.Previous, e.New, e.DetectedAt.UTC().Format(time.RFC3339))
	}

	for _, e := range events {
		if e.Critical() {
			fmt.Fprintf(&b, "\nACTION NEEDED: %s is no longer registered.\n", e.Domain)
		}
	}

	return subject, b.String()
}
