// Package diff compares a cycle's fresh probe results against the stored
// baseline and produces the change events worth notifying about.
package diff

import (
	"sort"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// Changes emits one ChangeEvent per domain whose freshly probed status
// differs from the stored one. Domains seen for the first time establish a
// baseline and emit nothing, so the first run never causes a notification
// storm. Events are ordered by domain name, so identical inputs always
// yield identical output.
func Changes(old domain.StatusSet, probed map[string]domain.Status, now time.Time) []domain.ChangeEvent {
	names := make([]string, 0, len(probed))
	for d := range probed {
		names = append(names, d)
	}
	sort.Strings(names)

	var events []domain.ChangeEvent
	for _, d := range names {
		prev, seen := old[d]
		if !seen {
			continue
		}
		if prev.Status != probed[d] {
			events = append(events, domain.ChangeEvent{
				Domain:     d,
				Previous:   prev.Status,
				New:        probed[d],
				DetectedAt: now,
			})
		}
	}
	return events
}

// Apply builds the next status set: probed domains get fresh records
// (LastChanged advances only on an actual transition), and domains present
// in the old set but no longer monitored are carried over untouched.
func Apply(old domain.StatusSet, probed map[string]domain.Status, now time.Time) domain.StatusSet {
	next := old.Clone()
	for d, status := range probed {
		rec := domain.Record{Status: status, LastChecked: now, LastChanged: now}
		if prev, seen := old[d]; seen && prev.Status == status {
			rec.LastChanged = prev.LastChanged
		}
		next[d] = rec
	}
	return next
}
