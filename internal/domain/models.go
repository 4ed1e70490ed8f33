package domain

import "time"

// Status classifies a monitored domain's last-known availability.
type Status string

const (
	StatusUp           Status = "UP"
	StatusDown         Status = "DOWN"
	StatusRegistered   Status = "REGISTERED"
	StatusUnregistered Status = "UNREGISTERED"
	StatusUnknown      Status = "UNKNOWN"
)

// Record is the persisted state for one monitored domain. The domain name
// itself is the key in the status artifact, so it is not repeated here.
type Record struct {
	Status      Status    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	LastChanged time.Time `json:"last_changed"`
}

// StatusSet maps domain name to its last-known record. It serializes as a
// single JSON object with sorted keys, which is the on-disk artifact format.
type StatusSet map[string]Record

// Clone returns an independent copy so a cycle can build the next set
// without mutating the loaded baseline.
func (s StatusSet) Clone() StatusSet {
	out := make(StatusSet, len(s))
	for d, r := range s {
		out[d] = r
	}
	return out
}

// ChangeEvent records one observed status transition. Events are transient:
// they drive notifications and are reflected into the next StatusSet, never
// persisted on their own.
type ChangeEvent struct {
	Domain     string    `json:"domain"`
	Previous   Status    `json:"previous_status"`
	New        Status    `json:"new_status"`
	DetectedAt time.Time `json:"detected_at"`
}

// Critical reports whether this transition should escalate the notification.
// A domain dropping out of registration is the signal worth acting on fast.
func (e ChangeEvent) Critical() bool {
	return e.New == StatusUnregistered
}
