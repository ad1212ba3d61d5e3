package matches

import "strings"

// ParseStatus maps the upstream status vocabulary onto the canonical
// lifecycle states. Matching is case-insensitive. Anything outside the
// known vocabulary maps to StatusUnknown so it can be flagged loudly
// instead of vanishing from every view.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "live":
		return StatusLive
	case "upcoming", "not started":
		return StatusUpcoming
	case "completed", "finished":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// Buckets is the classified view of a match list.
type Buckets struct {
	Live      []Match
	Upcoming  []Match
	Completed []Match
}

// Classify partitions matches into live/upcoming/completed buckets.
// Matches with StatusUnknown are excluded from every bucket and returned
// separately for the caller to log and count.
func Classify(all []Match) (Buckets, []Match) {
	var b Buckets
	var unknown []Match
	for _, m := range all {
		switch m.Status {
		case StatusLive:
			b.Live = append(b.Live, m)
		case StatusUpcoming:
			b.Upcoming = append(b.Upcoming, m)
		case StatusCompleted:
			b.Completed = append(b.Completed, m)
		default:
			unknown = append(unknown, m)
		}
	}
	return b, unknown
}
