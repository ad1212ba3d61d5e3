package matches

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOvers splits the cricket "overs.balls" notation into whole overs and
// balls of the current over. "12.3" means 12 complete overs plus 3 balls.
// A bare number ("12") means no balls into the next over.
func ParseOvers(raw string) (overs, balls int, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0, fmt.Errorf("empty overs value")
	}

	whole, frac, found := strings.Cut(s, ".")
	overs, err = strconv.Atoi(whole)
	if err != nil || overs < 0 {
		return 0, 0, fmt.Errorf("invalid overs %q", raw)
	}
	if !found {
		return overs, 0, nil
	}

	balls, err = strconv.Atoi(frac)
	if err != nil || balls < 0 || balls > 5 {
		return 0, 0, fmt.Errorf("invalid balls in overs %q", raw)
	}
	return overs, balls, nil
}
