package matches

// Status is the canonical lifecycle state of a match.
type Status string

const (
	StatusLive      Status = "LIVE"
	StatusUpcoming  Status = "UPCOMING"
	StatusCompleted Status = "COMPLETED"
	// StatusUnknown marks upstream vocabulary we do not recognize. Matches
	// with this status belong to no list bucket; callers are expected to
	// log and count them rather than drop them silently.
	StatusUnknown Status = "UNKNOWN"
)

// InningsScore is one innings' score line. Overs keeps the upstream
// "overs.balls" notation (for example "12.3").
type InningsScore struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Balls   int    `json:"balls"`
	Overs   string `json:"overs"`
}

// Scorecard maps innings number (1-based) to that innings' score.
// An absent key means the innings has not started. Each refresh replaces
// the scorecard wholesale; innings entries are never patched field by field.
type Scorecard map[int]InningsScore

// Team is one side of a match.
type Team struct {
	Name     string `json:"name"`
	Short    string `json:"short"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Match is the canonical list-view shape exposed by the service.
type Match struct {
	ID             string    `json:"id"`
	Status         Status    `json:"status"`
	StatusNote     string    `json:"statusNote,omitempty"`
	TeamA          Team      `json:"teamA"`
	TeamB          Team      `json:"teamB"`
	TeamAScore     Scorecard `json:"teamAScore,omitempty"`
	TeamBScore     Scorecard `json:"teamBScore,omitempty"`
	CurrentInnings int       `json:"currentInnings,omitempty"`
	BattingTeam    string    `json:"battingTeam,omitempty"`
	Venue          string    `json:"venue,omitempty"`
	Date           string    `json:"date,omitempty"`
	Time           string    `json:"time,omitempty"`
	Tournament     string    `json:"tournament,omitempty"`
	Series         string    `json:"series,omitempty"`
	MatchNumber    string    `json:"matchNumber,omitempty"`
	Toss           string    `json:"toss,omitempty"`
	Result         string    `json:"result,omitempty"`
	NeedRunBall    string    `json:"needRunBall,omitempty"`
}

// ListResponse is the payload returned by GET /matches.
type ListResponse struct {
	Matches   []Match `json:"matches"`
	Live      []Match `json:"live"`
	Upcoming  []Match `json:"upcoming"`
	Completed []Match `json:"completed"`
}
