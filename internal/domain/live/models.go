package live

import "cricket-data-service/internal/domain/matches"

// Batsman is one of the two batters currently at the crease.
type Batsman struct {
	Name       string `json:"name"`
	Runs       int    `json:"runs"`
	Balls      int    `json:"balls"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	StrikeRate string `json:"strikeRate"`
	OnStrike   bool   `json:"onStrike"`
}

// Bowler is the bowler of the current over.
type Bowler struct {
	Name    string `json:"name"`
	Overs   string `json:"overs"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Economy string `json:"economy"`
}

// ProjectedRow is one row of the projected-score table: the score the
// batting side reaches by a given over at the current and adjusted run rates.
type ProjectedRow struct {
	Over       int    `json:"over"`
	Rate       string `json:"rate"`
	Score      int    `json:"score"`
	RatePlus1  string `json:"ratePlus1"`
	ScorePlus1 int    `json:"scorePlus1"`
	RatePlus2  string `json:"ratePlus2"`
	ScorePlus2 int    `json:"scorePlus2"`
	RatePlus3  string `json:"ratePlus3"`
	ScorePlus3 int    `json:"scorePlus3"`
}

// Odds carries the market-rate fields the feed attaches to a live match.
type Odds struct {
	MinRate     string `json:"minRate,omitempty"`
	MaxRate     string `json:"maxRate,omitempty"`
	FavTeam     string `json:"favTeam,omitempty"`
	SessionOver string `json:"sessionOver,omitempty"`
	SessionMin  string `json:"sessionMin,omitempty"`
	SessionMax  string `json:"sessionMax,omitempty"`
}

// Snapshot is the typed view of a merged live document: the summary fields
// plus live-only detail.
type Snapshot struct {
	Summary    matches.Match  `json:"summary"`
	Commentary string         `json:"commentary,omitempty"`
	Batsmen    []Batsman      `json:"batsmen,omitempty"`
	Bowler     *Bowler        `json:"bowler,omitempty"`
	Projected  []ProjectedRow `json:"projected,omitempty"`
	Odds       Odds           `json:"odds"`
	MatchType  string         `json:"matchType,omitempty"`
	MatchOver  string         `json:"matchOver,omitempty"`
}
