// Package info holds the static reference bundle for a match: head-to-head
// history, recent form, team comparison, venue stats and weather. The bundle
// is fetched once per match view and never refreshed.
package info

// HeadToHeadMatch is one prior meeting between the two sides.
type HeadToHeadMatch struct {
	MatchNumber string `json:"matchNumber,omitempty"`
	Result      string `json:"result,omitempty"`
	TeamAScore  string `json:"teamAScore,omitempty"`
	TeamAOvers  string `json:"teamAOvers,omitempty"`
	TeamBScore  string `json:"teamBScore,omitempty"`
	TeamBOvers  string `json:"teamBOvers,omitempty"`
}

// HeadToHead is the sides' mutual record.
type HeadToHead struct {
	TeamAWins int               `json:"teamAWins"`
	TeamBWins int               `json:"teamBWins"`
	Matches   []HeadToHeadMatch `json:"matches,omitempty"`
}

// Form lists each side's recent results, most recent first ("W", "L", ...).
type Form struct {
	TeamA []string `json:"teamA,omitempty"`
	TeamB []string `json:"teamB,omitempty"`
}

// TeamComparison summarizes both sides' recent scoring on this ground type.
type TeamComparison struct {
	TeamAHighScore string `json:"teamAHighScore,omitempty"`
	TeamALowScore  string `json:"teamALowScore,omitempty"`
	TeamAAvgScore  string `json:"teamAAvgScore,omitempty"`
	TeamAWins      int    `json:"teamAWins"`
	TeamBHighScore string `json:"teamBHighScore,omitempty"`
	TeamBLowScore  string `json:"teamBLowScore,omitempty"`
	TeamBAvgScore  string `json:"teamBAvgScore,omitempty"`
	TeamBWins      int    `json:"teamBWins"`
}

// VenueScoringPattern captures how the venue plays.
type VenueScoringPattern struct {
	HighScore           string `json:"highScore,omitempty"`
	LowScore            string `json:"lowScore,omitempty"`
	FirstInningsAvg     string `json:"firstInningsAvg,omitempty"`
	SecondInningsAvg    string `json:"secondInningsAvg,omitempty"`
	BatFirstWins        int    `json:"batFirstWins"`
	BatFirstWinPercent  string `json:"batFirstWinPercent,omitempty"`
	BatSecondWins       int    `json:"batSecondWins"`
	BatSecondWinPercent string `json:"batSecondWinPercent,omitempty"`
}

// VenueWeather is the forecast for the venue around match time.
type VenueWeather struct {
	Weather     string `json:"weather,omitempty"`
	WeatherIcon string `json:"weatherIcon,omitempty"`
	TempF       string `json:"tempF,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	Cloud       string `json:"cloud,omitempty"`
	WindDir     string `json:"windDir,omitempty"`
}

// Bundle is the full static reference payload for one match.
type Bundle struct {
	MatchID             string               `json:"matchId"`
	TeamAShort          string               `json:"teamAShort,omitempty"`
	TeamBShort          string               `json:"teamBShort,omitempty"`
	HeadToHead          *HeadToHead          `json:"headToHead,omitempty"`
	Forms               *Form                `json:"forms,omitempty"`
	TeamComparison      *TeamComparison      `json:"teamComparison,omitempty"`
	VenueScoringPattern *VenueScoringPattern `json:"venueScoringPattern,omitempty"`
	VenueWeather        *VenueWeather        `json:"venueWeather,omitempty"`
}
