package crictez

import (
	"encoding/json"

	"cricket-data-service/internal/jsonutil"
)

// envelope is the response wrapper every crictez endpoint uses.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type matchResponse struct {
	MatchID        jsonutil.FlexString  `json:"match_id"`
	MatchStatus    string               `json:"match_status"`
	TeamA          string               `json:"team_a"`
	TeamAShort     string               `json:"team_a_short"`
	TeamAImg       string               `json:"team_a_img"`
	TeamAScore     map[string]scoreResp `json:"team_a_score"`
	TeamB          string               `json:"team_b"`
	TeamBShort     string               `json:"team_b_short"`
	TeamBImg       string               `json:"team_b_img"`
	TeamBScore     map[string]scoreResp `json:"team_b_score"`
	CurrentInning  jsonutil.FlexInt     `json:"current_inning"`
	BattingTeam    string               `json:"batting_team"`
	Venue          string               `json:"venue"`
	MatchDate      string               `json:"match_date"`
	MatchTime      string               `json:"match_time"`
	TournamentName string               `json:"tournament_name"`
	Series         string               `json:"series"`
	MatchNumber    string               `json:"matchs"`
	Toss           string               `json:"toss"`
	Result         string               `json:"result"`
	NeedRunBall    jsonutil.FlexString  `json:"need_run_ball"`
}

type scoreResp struct {
	Score  jsonutil.FlexInt    `json:"score"`
	Wicket jsonutil.FlexInt    `json:"wicket"`
	Ball   jsonutil.FlexInt    `json:"ball"`
	Over   jsonutil.FlexString `json:"over"`
}

type infoResponse struct {
	MatchID    jsonutil.FlexString `json:"match_id"`
	TeamAShort string              `json:"team_a_short"`
	TeamBShort string              `json:"team_b_short"`
	HeadToHead *headToHeadResp     `json:"head_to_head"`
	Forms      *formsResp          `json:"forms"`
	Comparison *comparisonResp     `json:"team_comparison"`
	Venue      *venuePatternResp   `json:"venue_scoring_pattern"`
	Weather    *weatherResp        `json:"venue_weather"`
}

type headToHeadResp struct {
	TeamAWinCount jsonutil.FlexInt `json:"team_a_win_count"`
	TeamBWinCount jsonutil.FlexInt `json:"team_b_win_count"`
	Matches       []h2hMatchResp   `json:"matches"`
}

type h2hMatchResp struct {
	MatchNumber string              `json:"matchs"`
	Result      string              `json:"result"`
	TeamAScore  jsonutil.FlexString `json:"team_a_score"`
	TeamAOver   jsonutil.FlexString `json:"team_a_over"`
	TeamBScore  jsonutil.FlexString `json:"team_b_score"`
	TeamBOver   jsonutil.FlexString `json:"team_b_over"`
}

type formsResp struct {
	TeamA []string `json:"team_a"`
	TeamB []string `json:"team_b"`
}

type comparisonResp struct {
	TeamAHighScore jsonutil.FlexString `json:"team_a_high_score"`
	TeamALowScore  jsonutil.FlexString `json:"team_a_low_score"`
	TeamAAvgScore  jsonutil.FlexString `json:"team_a_avg_score"`
	TeamAWin       jsonutil.FlexInt    `json:"team_a_win"`
	TeamBHighScore jsonutil.FlexString `json:"team_b_high_score"`
	TeamBLowScore  jsonutil.FlexString `json:"team_b_low_score"`
	TeamBAvgScore  jsonutil.FlexString `json:"team_b_avg_score"`
	TeamBWin       jsonutil.FlexInt    `json:"team_b_win"`
}

type venuePatternResp struct {
	HighScore           jsonutil.FlexString `json:"high_score"`
	LowScore            jsonutil.FlexString `json:"low_score"`
	FirstAvgScore       jsonutil.FlexString `json:"first_avg_score"`
	SecondAvgScore      jsonutil.FlexString `json:"second_avg_score"`
	FirstWinBatting     jsonutil.FlexInt    `json:"first_win_batting"`
	FirstWinBattingPer  jsonutil.FlexString `json:"first_win_batting_per"`
	SecondWinBatting    jsonutil.FlexInt    `json:"second_win_batting"`
	SecondWinBattingPer jsonutil.FlexString `json:"second_win_batting_per"`
}

type weatherResp struct {
	Weather     string              `json:"weather"`
	WeatherIcon string              `json:"weather_icon"`
	TempF       jsonutil.FlexString `json:"temp_f"`
	Humidity    jsonutil.FlexString `json:"humidity"`
	Cloud       jsonutil.FlexString `json:"cloud"`
	WindDir     string              `json:"wind_dir"`
}
