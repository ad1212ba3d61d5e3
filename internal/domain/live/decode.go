package live

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/jsonutil"
)

// Wire shapes for the live feed. Numeric fields arrive as numbers or
// strings depending on the upstream mood, hence the flex types. Note the
// feed really does spell the bowler field "bolwer".
type wireLiveMatch struct {
	MatchID        jsonutil.FlexString  `json:"match_id"`
	MatchStatus    string               `json:"match_status"`
	MatchType      string               `json:"match_type"`
	MatchOver      jsonutil.FlexString  `json:"match_over"`
	TeamA          string               `json:"team_a"`
	TeamAShort     string               `json:"team_a_short"`
	TeamAImg       string               `json:"team_a_img"`
	TeamAScore     map[string]wireScore `json:"team_a_score"`
	TeamB          string               `json:"team_b"`
	TeamBShort     string               `json:"team_b_short"`
	TeamBImg       string               `json:"team_b_img"`
	TeamBScore     map[string]wireScore `json:"team_b_score"`
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
	FirstCircle    string               `json:"first_circle"`
	MinRate        jsonutil.FlexString  `json:"min_rate"`
	MaxRate        jsonutil.FlexString  `json:"max_rate"`
	FavTeam        string               `json:"fav_team"`
	SessionOver    jsonutil.FlexString  `json:"s_ovr"`
	SessionMin     jsonutil.FlexString  `json:"s_min"`
	SessionMax     jsonutil.FlexString  `json:"s_max"`
	Batsmen        []wireBatsman        `json:"batsman"`
	Bowler         *wireBowler          `json:"bolwer"`
	Projected      []wireProjectedRow   `json:"projected_score"`
}

type wireScore struct {
	Score  jsonutil.FlexInt    `json:"score"`
	Wicket jsonutil.FlexInt    `json:"wicket"`
	Ball   jsonutil.FlexInt    `json:"ball"`
	Over   jsonutil.FlexString `json:"over"`
}

type wireBatsman struct {
	Name         string              `json:"name"`
	Run          jsonutil.FlexInt    `json:"run"`
	Ball         jsonutil.FlexInt    `json:"ball"`
	Fours        jsonutil.FlexInt    `json:"fours"`
	Sixes        jsonutil.FlexInt    `json:"sixes"`
	StrikeRate   jsonutil.FlexString `json:"strike_rate"`
	StrikeStatus jsonutil.FlexInt    `json:"strike_status"`
}

type wireBowler struct {
	Name    string              `json:"name"`
	Run     jsonutil.FlexInt    `json:"run"`
	Wicket  jsonutil.FlexInt    `json:"wicket"`
	Over    jsonutil.FlexString `json:"over"`
	Economy jsonutil.FlexString `json:"economy"`
}

type wireProjectedRow struct {
	Over       jsonutil.FlexInt    `json:"over"`
	Rate       jsonutil.FlexString `json:"cur_rate"`
	Score      jsonutil.FlexInt    `json:"cur_rate_score"`
	Rate1      jsonutil.FlexString `json:"cur_rate_1"`
	Score1     jsonutil.FlexInt    `json:"cur_rate_1_score"`
	Rate2      jsonutil.FlexString `json:"cur_rate_2"`
	Score2     jsonutil.FlexInt    `json:"cur_rate_2_score"`
	Rate3      jsonutil.FlexString `json:"cur_rate_3"`
	Score3     jsonutil.FlexInt    `json:"cur_rate_3_score"`
}

// Decode materializes the typed view of a merged document.
func Decode(doc Document) (Snapshot, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Snapshot{}, err
	}

	var wire wireLiveMatch
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Snapshot{}, fmt.Errorf("decode live document: %w", err)
	}

	snap := Snapshot{
		Summary: matches.Match{
			ID:             wire.MatchID.String(),
			Status:         matches.ParseStatus(wire.MatchStatus),
			StatusNote:     wire.MatchStatus,
			TeamA:          matches.Team{Name: wire.TeamA, Short: wire.TeamAShort, ImageURL: wire.TeamAImg},
			TeamB:          matches.Team{Name: wire.TeamB, Short: wire.TeamBShort, ImageURL: wire.TeamBImg},
			TeamAScore:     mapScorecard(wire.TeamAScore),
			TeamBScore:     mapScorecard(wire.TeamBScore),
			CurrentInnings: wire.CurrentInning.Int(),
			BattingTeam:    wire.BattingTeam,
			Venue:          wire.Venue,
			Date:           wire.MatchDate,
			Time:           wire.MatchTime,
			Tournament:     wire.TournamentName,
			Series:         wire.Series,
			MatchNumber:    wire.MatchNumber,
			Toss:           wire.Toss,
			Result:         wire.Result,
			NeedRunBall:    wire.NeedRunBall.String(),
		},
		Commentary: wire.FirstCircle,
		Odds: Odds{
			MinRate:     wire.MinRate.String(),
			MaxRate:     wire.MaxRate.String(),
			FavTeam:     wire.FavTeam,
			SessionOver: wire.SessionOver.String(),
			SessionMin:  wire.SessionMin.String(),
			SessionMax:  wire.SessionMax.String(),
		},
		MatchType: wire.MatchType,
		MatchOver: wire.MatchOver.String(),
	}

	for _, b := range wire.Batsmen {
		snap.Batsmen = append(snap.Batsmen, Batsman{
			Name:       b.Name,
			Runs:       b.Run.Int(),
			Balls:      b.Ball.Int(),
			Fours:      b.Fours.Int(),
			Sixes:      b.Sixes.Int(),
			StrikeRate: b.StrikeRate.String(),
			OnStrike:   b.StrikeStatus.Int() == 1,
		})
	}

	if wire.Bowler != nil {
		snap.Bowler = &Bowler{
			Name:    wire.Bowler.Name,
			Overs:   wire.Bowler.Over.String(),
			Runs:    wire.Bowler.Run.Int(),
			Wickets: wire.Bowler.Wicket.Int(),
			Economy: wire.Bowler.Economy.String(),
		}
	}

	for _, row := range wire.Projected {
		snap.Projected = append(snap.Projected, ProjectedRow{
			Over:       row.Over.Int(),
			Rate:       row.Rate.String(),
			Score:      row.Score.Int(),
			RatePlus1:  row.Rate1.String(),
			ScorePlus1: row.Score1.Int(),
			RatePlus2:  row.Rate2.String(),
			ScorePlus2: row.Score2.Int(),
			RatePlus3:  row.Rate3.String(),
			ScorePlus3: row.Score3.Int(),
		})
	}

	return snap, nil
}

func mapScorecard(scores map[string]wireScore) matches.Scorecard {
	if len(scores) == 0 {
		return nil
	}
	card := make(matches.Scorecard, len(scores))
	for key, s := range scores {
		innings, err := strconv.Atoi(key)
		if err != nil || innings < 1 {
			continue
		}
		card[innings] = matches.InningsScore{
			Runs:    s.Score.Int(),
			Wickets: s.Wicket.Int(),
			Balls:   s.Ball.Int(),
			Overs:   s.Over.String(),
		}
	}
	return card
}
