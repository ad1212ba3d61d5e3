package crictez

import (
	"strconv"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/matches"
)

func mapMatch(m matchResponse) matches.Match {
	return matches.Match{
		ID:             m.MatchID.String(),
		Status:         matches.ParseStatus(m.MatchStatus),
		StatusNote:     m.MatchStatus,
		TeamA:          matches.Team{Name: m.TeamA, Short: m.TeamAShort, ImageURL: m.TeamAImg},
		TeamB:          matches.Team{Name: m.TeamB, Short: m.TeamBShort, ImageURL: m.TeamBImg},
		TeamAScore:     mapScorecard(m.TeamAScore),
		TeamBScore:     mapScorecard(m.TeamBScore),
		CurrentInnings: m.CurrentInning.Int(),
		BattingTeam:    m.BattingTeam,
		Venue:          m.Venue,
		Date:           m.MatchDate,
		Time:           m.MatchTime,
		Tournament:     m.TournamentName,
		Series:         m.Series,
		MatchNumber:    m.MatchNumber,
		Toss:           m.Toss,
		Result:         m.Result,
		NeedRunBall:    m.NeedRunBall.String(),
	}
}

func mapScorecard(scores map[string]scoreResp) matches.Scorecard {
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

func mapInfo(resp infoResponse) info.Bundle {
	bundle := info.Bundle{
		MatchID:    resp.MatchID.String(),
		TeamAShort: resp.TeamAShort,
		TeamBShort: resp.TeamBShort,
	}

	if resp.HeadToHead != nil {
		h2h := &info.HeadToHead{
			TeamAWins: resp.HeadToHead.TeamAWinCount.Int(),
			TeamBWins: resp.HeadToHead.TeamBWinCount.Int(),
		}
		for _, m := range resp.HeadToHead.Matches {
			h2h.Matches = append(h2h.Matches, info.HeadToHeadMatch{
				MatchNumber: m.MatchNumber,
				Result:      m.Result,
				TeamAScore:  m.TeamAScore.String(),
				TeamAOvers:  m.TeamAOver.String(),
				TeamBScore:  m.TeamBScore.String(),
				TeamBOvers:  m.TeamBOver.String(),
			})
		}
		bundle.HeadToHead = h2h
	}

	if resp.Forms != nil {
		bundle.Forms = &info.Form{TeamA: resp.Forms.TeamA, TeamB: resp.Forms.TeamB}
	}

	if resp.Comparison != nil {
		bundle.TeamComparison = &info.TeamComparison{
			TeamAHighScore: resp.Comparison.TeamAHighScore.String(),
			TeamALowScore:  resp.Comparison.TeamALowScore.String(),
			TeamAAvgScore:  resp.Comparison.TeamAAvgScore.String(),
			TeamAWins:      resp.Comparison.TeamAWin.Int(),
			TeamBHighScore: resp.Comparison.TeamBHighScore.String(),
			TeamBLowScore:  resp.Comparison.TeamBLowScore.String(),
			TeamBAvgScore:  resp.Comparison.TeamBAvgScore.String(),
			TeamBWins:      resp.Comparison.TeamBWin.Int(),
		}
	}

	if resp.Venue != nil {
		bundle.VenueScoringPattern = &info.VenueScoringPattern{
			HighScore:           resp.Venue.HighScore.String(),
			LowScore:            resp.Venue.LowScore.String(),
			FirstInningsAvg:     resp.Venue.FirstAvgScore.String(),
			SecondInningsAvg:    resp.Venue.SecondAvgScore.String(),
			BatFirstWins:        resp.Venue.FirstWinBatting.Int(),
			BatFirstWinPercent:  resp.Venue.FirstWinBattingPer.String(),
			BatSecondWins:       resp.Venue.SecondWinBatting.Int(),
			BatSecondWinPercent: resp.Venue.SecondWinBattingPer.String(),
		}
	}

	if resp.Weather != nil {
		bundle.VenueWeather = &info.VenueWeather{
			Weather:     resp.Weather.Weather,
			WeatherIcon: resp.Weather.WeatherIcon,
			TempF:       resp.Weather.TempF.String(),
			Humidity:    resp.Weather.Humidity.String(),
			Cloud:       resp.Weather.Cloud.String(),
			WindDir:     resp.Weather.WindDir,
		}
	}

	return bundle
}
