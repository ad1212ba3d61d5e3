package crictez

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/v7",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchMatchListHitsAPIAndMapsResponse(t *testing.T) {
	var capturedPath string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		if req.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", req.Method)
		}
		body := `{"data": [
			{
				"match_id": 8123,
				"match_status": "Live",
				"team_a": "India", "team_a_short": "IND", "team_a_img": "http://img/a.png",
				"team_b": "Australia", "team_b_short": "AUS",
				"team_a_score": {"1": {"score": "184", "wicket": 6, "ball": 118, "over": "19.4"}},
				"current_inning": "1",
				"venue": "MCG",
				"match_date": "2026-08-29", "match_time": "19:30",
				"tournament_name": "World Cup",
				"matchs": "3rd T20I"
			},
			{"match_id": "8124", "match_status": "Not Started", "team_a": "England", "team_b": "Pakistan"}
		]}`
		return jsonResponse(http.StatusOK, body), nil
	})

	client := newTestClient(rt)

	list, err := client.FetchMatchList(context.Background())
	if err != nil {
		t.Fatalf("fetch list: %v", err)
	}
	if capturedPath != "/v7/homeList/secret" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list))
	}

	first := list[0]
	if first.ID != "8123" || first.Status != matches.StatusLive {
		t.Fatalf("unexpected first match %+v", first)
	}
	if first.TeamA.Short != "IND" || first.TeamA.ImageURL != "http://img/a.png" {
		t.Fatalf("unexpected team a %+v", first.TeamA)
	}
	score, ok := first.TeamAScore[1]
	if !ok || score.Runs != 184 || score.Wickets != 6 || score.Overs != "19.4" {
		t.Fatalf("unexpected scorecard %+v", first.TeamAScore)
	}
	if list[1].Status != matches.StatusUpcoming {
		t.Fatalf("expected upcoming for 'Not Started', got %s", list[1].Status)
	}
}

func TestFetchLiveMatchPostsFormAndReturnsDocument(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", req.Method)
		}
		if req.URL.Path != "/v7/liveMatch/secret" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Fatalf("unexpected content type %s", ct)
		}
		body, _ := io.ReadAll(req.Body)
		if string(body) != "match_id=8123" {
			t.Fatalf("unexpected form body %s", body)
		}
		return jsonResponse(http.StatusOK, `{"data": {"match_id": "8123", "first_circle": "FOUR"}}`), nil
	})

	client := newTestClient(rt)

	doc, err := client.FetchLiveMatch(context.Background(), "8123")
	if err != nil {
		t.Fatalf("fetch live: %v", err)
	}
	if string(doc["first_circle"]) != `"FOUR"` {
		t.Fatalf("unexpected document %v", doc)
	}
}

func TestFetchMatchInfoMapsBundle(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v7/matchInfo/secret" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		body := `{"data": {
			"match_id": "8123",
			"team_a_short": "IND", "team_b_short": "AUS",
			"head_to_head": {
				"team_a_win_count": "7", "team_b_win_count": 5,
				"matches": [{"matchs": "1st ODI", "result": "IND won", "team_a_score": "310", "team_a_over": "50", "team_b_score": "289", "team_b_over": "48.2"}]
			},
			"forms": {"team_a": ["W", "W", "L"], "team_b": ["L", "W"]},
			"venue_scoring_pattern": {"high_score": "228", "low_score": "92", "first_win_batting": 12, "first_win_batting_per": "60"},
			"venue_weather": {"weather": "Clear", "temp_f": 78, "humidity": "40", "wind_dir": "NW"}
		}}`
		return jsonResponse(http.StatusOK, body), nil
	})

	client := newTestClient(rt)

	bundle, err := client.FetchMatchInfo(context.Background(), "8123")
	if err != nil {
		t.Fatalf("fetch info: %v", err)
	}
	if bundle.MatchID != "8123" || bundle.TeamAShort != "IND" {
		t.Fatalf("unexpected bundle %+v", bundle)
	}
	if bundle.HeadToHead == nil || bundle.HeadToHead.TeamAWins != 7 || bundle.HeadToHead.TeamBWins != 5 {
		t.Fatalf("unexpected head to head %+v", bundle.HeadToHead)
	}
	if len(bundle.HeadToHead.Matches) != 1 || bundle.HeadToHead.Matches[0].TeamBOvers != "48.2" {
		t.Fatalf("unexpected h2h matches %+v", bundle.HeadToHead.Matches)
	}
	if bundle.Forms == nil || len(bundle.Forms.TeamA) != 3 {
		t.Fatalf("unexpected forms %+v", bundle.Forms)
	}
	if bundle.VenueScoringPattern == nil || bundle.VenueScoringPattern.BatFirstWins != 12 {
		t.Fatalf("unexpected venue pattern %+v", bundle.VenueScoringPattern)
	}
	if bundle.VenueWeather == nil || bundle.VenueWeather.TempF != "78" {
		t.Fatalf("unexpected weather %+v", bundle.VenueWeather)
	}
}

func TestFetchSurfacesUpstreamErrors(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream broken"), nil
	})
	client := newTestClient(rt)

	if _, err := client.FetchMatchList(context.Background()); err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchSurfacesRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})
	client := newTestClient(rt)

	_, err := client.FetchMatchList(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter.Seconds() != 30 {
		t.Fatalf("unexpected retry-after %s", rl.RetryAfter)
	}
}

func TestFetchRejectsMissingAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://example.com"})

	_, err := client.FetchMatchList(context.Background())
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestFetchRejectsEmptyData(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data": null}`), nil
	})
	client := newTestClient(rt)

	if _, err := client.FetchLiveMatch(context.Background(), "8123"); err == nil {
		t.Fatal("expected error for null data payload")
	}
}

func TestFetchLiveRejectsEmptyMatchID(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})

	if _, err := client.FetchLiveMatch(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty match id")
	}
}
