package live

import (
	"encoding/json"
	"testing"
)

func doc(t *testing.T, raw string) Document {
	t.Helper()
	d, err := ParseDocument([]byte(raw))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return d
}

func TestMergeShallow(t *testing.T) {
	dst := doc(t, `{"a": 1, "b": 2}`)
	src := doc(t, `{"b": 3, "c": 4}`)

	merged := Merge(dst, src)

	var got map[string]int
	raw, _ := json.Marshal(merged)
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal merged: %v", err)
	}
	want := map[string]int{"a": 1, "b": 3, "c": 4}
	if len(got) != len(want) {
		t.Fatalf("merged = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("merged[%s] = %d, want %d", k, got[k], v)
		}
	}
}

func TestMergeReplacesObjectsWholesale(t *testing.T) {
	dst := doc(t, `{"team_a_score": {"1": {"score": 100, "wicket": 2, "over": "12.3"}}}`)
	src := doc(t, `{"team_a_score": {"1": {"score": 120}}}`)

	merged := Merge(dst, src)

	var card struct {
		TeamAScore map[string]map[string]any `json:"team_a_score"`
	}
	raw, _ := json.Marshal(merged)
	if err := json.Unmarshal(raw, &card); err != nil {
		t.Fatalf("unmarshal merged: %v", err)
	}
	inn := card.TeamAScore["1"]
	if inn["score"].(float64) != 120 {
		t.Fatalf("expected replaced score 120, got %v", inn["score"])
	}
	// The nested object is replaced wholesale, not deep-merged.
	if _, ok := inn["wicket"]; ok {
		t.Fatalf("expected wicket dropped with wholesale replacement, got %v", inn)
	}
}

func TestMergePreservesAbsentKeys(t *testing.T) {
	dst := doc(t, `{"first_circle": "FOUR", "min_rate": "1.45"}`)
	src := doc(t, `{"min_rate": "1.52"}`)

	merged := Merge(dst, src)

	if string(merged["first_circle"]) != `"FOUR"` {
		t.Fatalf("expected commentary preserved, got %s", merged["first_circle"])
	}
	if string(merged["min_rate"]) != `"1.52"` {
		t.Fatalf("expected min_rate updated, got %s", merged["min_rate"])
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	dst := doc(t, `{"a": 1}`)
	src := doc(t, `{"a": 2}`)

	_ = Merge(dst, src)

	if string(dst["a"]) != "1" {
		t.Fatalf("dst mutated: %s", dst["a"])
	}
}

func TestDecodeMergedDocument(t *testing.T) {
	initial := doc(t, `{
		"match_id": "8123",
		"match_status": "Live",
		"team_a": "India", "team_a_short": "IND",
		"team_b": "Australia", "team_b_short": "AUS",
		"team_a_score": {"1": {"score": "184", "wicket": 6, "ball": 118, "over": "19.4"}},
		"current_inning": "1",
		"batting_team": "team_a",
		"first_circle": "FOUR",
		"min_rate": "1.45", "max_rate": 1.5, "fav_team": "IND",
		"s_ovr": "10", "s_min": 78, "s_max": "82",
		"batsman": [
			{"name": "Kohli", "run": "54", "ball": 39, "fours": 5, "sixes": "2", "strike_rate": "138.4", "strike_status": 1},
			{"name": "Sharma", "run": 21, "ball": "14", "fours": 3, "sixes": 0, "strike_rate": 150.0, "strike_status": "0"}
		],
		"bolwer": {"name": "Starc", "run": 32, "wicket": "2", "over": "3.4", "economy": "8.7"},
		"projected_score": [{"over": 20, "cur_rate": "9.3", "cur_rate_score": 186}]
	}`)
	update := doc(t, `{
		"team_a_score": {"1": {"score": 190, "wicket": 6, "ball": 120, "over": "20.0"}},
		"first_circle": "SIX"
	}`)

	snap, err := Decode(Merge(initial, update))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if snap.Summary.ID != "8123" {
		t.Fatalf("unexpected match id %q", snap.Summary.ID)
	}
	if snap.Summary.Status != "LIVE" {
		t.Fatalf("unexpected status %q", snap.Summary.Status)
	}
	if snap.Commentary != "SIX" {
		t.Fatalf("expected updated commentary, got %q", snap.Commentary)
	}
	score, ok := snap.Summary.TeamAScore[1]
	if !ok {
		t.Fatalf("expected innings 1 score, got %+v", snap.Summary.TeamAScore)
	}
	if score.Runs != 190 || score.Wickets != 6 || score.Overs != "20.0" {
		t.Fatalf("unexpected innings score %+v", score)
	}

	// Fields absent from the update survive from the initial snapshot.
	if len(snap.Batsmen) != 2 {
		t.Fatalf("expected 2 batsmen, got %d", len(snap.Batsmen))
	}
	if !snap.Batsmen[0].OnStrike || snap.Batsmen[0].Runs != 54 {
		t.Fatalf("unexpected striker %+v", snap.Batsmen[0])
	}
	if snap.Batsmen[1].OnStrike {
		t.Fatalf("expected non-striker, got %+v", snap.Batsmen[1])
	}
	if snap.Bowler == nil || snap.Bowler.Name != "Starc" || snap.Bowler.Wickets != 2 {
		t.Fatalf("unexpected bowler %+v", snap.Bowler)
	}
	if snap.Odds.MaxRate != "1.5" || snap.Odds.FavTeam != "IND" {
		t.Fatalf("unexpected odds %+v", snap.Odds)
	}
	if len(snap.Projected) != 1 || snap.Projected[0].Score != 186 {
		t.Fatalf("unexpected projected table %+v", snap.Projected)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	snap, err := Decode(Document{})
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if snap.Summary.Status != "UNKNOWN" {
		t.Fatalf("expected unknown status for empty document, got %q", snap.Summary.Status)
	}
}
