package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestFlexIntDecodesNumberAndString(t *testing.T) {
	cases := map[string]int{
		`42`:     42,
		`"42"`:   42,
		`"4.0"`:  4,
		`4.7`:    4,
		`null`:   0,
		`""`:     0,
		`"  7 "`: 7,
	}
	for raw, want := range cases {
		var f FlexInt
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			t.Errorf("FlexInt(%s): %v", raw, err)
			continue
		}
		if f.Int() != want {
			t.Errorf("FlexInt(%s) = %d, want %d", raw, f.Int(), want)
		}
	}
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"not a number"`), &f); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
	if err := json.Unmarshal([]byte(`{"nested": 1}`), &f); err == nil {
		t.Fatal("expected error for object")
	}
}

func TestFlexStringDecodesStringAndNumber(t *testing.T) {
	cases := map[string]string{
		`"12.3"`: "12.3",
		`12.3`:   "12.3",
		`7`:      "7",
		`null`:   "",
	}
	for raw, want := range cases {
		var f FlexString
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			t.Errorf("FlexString(%s): %v", raw, err)
			continue
		}
		if f.String() != want {
			t.Errorf("FlexString(%s) = %q, want %q", raw, f.String(), want)
		}
	}
}

func TestFlexTypesInsideStruct(t *testing.T) {
	var payload struct {
		Score  FlexInt    `json:"score"`
		Wicket FlexInt    `json:"wicket"`
		Over   FlexString `json:"over"`
	}
	raw := `{"score": "184", "wicket": 6, "over": 19.4}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Score.Int() != 184 || payload.Wicket.Int() != 6 || payload.Over.String() != "19.4" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
