package config

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_STRING", "value")
	if got := envOrDefault("CFG_TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
	if got := envOrDefault("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "7")
	if got := intEnvOrDefault("CFG_TEST_INT", 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	t.Setenv("CFG_TEST_INT_BAD", "seven")
	if got := intEnvOrDefault("CFG_TEST_INT_BAD", 3); got != 3 {
		t.Fatalf("expected fallback 3, got %d", got)
	}

	t.Setenv("CFG_TEST_INT_NEG", "-2")
	if got := intEnvOrDefault("CFG_TEST_INT_NEG", 3); got != 3 {
		t.Fatalf("expected fallback 3 for non-positive value, got %d", got)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_LIST", "https://a.example, https://b.example ,")
	got := listEnvOrDefault("CFG_TEST_LIST", []string{"*"})
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected list %v", got)
	}

	if got := listEnvOrDefault("CFG_TEST_LIST_MISSING", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected fallback, got %v", got)
	}

	t.Setenv("CFG_TEST_LIST_BLANK", " , ,")
	if got := listEnvOrDefault("CFG_TEST_LIST_BLANK", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected fallback for blank entries, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"No":    false,
	}
	for raw, want := range cases {
		t.Setenv("CFG_TEST_BOOL", raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", !want); got != want {
			t.Errorf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}

	t.Setenv("CFG_TEST_BOOL", "maybe")
	if got := boolEnvOrDefault("CFG_TEST_BOOL", true); got != true {
		t.Fatal("expected default on unparseable value")
	}
}
