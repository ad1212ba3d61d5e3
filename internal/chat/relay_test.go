package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainchat "cricket-data-service/internal/domain/chat"
	"cricket-data-service/internal/metrics"
	"cricket-data-service/internal/teststubs"
)

func userMsg(content string) domainchat.Message {
	return domainchat.Message{Role: domainchat.RoleUser, Content: content}
}

func TestRelayUsesPrimaryWhenHealthy(t *testing.T) {
	primary, secondary := teststubs.NewOrderedCompleters(
		&teststubs.StubCompleter{Reply: "from primary"},
		&teststubs.StubCompleter{Reply: "from secondary"},
	)

	relay := NewRelay(primary, secondary, NewPromptSource("", nil), nil, nil)

	reply, err := relay.Respond(context.Background(), []domainchat.Message{userMsg("hello")}, Options{})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply.Text != "from primary" || reply.Degraded {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if secondary.Calls.Load() != 0 {
		t.Fatalf("secondary must not be called when primary succeeds")
	}
}

func TestRelayFallsBackInOrder(t *testing.T) {
	primary, secondary := teststubs.NewOrderedCompleters(
		&teststubs.StubCompleter{Err: errors.New("primary down")},
		&teststubs.StubCompleter{Reply: "from secondary"},
	)

	relay := NewRelay(primary, secondary, NewPromptSource("", nil), nil, nil)

	reply, err := relay.Respond(context.Background(), []domainchat.Message{userMsg("hello")}, Options{})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply.Text != "from secondary" || reply.Degraded {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if len(primary.CalledAt) != 1 || len(secondary.CalledAt) != 1 || primary.CalledAt[0] >= secondary.CalledAt[0] {
		t.Fatalf("primary must be attempted before secondary; primary=%v secondary=%v", primary.CalledAt, secondary.CalledAt)
	}

	// The fallback receives the identical transcript.
	if len(primary.LastMsgs) != len(secondary.LastMsgs) {
		t.Fatalf("transcript mismatch: %d vs %d messages", len(primary.LastMsgs), len(secondary.LastMsgs))
	}
	for i := range primary.LastMsgs {
		if primary.LastMsgs[i] != secondary.LastMsgs[i] {
			t.Fatalf("message %d differs between backends", i)
		}
	}
}

func TestRelayServesApologyWhenAllBackendsFail(t *testing.T) {
	rec := metrics.NewRecorder()
	relay := NewRelay(
		&teststubs.StubCompleter{Err: errors.New("primary down")},
		&teststubs.StubCompleter{Err: errors.New("secondary down")},
		NewPromptSource("", nil), nil, rec,
	)

	reply, err := relay.Respond(context.Background(), []domainchat.Message{userMsg("hello")}, Options{})
	if err != nil {
		t.Fatalf("total backend failure must not surface as an error, got %v", err)
	}
	if reply.Text != Apology {
		t.Fatalf("expected apology, got %q", reply.Text)
	}
	if !reply.Degraded {
		t.Fatal("expected degraded flag set")
	}
	if rec.ChatApologies() != 1 {
		t.Fatalf("expected 1 apology recorded, got %d", rec.ChatApologies())
	}
}

func TestRelayPrependsSystemPromptOnce(t *testing.T) {
	primary := &teststubs.StubCompleter{Reply: "ok"}
	relay := NewRelay(primary, nil, NewPromptSource("", nil), nil, nil)

	if _, err := relay.Respond(context.Background(), []domainchat.Message{userMsg("hi")}, Options{}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if len(primary.LastMsgs) != 2 || primary.LastMsgs[0].Role != domainchat.RoleSystem {
		t.Fatalf("expected system prompt prepended, got %+v", primary.LastMsgs)
	}

	// A caller-supplied system message is respected as-is.
	custom := []domainchat.Message{
		{Role: domainchat.RoleSystem, Content: "custom persona"},
		userMsg("hi"),
	}
	if _, err := relay.Respond(context.Background(), custom, Options{}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if len(primary.LastMsgs) != 2 || primary.LastMsgs[0].Content != "custom persona" {
		t.Fatalf("caller system message must not be replaced, got %+v", primary.LastMsgs)
	}
}

func TestRelayConciseOptionExtendsPrompt(t *testing.T) {
	primary := &teststubs.StubCompleter{Reply: "ok"}
	relay := NewRelay(primary, nil, NewPromptSource("", nil), nil, nil)

	if _, err := relay.Respond(context.Background(), []domainchat.Message{userMsg("hi")}, Options{Concise: true}); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !strings.Contains(primary.LastMsgs[0].Content, "brief and concise") {
		t.Fatalf("expected concise instructions in system prompt, got %q", primary.LastMsgs[0].Content)
	}
}

func TestRelayRejectsInvalidInput(t *testing.T) {
	relay := NewRelay(&teststubs.StubCompleter{Reply: "ok"}, nil, NewPromptSource("", nil), nil, nil)

	if _, err := relay.Respond(context.Background(), nil, Options{}); err != ErrEmptyTranscript {
		t.Fatalf("expected ErrEmptyTranscript, got %v", err)
	}

	bad := []domainchat.Message{{Role: "wizard", Content: "hi"}}
	if _, err := relay.Respond(context.Background(), bad, Options{}); err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestPromptSourcePrefersConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("You are a test persona.\n"), 0o644); err != nil {
		t.Fatalf("write prompt file: %v", err)
	}

	prompts := NewPromptSource(path, nil)
	if got := prompts.SystemPrompt(false); got != "You are a test persona." {
		t.Fatalf("expected file prompt, got %q", got)
	}

	// Unreadable path falls back to the embedded default.
	missing := NewPromptSource(path+".missing", nil)
	if got := missing.SystemPrompt(false); !strings.Contains(got, "Mr. Happy") {
		t.Fatalf("expected embedded default, got %q", got)
	}
}
