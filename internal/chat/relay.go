package chat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainchat "cricket-data-service/internal/domain/chat"
	"cricket-data-service/internal/logging"
	"cricket-data-service/internal/metrics"
)

// Apology is the canned reply served when every backend fails. The relay
// degrades instead of erroring so the widget always has something to show.
const Apology = "I'm sorry, I'm having trouble connecting to my knowledge base right now. Please try again in a moment."

// ErrEmptyTranscript is returned when a reply is requested without messages.
var ErrEmptyTranscript = errors.New("chat: empty transcript")

// Options tunes a single relay request.
type Options struct {
	Concise bool
}

// Reply is the outcome of one relay request. Degraded marks the apology
// path; Provider names the backend that answered.
type Reply struct {
	Text     string `json:"response"`
	Provider string `json:"-"`
	Degraded bool   `json:"-"`
}

// Relay answers one chat turn by trying the primary backend and falling
// back to the secondary on any error. The caller resupplies the full
// transcript each turn; nothing is remembered between requests.
type Relay struct {
	primary   Completer
	secondary Completer
	prompts   *PromptSource
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewRelay constructs a Relay. The secondary completer may be nil.
func NewRelay(primary, secondary Completer, prompts *PromptSource, logger *slog.Logger, recorder *metrics.Recorder) *Relay {
	return &Relay{
		primary:   primary,
		secondary: secondary,
		prompts:   prompts,
		logger:    logger,
		metrics:   recorder,
	}
}

// Respond validates the transcript, prepends the system prompt unless the
// caller already supplied one, and runs the failover chain. It returns an
// error only for invalid input; backend failures degrade to the apology.
func (r *Relay) Respond(ctx context.Context, msgs []domainchat.Message, opts Options) (Reply, error) {
	if len(msgs) == 0 {
		return Reply{}, ErrEmptyTranscript
	}
	for _, m := range msgs {
		if err := m.Validate(); err != nil {
			return Reply{}, err
		}
	}

	if !domainchat.HasSystemMessage(msgs) {
		system := domainchat.Message{Role: domainchat.RoleSystem, Content: r.prompts.SystemPrompt(opts.Concise)}
		msgs = append([]domainchat.Message{system}, msgs...)
	}

	if text, ok := r.attempt(ctx, r.primary, msgs); ok {
		return Reply{Text: text, Provider: r.primary.Name()}, nil
	}
	if r.secondary != nil {
		if text, ok := r.attempt(ctx, r.secondary, msgs); ok {
			return Reply{Text: text, Provider: r.secondary.Name()}, nil
		}
	}

	if r.metrics != nil {
		r.metrics.RecordChatApology()
	}
	logging.Error(r.logger, "all chat backends failed, serving apology", nil)
	return Reply{Text: Apology, Degraded: true}, nil
}

func (r *Relay) attempt(ctx context.Context, c Completer, msgs []domainchat.Message) (string, bool) {
	if c == nil {
		return "", false
	}

	start := time.Now()
	text, err := c.Complete(ctx, msgs)
	if r.metrics != nil {
		r.metrics.RecordChatCompletion(c.Name(), time.Since(start), err)
	}
	if err != nil {
		logging.Warn(r.logger, "chat completion failed", "provider", c.Name(), "error", err)
		return "", false
	}
	return text, true
}
