package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	appmatches "cricket-data-service/internal/app/matches"
	"cricket-data-service/internal/auth"
	"cricket-data-service/internal/chat"
	domainchat "cricket-data-service/internal/domain/chat"
	domainmatches "cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/livesync"
	"cricket-data-service/internal/logging"
)

// ReadyChecker reports whether the service has warm data to serve.
type ReadyChecker func() bool

// Handler wires HTTP routes to the application services.
type Handler struct {
	matches *appmatches.Service
	live    *livesync.Manager
	relay   *chat.Relay
	auth    *auth.Service
	prompts *chat.PromptSource
	ready   ReadyChecker
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(matches *appmatches.Service, live *livesync.Manager, relay *chat.Relay, authSvc *auth.Service, prompts *chat.PromptSource, ready ReadyChecker, logger *slog.Logger) *Handler {
	return &Handler{
		matches: matches,
		live:    live,
		relay:   relay,
		auth:    authSvc,
		prompts: prompts,
		ready:   ready,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the list poller has warm data.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		writeError(w, r, http.StatusServiceUnavailable, "not ready")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// Matches returns the current list with its status buckets. An optional
// ?status= filter narrows the flat list to one bucket.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	resp := h.matches.Classified()

	switch strings.ToLower(r.URL.Query().Get("status")) {
	case "":
		writeJSON(w, r, http.StatusOK, resp)
	case "live":
		writeJSON(w, r, http.StatusOK, domainmatches.ListResponse{Matches: resp.Live, Live: resp.Live})
	case "upcoming":
		writeJSON(w, r, http.StatusOK, domainmatches.ListResponse{Matches: resp.Upcoming, Upcoming: resp.Upcoming})
	case "completed":
		writeJSON(w, r, http.StatusOK, domainmatches.ListResponse{Matches: resp.Completed, Completed: resp.Completed})
	default:
		writeError(w, r, http.StatusBadRequest, "unknown status filter")
	}
}

// MatchByID returns one match summary if present.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := h.matches.MatchByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "match not found")
		return
	}
	writeJSON(w, r, http.StatusOK, m)
}

// MatchLive returns the merged live state, starting a synchronizer for the
// match on first access.
func (h *Handler) MatchLive(w http.ResponseWriter, r *http.Request) {
	snap, err := h.live.Snapshot(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, livesync.ErrEmptyMatchID) {
			writeError(w, r, http.StatusBadRequest, "missing match id")
			return
		}
		writeError(w, r, http.StatusServiceUnavailable, "live sync unavailable")
		return
	}
	writeJSON(w, r, http.StatusOK, snap)
}

// MatchInfo returns the static reference bundle for one match.
func (h *Handler) MatchInfo(w http.ResponseWriter, r *http.Request) {
	snap, err := h.live.Snapshot(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, livesync.ErrEmptyMatchID) {
			writeError(w, r, http.StatusBadRequest, "missing match id")
			return
		}
		writeError(w, r, http.StatusServiceUnavailable, "live sync unavailable")
		return
	}
	if snap.Info == nil {
		msg := "match info not available"
		if snap.InfoError != "" {
			msg = snap.InfoError
		}
		writeError(w, r, http.StatusNotFound, msg)
		return
	}
	writeJSON(w, r, http.StatusOK, snap.Info)
}

type chatRequest struct {
	Messages []domainchat.Message `json:"messages"`
	Options  struct {
		Concise bool `json:"concise"`
	} `json:"options"`
}

// Chat answers one support-chat turn. Backend failures degrade to the
// apology text with a 200 so the widget always renders a reply.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, r, http.StatusBadRequest, "messages array is required")
		return
	}

	reply, err := h.relay.Respond(r.Context(), req.Messages, chat.Options{Concise: req.Options.Concise})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"response": reply.Text})
}

// Prompt exposes the current system prompt.
func (h *Handler) Prompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"prompt": h.prompts.SystemPrompt(false)})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, err.Error())
	case err != nil:
		h.logInternal(r, "registration failed", err)
		writeError(w, r, http.StatusInternalServerError, "something went wrong, please try again later")
	default:
		writeJSON(w, r, http.StatusCreated, map[string]any{"success": true, "user": u})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNoUser), errors.Is(err, auth.ErrWrongPassword):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	case err != nil:
		h.logInternal(r, "login failed", err)
		writeError(w, r, http.StatusInternalServerError, "something went wrong, please try again later")
	default:
		writeJSON(w, r, http.StatusOK, map[string]any{"user": u, "token": token})
	}
}

func (h *Handler) logInternal(r *http.Request, msg string, err error) {
	logging.Error(logging.FromContext(r.Context(), h.logger), msg, err, "path", r.URL.Path)
}
