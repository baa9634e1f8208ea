// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/MyuRay/ONE-FIT-HERO/internal/app"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/exchange"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/scoring"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/tokens"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/trainers"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/types"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/workout"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to implementations in other
// packages.
type Dependencies interface {
	Connect(ctx context.Context, address string) string
	Disconnect(ctx context.Context)
	Identity() (string, bool)

	CompleteSession(ctx context.Context, in service.SessionInput) (types.SessionResult, error)

	StartWorkout(ctx context.Context, trainerID string, difficulty model.Difficulty) error
	SetPlayback(ctx context.Context, state workout.PlaybackState) error
	PauseWorkout(ctx context.Context) error
	ResumeWorkout(ctx context.Context) error
	WorkoutElapsed(ctx context.Context) (int, error)
	StopWorkout(ctx context.Context) (types.SessionResult, error)
	AbandonWorkout(ctx context.Context) error

	Rankings(ctx context.Context, limit int) []types.RankingEntry
	Rank(ctx context.Context, address string) int
	CheckPrizeTicket(ctx context.Context, address string) bool

	Trainers(ctx context.Context) []types.Trainer
	Badges(ctx context.Context) []types.Badge
	DailyBadges(ctx context.Context) []types.DailyBadge
	Streak(ctx context.Context) int

	TokenAmount(ctx context.Context) types.TokenBalance
	AddTokens(ctx context.Context, amount int) error
	SpendTokens(ctx context.Context, amount int) error

	ExchangeItems(ctx context.Context) []types.ExchangeItem
	ExchangeItem(ctx context.Context, itemID string) (types.ExchangeRecord, error)
	ExchangeHistory(ctx context.Context) []types.ExchangeRecord
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	Stats(ctx context.Context) map[string]any
}

// Server wires HTTP routes for the business API.
type Server struct {
	identityHandler    *IdentityHandler
	sessionsHandler    *SessionsHandler
	workoutHandler     *WorkoutHandler
	leaderboardHandler *LeaderboardHandler
	rankHandler        *RankHandler
	trainersHandler    *TrainersHandler
	badgesHandler      *BadgesHandler
	tokensHandler      *TokensHandler
	exchangeHandler    *ExchangeHandler
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		identityHandler:    NewIdentityHandler(deps),
		sessionsHandler:    NewSessionsHandler(deps),
		workoutHandler:     NewWorkoutHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		rankHandler:        NewRankHandler(deps),
		trainersHandler:    NewTrainersHandler(deps),
		badgesHandler:      NewBadgesHandler(deps),
		tokensHandler:      NewTokensHandler(deps),
		exchangeHandler:    NewExchangeHandler(deps),
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/identity/connect", MetricsMiddleware(s.identityHandler.HandleConnect, "identity_connect"))
	mux.HandleFunc("/identity/disconnect", MetricsMiddleware(s.identityHandler.HandleDisconnect, "identity_disconnect"))
	mux.HandleFunc("/identity", MetricsMiddleware(s.identityHandler.HandleGetIdentity, "identity"))

	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandlePostSession, "sessions"))

	mux.HandleFunc("/workout/start", MetricsMiddleware(s.workoutHandler.HandleStart, "workout_start"))
	mux.HandleFunc("/workout/playback", MetricsMiddleware(s.workoutHandler.HandlePlayback, "workout_playback"))
	mux.HandleFunc("/workout/pause", MetricsMiddleware(s.workoutHandler.HandlePause, "workout_pause"))
	mux.HandleFunc("/workout/resume", MetricsMiddleware(s.workoutHandler.HandleResume, "workout_resume"))
	mux.HandleFunc("/workout/elapsed", MetricsMiddleware(s.workoutHandler.HandleElapsed, "workout_elapsed"))
	mux.HandleFunc("/workout/stop", MetricsMiddleware(s.workoutHandler.HandleStop, "workout_stop"))
	mux.HandleFunc("/workout/abandon", MetricsMiddleware(s.workoutHandler.HandleAbandon, "workout_abandon"))

	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/rank/", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("/prize-ticket/", MetricsMiddleware(s.rankHandler.HandleGetPrizeTicket, "prize_ticket"))

	mux.HandleFunc("/trainers", MetricsMiddleware(s.trainersHandler.HandleGetTrainers, "trainers"))
	mux.HandleFunc("/badges", MetricsMiddleware(s.badgesHandler.HandleGetBadges, "badges"))
	mux.HandleFunc("/badges/daily", MetricsMiddleware(s.badgesHandler.HandleGetDailyBadges, "badges_daily"))
	mux.HandleFunc("/streak", MetricsMiddleware(s.badgesHandler.HandleGetStreak, "streak"))

	mux.HandleFunc("/tokens", MetricsMiddleware(s.tokensHandler.HandleGetTokens, "tokens"))
	mux.HandleFunc("/tokens/grant", MetricsMiddleware(s.tokensHandler.HandleGrant, "tokens_grant"))
	mux.HandleFunc("/tokens/spend", MetricsMiddleware(s.tokensHandler.HandleSpend, "tokens_spend"))

	mux.HandleFunc("/exchange", MetricsMiddleware(s.exchangeHandler.HandleExchange, "exchange"))
	mux.HandleFunc("/exchange/items", MetricsMiddleware(s.exchangeHandler.HandleGetItems, "exchange_items"))
	mux.HandleFunc("/exchange/history", MetricsMiddleware(s.exchangeHandler.HandleGetHistory, "exchange_history"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinel errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIdentityRequired):
		writeError(w, http.StatusUnauthorized, "identity_required", err)
	case errors.Is(err, service.ErrAlreadyCompletedToday):
		writeError(w, http.StatusConflict, "already_completed_today", err)
	case errors.Is(err, tokens.ErrInsufficientBalance):
		writeError(w, http.StatusPaymentRequired, "insufficient_balance", err)
	case errors.Is(err, trainers.ErrUnknownTrainer),
		errors.Is(err, exchange.ErrUnknownItem):
		writeError(w, http.StatusNotFound, "unknown_entity", err)
	case errors.Is(err, exchange.ErrItemUnavailable),
		errors.Is(err, workout.ErrWorkoutActive),
		errors.Is(err, workout.ErrNoActiveWorkout):
		writeError(w, http.StatusConflict, "conflict", err)
	case errors.Is(err, scoring.ErrInvalidDifficulty),
		errors.Is(err, scoring.ErrInvalidRate),
		errors.Is(err, scoring.ErrInvalidElapsed),
		errors.Is(err, workout.ErrInvalidPlayback),
		errors.Is(err, tokens.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "invalid_input", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
