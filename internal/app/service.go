// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MyuRay/ONE-FIT-HERO/internal/adapters/mirror"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/badges"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/daily"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/exchange"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/ledger"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/ranking"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/scoring"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/tokens"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/trainers"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/types"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/workout"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// Default service configuration.
const (
	defaultInitialTokens    = 25000
	defaultReproductionRate = 100
	defaultDriftInterval    = 3 * time.Second
	defaultMirrorQueueSize  = 1024
	defaultRandomSeed       = 42
	driftMin                = 5
	driftSpread             = 25 // drift per tick is in [5,29]
)

// SessionInput carries everything needed to complete one workout
// session.
type SessionInput struct {
	TrainerID        string
	Difficulty       model.Difficulty
	ElapsedSeconds   int
	ReproductionRate float64
	RawAccrual       int
}

// Service implements the API dependencies for the fitness engine. All
// state mutation happens under a single mutex: one session completion,
// token movement or exchange at a time, so observers never see a
// partially applied session.
type Service struct {
	mu sync.Mutex

	// Identity state
	identity  string
	connected bool

	// Core components
	sessions    ledger.Ledger
	accumulator *trainers.Accumulator
	wallet      *tokens.Ledger
	tracker     daily.Tracker
	evaluator   *badges.Evaluator
	market      *exchange.Market
	scorer      scoring.Scorer
	rateSource  workout.RateSource
	seeds       []ranking.Seed
	rankings    []ranking.Entry

	// Active workout clock, nil when idle
	runner       *workout.Runner
	runnerCancel context.CancelFunc

	// Mirror pipeline
	mirrorQueue  *mirror.InMemoryQueue
	mirrorWorker *mirror.Worker
	mirrorSink   mirror.Sink

	// Configuration
	initialTokens    int
	reproductionRate float64
	driftEnabled     bool
	driftInterval    time.Duration
	mirrorQueueSize  int
	seedDemoData     bool
	scoringOpts      []scoring.Option

	now func() time.Time
	rng *rand.Rand

	// State
	started   bool
	stopCh    chan struct{}
	driftDone chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInitialTokens sets the starting token balance.
func WithInitialTokens(amount int) Option {
	return func(s *Service) {
		if amount >= 0 {
			s.initialTokens = amount
		}
	}
}

// WithReproductionRate sets the fixed fidelity percentage used when no
// rate source is wired.
func WithReproductionRate(rate float64) Option {
	return func(s *Service) {
		if rate >= 0 && rate <= 100 {
			s.reproductionRate = rate
		}
	}
}

// WithRateSource sets the reproduction-rate source consulted when a
// tracked workout stops.
func WithRateSource(src workout.RateSource) Option {
	return func(s *Service) {
		if src != nil {
			s.rateSource = src
		}
	}
}

// WithDriftEnabled toggles the cosmetic trainer-score drift loop.
func WithDriftEnabled(enabled bool) Option {
	return func(s *Service) {
		s.driftEnabled = enabled
	}
}

// WithDriftInterval sets the drift loop tick interval.
func WithDriftInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.driftInterval = interval
		}
	}
}

// WithMirrorSink sets the persistence sink for the best-effort mirror
// pipeline. Without a sink mirroring is disabled.
func WithMirrorSink(sink mirror.Sink) Option {
	return func(s *Service) {
		s.mirrorSink = sink
	}
}

// WithMirrorQueueSize sets the capacity of the mirror write queue.
func WithMirrorQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.mirrorQueueSize = size
		}
	}
}

// WithSeedDemoData toggles loading of the demo sessions, daily badges
// and leaderboard seeds on start.
func WithSeedDemoData(enabled bool) Option {
	return func(s *Service) {
		s.seedDemoData = enabled
	}
}

// WithScoringOptions forwards options to the scoring calculator.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(s *Service) {
		s.scoringOpts = append(s.scoringOpts, opts...)
	}
}

// WithClock sets the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand sets the random source used by the drift loop.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		initialTokens:    defaultInitialTokens,
		reproductionRate: defaultReproductionRate,
		driftEnabled:     true,
		driftInterval:    defaultDriftInterval,
		mirrorQueueSize:  defaultMirrorQueueSize,
		seedDemoData:     true,
		now:              time.Now,
		rng:              rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // cosmetic drift, not security-sensitive
		stopCh:           make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting fitness engine...")

	s.sessions = ledger.NewInMemoryLedger()
	s.accumulator = trainers.NewAccumulator(trainers.DefaultCatalog())
	s.wallet = tokens.NewLedger(
		tokens.WithInitialBalance(s.initialTokens),
		tokens.WithClock(s.now),
	)
	s.tracker = daily.NewInMemoryTracker()
	s.evaluator = badges.NewEvaluator(badges.WithClock(s.now))
	s.market = exchange.NewMarket(exchange.WithClock(s.now))
	s.scorer = scoring.NewCalculator(s.scoringOpts...)
	if s.rateSource == nil {
		s.rateSource = workout.NewConstantRate(s.reproductionRate)
	}
	s.seeds = ranking.DefaultSeeds()

	if s.seedDemoData {
		s.loadDemoData(ctx)
	}

	s.rebuildRankingsLocked()
	metrics.UpdateTokenBalance(s.wallet.Balance())

	if s.mirrorSink != nil {
		s.mirrorQueue = mirror.NewInMemoryQueue(mirror.WithCapacity(s.mirrorQueueSize))
		s.mirrorWorker = mirror.NewWorker(s.mirrorQueue, s.mirrorSink)
		go s.mirrorWorker.Run(ctx)
		s.logger.Info(ctx, "mirror pipeline started",
			logger.Int("queueSize", s.mirrorQueueSize),
		)
	}

	if s.driftEnabled {
		s.driftDone = make(chan struct{})
		go s.driftLoop(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "fitness engine started",
		logger.Int("initialTokens", s.initialTokens),
		logger.Bool("driftEnabled", s.driftEnabled),
		logger.Bool("seedDemoData", s.seedDemoData),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}

	s.logger.Info(context.Background(), "stopping fitness engine...")

	runner := s.runner
	cancel := s.runnerCancel
	s.runner = nil
	s.runnerCancel = nil
	s.started = false

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.mu.Unlock()

	// Abandon any in-flight workout without completing it.
	if runner != nil {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = runner.Stop(stopCtx)
		stopCancel()
		if cancel != nil {
			cancel()
		}
		metrics.UpdateWorkoutsActive(0)
	}

	if s.driftDone != nil {
		<-s.driftDone
	}

	if s.mirrorWorker != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = s.mirrorWorker.Shutdown(shutdownCtx)
		shutdownCancel()
	}
	if s.mirrorQueue != nil {
		_ = s.mirrorQueue.Close()
	}
	if s.mirrorSink != nil {
		_ = s.mirrorSink.Close()
	}

	s.logger.Info(context.Background(), "fitness engine stopped")
}

// Connect binds the session to an identity. An empty address falls back
// to the default demo identity.
func (s *Service) Connect(ctx context.Context, address string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if address == "" {
		address = model.DefaultIdentity
	}
	s.identity = address
	s.connected = true
	s.rebuildRankingsLocked()

	s.logger.Info(ctx, "identity connected", logger.String("address", address))
	return address
}

// Disconnect clears the bound identity.
func (s *Service) Disconnect(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info(ctx, "identity disconnected", logger.String("address", s.identity))
	s.identity = ""
	s.connected = false
	s.rebuildRankingsLocked()
}

// Identity returns the bound address and whether one is connected.
func (s *Service) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.connected
}

// CompleteSession runs the full completion flow for one workout
// session: validate, claim today's badge, score, append to the ledger,
// accumulate trainer totals, credit tokens, rebuild the leaderboard and
// re-evaluate badges. The flow is atomic under the service mutex; a
// failure after the daily claim releases the claim so the day can be
// retried.
func (s *Service) CompleteSession(ctx context.Context, in SessionInput) (types.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeSessionLocked(ctx, in)
}

func (s *Service) completeSessionLocked(ctx context.Context, in SessionInput) (types.SessionResult, error) {
	if !s.started {
		return types.SessionResult{}, ErrNotStarted
	}
	if !s.connected || s.identity == "" {
		metrics.RecordSessionRejected("identity_required")
		return types.SessionResult{}, ErrIdentityRequired
	}
	if !in.Difficulty.Valid() {
		metrics.RecordSessionRejected("invalid_difficulty")
		return types.SessionResult{}, fmt.Errorf("%w: %q", scoring.ErrInvalidDifficulty, string(in.Difficulty))
	}
	if !s.accumulator.Known(in.TrainerID) {
		metrics.RecordSessionRejected("unknown_trainer")
		return types.SessionResult{}, fmt.Errorf("%w: %s", trainers.ErrUnknownTrainer, in.TrainerID)
	}

	now := s.now()
	today := model.DayOf(now)
	badge := daily.Badge{
		ID:        "badge-daily-" + uuid.NewString(),
		Identity:  s.identity,
		Date:      today,
		Timestamp: now,
	}
	if s.tracker.SeenAndRecord(ctx, badge) {
		metrics.RecordSessionRejected("already_completed_today")
		return types.SessionResult{}, fmt.Errorf("%w: %s", ErrAlreadyCompletedToday, today)
	}

	result, err := s.scorer.Score(ctx, scoring.Input{
		Difficulty:        in.Difficulty,
		ElapsedSeconds:    in.ElapsedSeconds,
		ReproductionRate:  in.ReproductionRate,
		RawTrainerAccrual: in.RawAccrual,
	})
	if err != nil {
		s.tracker.Unrecord(ctx, s.identity, today)
		metrics.RecordSessionRejected("invalid_input")
		return types.SessionResult{}, fmt.Errorf("score session: %w", err)
	}

	session := model.WorkoutSession{
		ID:              "session-" + uuid.NewString(),
		Identity:        s.identity,
		TrainerID:       in.TrainerID,
		Difficulty:      in.Difficulty,
		UserScore:       result.UserScore,
		TrainerScore:    result.TrainerScoreIncrement,
		TokensEarned:    result.TokensEarned,
		CaloriesBurned:  result.CaloriesBurned,
		DurationMinutes: result.DurationMinutes,
		Timestamp:       now,
		Date:            today,
	}

	if err := s.sessions.Append(ctx, session); err != nil {
		s.tracker.Unrecord(ctx, s.identity, today)
		metrics.RecordSessionRejected("ledger_append")
		return types.SessionResult{}, fmt.Errorf("append session: %w", err)
	}
	if err := s.accumulator.Apply(ctx, session); err != nil {
		// Apply only fails on an unknown trainer, which the Known
		// check above rules out. If the accumulator ever grows other
		// failure modes, the appended session must be compensated
		// here too or the ledger is left with partial state.
		s.tracker.Unrecord(ctx, s.identity, today)
		metrics.RecordSessionRejected("accumulate")
		return types.SessionResult{}, fmt.Errorf("accumulate session: %w", err)
	}

	// First completion of the day boosts the trainer's display stats.
	_ = s.accumulator.BoostStats(ctx, in.TrainerID)

	if err := s.wallet.Credit(result.TokensEarned); err != nil {
		s.logger.Error(ctx, "token credit failed",
			logger.Error(err),
			logger.Int("amount", result.TokensEarned),
		)
	} else {
		metrics.RecordTokensEarned(result.TokensEarned)
	}
	metrics.UpdateTokenBalance(s.wallet.Balance())

	s.rebuildRankingsLocked()
	s.evaluateBadgesLocked(now)

	metrics.RecordSessionCompleted()
	s.enqueueMirror(ctx, mirror.SessionRecord(session))
	s.enqueueMirror(ctx, mirror.BadgeRecord(badge))

	s.logger.Info(ctx, "session completed",
		logger.String("sessionID", session.ID),
		logger.String("trainerID", session.TrainerID),
		logger.String("difficulty", string(session.Difficulty)),
		logger.Int("userScore", session.UserScore),
		logger.Int("tokensEarned", session.TokensEarned),
	)

	return types.SessionResult{
		SessionID:             session.ID,
		UserScore:             result.UserScore,
		TrainerScoreIncrement: result.TrainerScoreIncrement,
		TokensEarned:          result.TokensEarned,
		CaloriesBurned:        result.CaloriesBurned,
		DurationMinutes:       result.DurationMinutes,
		DailyBadgeGranted:     true,
	}, nil
}

// StartWorkout starts the workout clock for one trainer. Only one
// workout may run at a time.
func (s *Service) StartWorkout(ctx context.Context, trainerID string, difficulty model.Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if !s.connected || s.identity == "" {
		return ErrIdentityRequired
	}
	if s.runner != nil {
		return workout.ErrWorkoutActive
	}
	if !difficulty.Valid() {
		return fmt.Errorf("%w: %q", scoring.ErrInvalidDifficulty, string(difficulty))
	}
	if !s.accumulator.Known(trainerID) {
		return fmt.Errorf("%w: %s", trainers.ErrUnknownTrainer, trainerID)
	}
	if s.tracker.Seen(ctx, s.identity, model.DayOf(s.now())) {
		return fmt.Errorf("%w: %s", ErrAlreadyCompletedToday, model.DayOf(s.now()))
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.runner = workout.NewRunner(trainerID, difficulty)
	s.runnerCancel = cancel
	go s.runner.Run(runCtx)

	metrics.UpdateWorkoutsActive(1)
	s.logger.Info(ctx, "workout started",
		logger.String("trainerID", trainerID),
		logger.String("difficulty", string(difficulty)),
	)
	return nil
}

// SetPlayback forwards the coaching-video playback signal to the
// active workout clock.
func (s *Service) SetPlayback(_ context.Context, state workout.PlaybackState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return workout.ErrNoActiveWorkout
	}
	return s.runner.SetPlayback(state)
}

// PauseWorkout suspends the active workout clock.
func (s *Service) PauseWorkout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return workout.ErrNoActiveWorkout
	}
	s.runner.Pause()
	return nil
}

// ResumeWorkout restarts the active workout clock.
func (s *Service) ResumeWorkout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return workout.ErrNoActiveWorkout
	}
	s.runner.Resume()
	return nil
}

// WorkoutElapsed returns the active seconds of the running workout.
func (s *Service) WorkoutElapsed(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return 0, workout.ErrNoActiveWorkout
	}
	return s.runner.Elapsed(), nil
}

// StopWorkout halts the active workout clock and completes the session
// from its final snapshot, consulting the rate source for the
// reproduction percentage.
func (s *Service) StopWorkout(ctx context.Context) (types.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return types.SessionResult{}, workout.ErrNoActiveWorkout
	}

	snap, err := s.runner.Stop(ctx)
	if s.runnerCancel != nil {
		s.runnerCancel()
	}
	s.runner = nil
	s.runnerCancel = nil
	metrics.UpdateWorkoutsActive(0)
	if err != nil {
		return types.SessionResult{}, fmt.Errorf("stop workout: %w", err)
	}

	return s.completeSessionLocked(ctx, SessionInput{
		TrainerID:        snap.TrainerID,
		Difficulty:       snap.Difficulty,
		ElapsedSeconds:   snap.ElapsedSeconds,
		ReproductionRate: s.rateSource.Rate(ctx),
		RawAccrual:       snap.RawAccrual,
	})
}

// AbandonWorkout halts and discards the active workout clock without
// completing a session. No score, tokens or daily badge are awarded
// and the day stays claimable.
func (s *Service) AbandonWorkout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil {
		return workout.ErrNoActiveWorkout
	}

	snap, _ := s.runner.Stop(ctx)
	if s.runnerCancel != nil {
		s.runnerCancel()
	}
	s.runner = nil
	s.runnerCancel = nil
	metrics.UpdateWorkoutsActive(0)

	s.logger.Info(ctx, "workout abandoned",
		logger.String("trainerID", snap.TrainerID),
		logger.Int("elapsedSeconds", snap.ElapsedSeconds),
	)
	return nil
}

// TokenAmount returns the current token balance.
func (s *Service) TokenAmount(context.Context) types.TokenBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.TokenBalance{
		Amount:      s.wallet.Balance(),
		LastUpdated: s.wallet.LastUpdated(),
	}
}

// AddTokens credits tokens outside the session flow, for promotional
// grants.
func (s *Service) AddTokens(ctx context.Context, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wallet.Credit(amount); err != nil {
		return err
	}
	metrics.RecordTokensEarned(amount)
	metrics.UpdateTokenBalance(s.wallet.Balance())
	s.logger.Info(ctx, "tokens granted", logger.Int("amount", amount))
	return nil
}

// SpendTokens debits tokens if the balance covers the amount.
func (s *Service) SpendTokens(ctx context.Context, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wallet.Debit(amount); err != nil {
		return err
	}
	metrics.RecordTokensSpent(amount)
	metrics.UpdateTokenBalance(s.wallet.Balance())
	s.logger.Info(ctx, "tokens spent", logger.Int("amount", amount))
	return nil
}

// ExchangeItems returns the exchange catalog.
func (s *Service) ExchangeItems(context.Context) []types.ExchangeItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.market.Items()
	out := make([]types.ExchangeItem, 0, len(items))
	for _, it := range items {
		out = append(out, types.ExchangeItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Type:        string(it.Type),
			TokenCost:   it.TokenCost,
			Available:   it.Available,
		})
	}
	return out
}

// ExchangeItem atomically trades tokens for one catalog item.
func (s *Service) ExchangeItem(ctx context.Context, itemID string) (types.ExchangeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.market.Exchange(ctx, itemID, s.wallet)
	if err != nil {
		metrics.RecordExchangeRejected()
		return types.ExchangeRecord{}, err
	}

	metrics.RecordExchange()
	metrics.RecordTokensSpent(rec.TokenCost)
	metrics.UpdateTokenBalance(s.wallet.Balance())
	s.evaluateBadgesLocked(s.now())
	s.enqueueMirror(ctx, mirror.ExchangeRecord(rec))

	s.logger.Info(ctx, "item exchanged",
		logger.String("itemID", rec.ItemID),
		logger.Int("tokenCost", rec.TokenCost),
	)

	return types.ExchangeRecord{
		ID:        rec.ID,
		ItemID:    rec.ItemID,
		ItemName:  rec.ItemName,
		TokenCost: rec.TokenCost,
		Timestamp: rec.Timestamp,
	}, nil
}

// ExchangeHistory returns successful exchanges, oldest first.
func (s *Service) ExchangeHistory(context.Context) []types.ExchangeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	hist := s.market.History()
	out := make([]types.ExchangeRecord, 0, len(hist))
	for _, rec := range hist {
		out = append(out, types.ExchangeRecord{
			ID:        rec.ID,
			ItemID:    rec.ItemID,
			ItemName:  rec.ItemName,
			TokenCost: rec.TokenCost,
			Timestamp: rec.Timestamp,
		})
	}
	return out
}

// Trainers returns the trainer roster with the cosmetic drift overlay.
func (s *Service) Trainers(context.Context) []types.Trainer {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.accumulator.ListLive()
	out := make([]types.Trainer, 0, len(list))
	for _, t := range list {
		out = append(out, types.Trainer{
			ID:           t.ID,
			Name:         t.Name,
			Power:        t.Power,
			Spirit:       t.Spirit,
			Flexibility:  t.Flexibility,
			Description:  t.Description,
			UserScore:    t.UserScore,
			TrainerScore: t.TrainerScore,
		})
	}
	return out
}

// Rankings returns the top leaderboard rows, at most limit entries.
// A non-positive limit returns the full board.
func (s *Service) Rankings(_ context.Context, limit int) []types.RankingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.rankings
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	out := make([]types.RankingEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.RankingEntry{
			Rank:           e.Rank,
			Address:        e.Identity,
			TotalWorkouts:  e.TotalWorkouts,
			Score:          e.Score,
			HasPrizeTicket: e.HasPrizeTicket,
		})
	}
	return out
}

// Rank returns the leaderboard rank of an address, or 0 when absent.
func (s *Service) Rank(_ context.Context, address string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ranking.RankOf(s.rankings, address)
}

// CheckPrizeTicket reports whether an address currently holds a
// top-three prize ticket.
func (s *Service) CheckPrizeTicket(_ context.Context, address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.rankings {
		if e.Identity == address {
			return e.HasPrizeTicket
		}
	}
	return false
}

// Badges returns the evaluated badge registry for the bound identity.
func (s *Service) Badges(context.Context) []types.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := s.evaluator.Evaluate(s.badgeStateLocked(s.now()))
	out := make([]types.Badge, 0, len(statuses))
	for _, st := range statuses {
		b := types.Badge{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
			Emoji:       st.Emoji,
			Rarity:      string(st.Rarity),
			Kind:        string(st.Kind),
			Unlocked:    st.Unlocked,
			Progress:    st.Progress,
			MaxProgress: st.MaxProgress,
		}
		if !st.GrantedAt.IsZero() {
			granted := st.GrantedAt
			b.GrantedAt = &granted
		}
		out = append(out, b)
	}
	return out
}

// DailyBadges returns the bound identity's daily completion markers.
func (s *Service) DailyBadges(ctx context.Context) []types.DailyBadge {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tracker.Badges(ctx, s.activeIdentityLocked())
	out := make([]types.DailyBadge, 0, len(list))
	for _, b := range list {
		out = append(out, types.DailyBadge{
			ID:        b.ID,
			Date:      b.Date,
			Timestamp: b.Timestamp,
		})
	}
	return out
}

// Streak returns the bound identity's current consecutive-day count.
func (s *Service) Streak(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return daily.Streak(s.tracker.Badges(ctx, s.activeIdentityLocked()), s.now())
}

// Stats returns operational counters for the stats endpoint.
func (s *Service) Stats(ctx context.Context) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]any{
		"sessions":      s.sessions.Count(ctx),
		"identities":    len(s.rankings),
		"token_balance": s.wallet.Balance(),
		"daily_badges":  s.tracker.Size(),
		"exchanges":     len(s.market.History()),
		"started":       s.started,
	}
	if s.mirrorQueue != nil {
		stats["mirror_queue"] = s.mirrorQueue.Len(ctx)
	}
	return stats
}

// activeIdentityLocked returns the bound address, or the default demo
// identity when none is connected.
func (s *Service) activeIdentityLocked() string {
	if s.identity != "" {
		return s.identity
	}
	return model.DefaultIdentity
}

// rebuildRankingsLocked recomputes the full leaderboard from the
// ledger; the previous projection is discarded.
func (s *Service) rebuildRankingsLocked() {
	start := time.Now()
	s.rankings = ranking.Build(s.sessions.All(context.Background()), s.seeds, s.identity)
	metrics.RecordLeaderboardRebuild(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.UpdateLeaderboardIdentities(len(s.rankings))
}

// evaluateBadgesLocked re-derives the badge set and records any newly
// unlocked badges in the metrics.
func (s *Service) evaluateBadgesLocked(now time.Time) {
	before := now.Add(-time.Nanosecond)
	s.evaluator.Evaluate(s.badgeStateLocked(now))
	for _, id := range s.evaluator.NewlyGranted(before) {
		metrics.RecordBadgeUnlocked(id)
	}
}

// badgeStateLocked derives the badge evaluation input from the ledger,
// the daily tracker and the current leaderboard.
func (s *Service) badgeStateLocked(now time.Time) badges.State {
	ctx := context.Background()
	identity := s.activeIdentityLocked()
	sessions := s.sessions.Query(ctx, identity)

	totalScore := 0
	perTrainer := make(map[string]int)
	for _, sess := range sessions {
		// Same inclusive score the leaderboard ranks by.
		totalScore += sess.UserScore + sess.TrainerScore
		perTrainer[sess.TrainerID] += sess.UserScore
	}

	contributions := make([]badges.Contribution, 0, len(s.accumulator.IDs()))
	for _, id := range s.accumulator.IDs() {
		contributions = append(contributions, badges.Contribution{
			TrainerID: id,
			Amount:    perTrainer[id],
		})
	}

	return badges.State{
		ConsecutiveDays: daily.Streak(s.tracker.Badges(ctx, identity), now),
		TotalWorkouts:   len(sessions),
		TotalScore:      totalScore,
		Rank:            ranking.RankOf(s.rankings, identity),
		Contributions:   contributions,
	}
}

// enqueueMirror submits a record to the mirror pipeline. Mirroring is
// best effort: a full queue drops the record and core state is never
// touched.
func (s *Service) enqueueMirror(ctx context.Context, r mirror.Record) {
	if s.mirrorQueue == nil {
		return
	}
	if !s.mirrorQueue.Enqueue(ctx, r) {
		s.logger.Warn(ctx, "mirror queue full, record dropped",
			logger.String("kind", string(r.Kind)),
		)
	}
	metrics.UpdateMirrorQueueSize(s.mirrorQueue.Len(ctx))
}
