// Package session is the host shell around the progression engine. It reads
// the clock, loads and persists the state blob, consults the dictionary and
// forwards notifications to the inbox. One Service owns one player's state;
// its mutex serialises callers such as concurrent HTTP handlers.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/globallingo/lingo/internal/app/lookup"
	"github.com/globallingo/lingo/internal/app/progression"
	"github.com/globallingo/lingo/internal/domain"
	"github.com/globallingo/lingo/internal/infra/metrics"
)

// StateKey is the store key holding the serialized ProgressionState.
const StateKey = "lingo:state"

// Store is a blob key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, blob []byte) error
}

// Clock supplies wall-clock time. The local calendar day of Now is the
// login day.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Dictionary is the offline translation lookup.
type Dictionary interface {
	Translate(text string, to domain.LanguageCode) lookup.Result
}

// Service coordinates one player's progression.
type Service struct {
	mu     sync.Mutex
	store  Store
	inbox  Inbox
	dict   Dictionary
	clock  Clock
	log    *zap.Logger
	rng    *rand.Rand
	engine *progression.Engine // nil until the first load
}

// New creates a session service. A nil clock uses the system clock and a
// nil logger discards output.
func New(store Store, inbox Inbox, dict Dictionary, clock Clock, log *zap.Logger) *Service {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store: store,
		inbox: inbox,
		dict:  dict,
		clock: clock,
		log:   log,
		rng:   rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// ─── Views ──────────────────────────────────────────────────────────────────

// Summary is the status view of the player.
type Summary struct {
	Profile           domain.PlayerProfile `json:"profile"`
	XP                int                  `json:"xp"`
	Level             int                  `json:"level"`
	LevelProgress     float64              `json:"level_progress"`
	NextLevelXP       int                  `json:"next_level_xp"`
	Streak            domain.StreakState   `json:"streak"`
	DailyTranslations int                  `json:"daily_translations"`
	DailyGoal         int                  `json:"daily_goal"`
	TotalTranslations int                  `json:"total_translations"`
	BadgesEarned      int                  `json:"badges_earned"`
	BadgesTotal       int                  `json:"badges_total"`
	LanguagesUnlocked int                  `json:"languages_unlocked"`
	LanguagesTotal    int                  `json:"languages_total"`
}

// LoginResult is the outcome of a daily login.
type LoginResult struct {
	XPGained      int                   `json:"xp_gained"`
	Streak        domain.StreakState    `json:"streak"`
	Notifications []domain.Notification `json:"notifications"`
}

// TranslateResult is the outcome of a recorded translation.
type TranslateResult struct {
	Record        domain.TranslationRecord `json:"record"`
	Found         bool                     `json:"found"`
	XPGained      int                      `json:"xp_gained"`
	Quip          string                   `json:"quip"`
	Notifications []domain.Notification    `json:"notifications"`
}

// BadgeView is a catalog badge with the player's earned flag.
type BadgeView struct {
	domain.Badge
	Earned bool `json:"earned"`
}

// LanguageView is a catalog language with the player's unlocked flag.
type LanguageView struct {
	domain.Language
	Unlocked bool `json:"unlocked"`
}

// AvatarView is a catalog avatar with the player's unlocked flag.
type AvatarView struct {
	ID       domain.AvatarID `json:"id"`
	Unlocked bool            `json:"unlocked"`
}

// ─── Loading ────────────────────────────────────────────────────────────────

// Load reads the state from the store, replacing what is in memory, and
// runs the day's check-in for a set-up player. restored is false on a first
// run or when the stored blob was unreadable.
func (s *Service) Load(ctx context.Context) (restored bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored, err = s.load(ctx)
	if err != nil {
		return false, err
	}
	if s.engine.State().HasProfile() {
		if _, err := s.checkIn(ctx); err != nil {
			return restored, err
		}
	}
	return restored, nil
}

func (s *Service) load(ctx context.Context) (bool, error) {
	start := time.Now()
	blob, ok, err := s.store.Get(ctx, StateKey)
	metrics.StoreLatency.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get").Inc()
		s.log.Error("load state", zap.Error(err))
		return false, fmt.Errorf("load state: %w", err)
	}

	state, restored := progression.Deserialize(blob)
	if ok && !restored {
		metrics.StateResets.Inc()
		s.log.Warn("stored state unreadable, starting fresh", zap.Int("bytes", len(blob)))
	}
	s.engine = progression.NewFromState(state)
	s.observe(state)
	s.log.Debug("state loaded", zap.Bool("restored", restored), zap.Int("xp", state.XP))
	return restored, nil
}

// sync re-reads the blob before every operation. The store is the source
// of truth: a one-shot CLI process may have written it since the last call.
func (s *Service) sync(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

// requireProfile syncs and requires a set-up profile.
func (s *Service) requireProfile(ctx context.Context) error {
	if err := s.sync(ctx); err != nil {
		return err
	}
	if !s.engine.State().HasProfile() {
		return domain.ErrNoProfile
	}
	return nil
}

// player syncs, requires a profile and runs the day's check-in.
func (s *Service) player(ctx context.Context) (LoginResult, error) {
	if err := s.requireProfile(ctx); err != nil {
		return LoginResult{}, err
	}
	return s.checkIn(ctx)
}

// checkIn evaluates the daily login on the first operation of a calendar
// day. Later calls the same day return the current streak and change
// nothing.
func (s *Service) checkIn(ctx context.Context) (LoginResult, error) {
	before := s.engine.State()
	today := s.today()
	if before.Streak.LastLoginDate == today {
		return LoginResult{Streak: before.Streak}, nil
	}

	var notifs []domain.Notification
	err := s.commit(ctx, func(e *progression.Engine) error {
		notifs = e.EvaluateDailyLogin(today)
		return nil
	})
	if err != nil {
		return LoginResult{}, err
	}

	after := s.engine.State()
	res := LoginResult{
		XPGained:      after.XP - before.XP,
		Streak:        after.Streak,
		Notifications: notifs,
	}

	outcome := loginOutcome(before, today, notifs)
	metrics.Logins.WithLabelValues(outcome).Inc()
	if res.XPGained > 0 {
		metrics.XPAwarded.WithLabelValues("login").Add(float64(res.XPGained))
	}
	s.log.Info("daily login",
		zap.String("outcome", outcome),
		zap.Stringer("date", today),
		zap.Int("streak", after.Streak.Days),
		zap.Int("xp_gained", res.XPGained),
	)
	s.deliver(ctx, notifs)
	return res, nil
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// commit runs mutate against the engine and persists the result. On any
// error the in-memory state is rolled back, so memory never runs ahead of
// the store.
func (s *Service) commit(ctx context.Context, mutate func(e *progression.Engine) error) error {
	before := s.engine.State()
	if err := mutate(s.engine); err != nil {
		s.engine = progression.NewFromState(before)
		return err
	}
	if err := s.persist(ctx); err != nil {
		s.engine = progression.NewFromState(before)
		return err
	}
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	blob, err := s.engine.Serialize()
	if err != nil {
		return err
	}
	start := time.Now()
	err = s.store.Set(ctx, StateKey, blob)
	metrics.StoreLatency.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrors.WithLabelValues("set").Inc()
		s.log.Error("save state", zap.Error(err))
		return fmt.Errorf("save state: %w", err)
	}
	s.observe(s.engine.State())
	return nil
}

func (s *Service) observe(state domain.ProgressionState) {
	metrics.PlayerXP.Set(float64(state.XP))
	metrics.StreakDays.Set(float64(state.Streak.Days))
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.clock.Now())
}

// Setup performs first-run setup.
func (s *Service) Setup(ctx context.Context, name string, avatar domain.AvatarID) (Summary, []domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(ctx); err != nil {
		return Summary{}, nil, err
	}

	var notifs []domain.Notification
	err := s.commit(ctx, func(e *progression.Engine) error {
		var err error
		notifs, err = e.SetupProfile(name, avatar, s.today())
		return err
	})
	if err != nil {
		return Summary{}, nil, err
	}

	state := s.engine.State()
	metrics.XPAwarded.WithLabelValues("welcome").Add(float64(state.XP))
	s.log.Info("profile created", zap.String("name", state.Profile.Name), zap.String("avatar", string(state.Profile.Avatar)))
	s.deliver(ctx, notifs)
	return summarize(state), notifs, nil
}

// UpdateProfile changes name and/or avatar; empty values keep the current.
func (s *Service) UpdateProfile(ctx context.Context, name string, avatar domain.AvatarID) (domain.PlayerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(ctx); err != nil {
		return domain.PlayerProfile{}, err
	}
	err := s.commit(ctx, func(e *progression.Engine) error {
		return e.UpdateProfile(name, avatar)
	})
	if err != nil {
		return domain.PlayerProfile{}, err
	}

	profile := s.engine.State().Profile
	s.log.Info("profile updated", zap.String("name", profile.Name), zap.String("avatar", string(profile.Avatar)))
	return profile, nil
}

// Login evaluates the daily login for today. The first operation of a day
// already checks in, so an explicit Login later that day reports the
// current streak with no XP.
func (s *Service) Login(ctx context.Context) (LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireProfile(ctx); err != nil {
		return LoginResult{}, err
	}
	if s.engine.State().Streak.LastLoginDate == s.today() {
		metrics.Logins.WithLabelValues("same_day").Inc()
	}
	return s.checkIn(ctx)
}

func loginOutcome(before domain.ProgressionState, today domain.Date, notifs []domain.Notification) string {
	if before.Streak.LastLoginDate == today {
		return "same_day"
	}
	for _, n := range notifs {
		switch n.Type {
		case domain.NotifyStreak:
			return "consecutive"
		case domain.NotifyStreakReset:
			return "reset"
		}
	}
	return "first"
}

// Translate looks text up, records the translation and persists it.
func (s *Service) Translate(ctx context.Context, from, to domain.LanguageCode, text string) (TranslateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.player(ctx)
	if err != nil {
		return TranslateResult{}, err
	}

	result := s.dict.Translate(text, to)
	at := s.clock.Now()

	var (
		gained int
		notifs []domain.Notification
	)
	err = s.commit(ctx, func(e *progression.Engine) error {
		var err error
		gained, notifs, err = e.RecordTranslation(from, to, text, result.Text, at)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			metrics.TranslationsRejected.Inc()
		}
		return TranslateResult{}, err
	}

	log := s.engine.State().TranslationLog
	record := log[len(log)-1]

	metrics.Translations.WithLabelValues(string(to), strconv.FormatBool(result.Found)).Inc()
	metrics.XPAwarded.WithLabelValues("translation").Add(float64(gained))
	s.log.Info("translation recorded",
		zap.String("id", record.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Bool("found", result.Found),
		zap.Int("xp_gained", gained),
	)
	s.deliver(ctx, notifs)

	return TranslateResult{
		Record:        record,
		Found:         result.Found,
		XPGained:      gained,
		Quip:          lookup.Quip(record.SourceText, record.ResultText, s.rng),
		Notifications: append(login.Notifications, notifs...),
	}, nil
}

// ─── Queries ────────────────────────────────────────────────────────────────

// State returns a copy of the player's state.
func (s *Service) State(ctx context.Context) (domain.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(ctx); err != nil {
		return domain.ProgressionState{}, err
	}
	return s.engine.State(), nil
}

// Summary returns the status view.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(ctx); err != nil {
		return Summary{}, err
	}
	return summarize(s.engine.State()), nil
}

func summarize(state domain.ProgressionState) Summary {
	level := progression.LevelForXP(state.XP)
	next := progression.XPForLevel(level + 1)
	if level >= progression.MaxLevel {
		next = progression.XPForLevel(level)
	}
	return Summary{
		Profile:           state.Profile,
		XP:                state.XP,
		Level:             level,
		LevelProgress:     progression.LevelProgress(state.XP),
		NextLevelXP:       next,
		Streak:            state.Streak,
		DailyTranslations: state.DailyTranslationCount,
		DailyGoal:         progression.DailyGoal,
		TotalTranslations: len(state.TranslationLog),
		BadgesEarned:      len(state.EarnedBadges),
		BadgesTotal:       len(progression.AllBadges()),
		LanguagesUnlocked: len(state.UnlockedLanguages),
		LanguagesTotal:    len(progression.AllLanguages()),
	}
}

// Log returns up to limit translation records, most recent first.
// A limit of zero or less returns all of them.
func (s *Service) Log(ctx context.Context, limit int) ([]domain.TranslationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(ctx); err != nil {
		return nil, err
	}
	log := s.engine.State().TranslationLog
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]domain.TranslationRecord, 0, limit)
	for i := len(log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, log[i])
	}
	return out, nil
}

// Badges returns the badge catalog with earned flags.
func (s *Service) Badges(ctx context.Context) ([]BadgeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(ctx); err != nil {
		return nil, err
	}
	state := s.engine.State()
	var out []BadgeView
	for _, b := range progression.AllBadges() {
		out = append(out, BadgeView{Badge: b, Earned: state.HasBadge(b.ID)})
	}
	return out, nil
}

// Languages returns the language catalog with unlocked flags.
func (s *Service) Languages(ctx context.Context) ([]LanguageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(ctx); err != nil {
		return nil, err
	}
	state := s.engine.State()
	var out []LanguageView
	for _, l := range progression.AllLanguages() {
		out = append(out, LanguageView{Language: l, Unlocked: state.HasLanguage(l.Code)})
	}
	return out, nil
}

// Avatars returns the avatar catalog with unlocked flags. Works before
// setup so the avatar can be picked.
func (s *Service) Avatars(ctx context.Context) ([]AvatarView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sync(ctx); err != nil {
		return nil, err
	}
	state := s.engine.State()
	var out []AvatarView
	for _, group := range [][]domain.AvatarID{progression.StarterAvatars, progression.UnlockableAvatars} {
		for _, a := range group {
			out = append(out, AvatarView{ID: a, Unlocked: state.HasAvatar(a)})
		}
	}
	return out, nil
}
