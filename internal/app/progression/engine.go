// Package progression implements the Global Lingo progression engine:
// profile, XP, daily streak, one-time unlocks, derived badges and the
// translation log. The engine is a pure state machine. It never reads the
// clock, touches storage or displays anything; the host shell supplies
// dates and timestamps, persists Serialize output and shows the returned
// notifications.
package progression

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/globallingo/lingo/internal/domain"
)

const (
	// UnlockXP is the XP at which the extended catalog unlocks.
	UnlockXP = 100

	// DailyGoal is the daily translation target shown to the player.
	// Display only: RecordTranslation does not enforce it.
	DailyGoal = 2

	shortTextXP   = 5
	longTextXP    = 10
	longTextWords = 4
)

// Engine owns one ProgressionState. Not safe for concurrent use; the
// owning session serialises access.
type Engine struct {
	state domain.ProgressionState
	newID func() string
}

// New creates an engine holding the fresh-start state.
func New() *Engine {
	return NewFromState(DefaultState())
}

// NewFromState creates an engine around an existing state.
func NewFromState(s domain.ProgressionState) *Engine {
	return &Engine{state: s.Clone(), newID: uuid.NewString}
}

// DefaultState returns the first-run aggregate: no profile, zero XP,
// starter languages and avatars.
func DefaultState() domain.ProgressionState {
	return domain.ProgressionState{
		UnlockedLanguages: languageCodes(StarterLanguages),
		UnlockedAvatars:   append([]domain.AvatarID(nil), StarterAvatars...),
	}
}

// State returns a copy of the current aggregate.
func (e *Engine) State() domain.ProgressionState {
	return e.state.Clone()
}

// ─── Profile ────────────────────────────────────────────────────────────────

// SetupProfile performs first-run setup on today: profile, streak day 1 and
// the welcome XP. Returns ErrInvalidInput for an empty name or a locked
// avatar, ErrProfileExists if setup already happened.
func (e *Engine) SetupProfile(name string, avatar domain.AvatarID, today domain.Date) ([]domain.Notification, error) {
	if e.state.HasProfile() {
		return nil, domain.ErrProfileExists
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}
	if !e.state.HasAvatar(avatar) {
		return nil, fmt.Errorf("%w: avatar %q is locked", domain.ErrInvalidInput, avatar)
	}
	if today.IsZero() {
		return nil, fmt.Errorf("%w: setup date is required", domain.ErrInvalidInput)
	}

	e.state.Profile = domain.PlayerProfile{Name: name, Avatar: avatar}
	e.state.Streak.Days = 1
	e.state.Streak.LastLoginDate = today
	e.state.Streak.LongestDays = max(e.state.Streak.LongestDays, 1)
	e.state.DailyTranslationCount = 0
	e.state.XP += welcomeXP

	return e.reevaluate(), nil
}

// UpdateProfile changes name and/or avatar. Empty values keep the current
// ones; a non-empty avatar must be unlocked.
func (e *Engine) UpdateProfile(name string, avatar domain.AvatarID) error {
	if !e.state.HasProfile() {
		return domain.ErrNoProfile
	}
	if avatar != "" && !e.state.HasAvatar(avatar) {
		return fmt.Errorf("%w: avatar %q is locked", domain.ErrInvalidInput, avatar)
	}
	if name = strings.TrimSpace(name); name != "" {
		e.state.Profile.Name = name
	}
	if avatar != "" {
		e.state.Profile.Avatar = avatar
	}
	return nil
}

// ─── Daily Login ────────────────────────────────────────────────────────────

// EvaluateDailyLogin records the day's first session start.
// Same date as the last login: no-op. Next day: streak +1 and the login
// bonus. Otherwise: streak restarts at 1 with 10 XP. The first login of a
// new day also resets the daily translation count.
func (e *Engine) EvaluateDailyLogin(today domain.Date) []domain.Notification {
	award, notif := advanceStreak(&e.state.Streak, today)
	if award == 0 {
		return nil
	}

	e.state.XP += award
	e.state.DailyTranslationCount = 0

	var notifs []domain.Notification
	if notif != nil {
		notifs = append(notifs, *notif)
	}
	return append(notifs, e.reevaluate()...)
}

// ─── Translations ───────────────────────────────────────────────────────────

// RecordTranslation logs a translation and awards XP: 10 for four or more
// words of source text, 5 otherwise. Nothing is mutated on error.
func (e *Engine) RecordTranslation(from, to domain.LanguageCode, source, result string, at time.Time) (int, []domain.Notification, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return 0, nil, fmt.Errorf("%w: text to translate is empty", domain.ErrInvalidInput)
	case from == to:
		return 0, nil, fmt.Errorf("%w: source and target language are both %q", domain.ErrInvalidInput, from)
	case !e.state.HasLanguage(from):
		return 0, nil, fmt.Errorf("%w: language %q is locked", domain.ErrInvalidInput, from)
	case !e.state.HasLanguage(to):
		return 0, nil, fmt.Errorf("%w: language %q is locked", domain.ErrInvalidInput, to)
	}

	gained := TranslationXP(source)
	e.state.XP += gained
	e.state.DailyTranslationCount++
	e.state.TranslationLog = append(e.state.TranslationLog, domain.TranslationRecord{
		ID:           e.newID(),
		Timestamp:    at.Round(0).UTC(),
		FromLanguage: from,
		ToLanguage:   to,
		SourceText:   source,
		ResultText:   result,
	})

	return gained, e.reevaluate(), nil
}

// TranslationXP returns the XP a source text is worth.
func TranslationXP(source string) int {
	if len(strings.Fields(source)) >= longTextWords {
		return longTextXP
	}
	return shortTextXP
}

// ─── Unlocks & Badges ───────────────────────────────────────────────────────

// EvaluateUnlocks grants the extended languages and the first six
// unlockable avatars once XP reaches UnlockXP. The guard is "still at the
// starter set", so repeated evaluation never fires twice.
func (e *Engine) EvaluateUnlocks() []domain.Notification {
	if e.state.XP < UnlockXP || len(e.state.UnlockedLanguages) != len(StarterLanguages) {
		return nil
	}

	for _, l := range ExtendedLanguages {
		if !e.state.HasLanguage(l.Code) {
			e.state.UnlockedLanguages = append(e.state.UnlockedLanguages, l.Code)
		}
	}
	for _, a := range UnlockableAvatars[:unlockAvatarCount] {
		if !e.state.HasAvatar(a) {
			e.state.UnlockedAvatars = append(e.state.UnlockedAvatars, a)
		}
	}

	return []domain.Notification{{
		Type:    domain.NotifyUnlock,
		Message: "🎉 All Languages Unlocked!",
	}}
}

// EvaluateBadges recomputes the earned badge set from the current state
// and returns it in catalog order.
func (e *Engine) EvaluateBadges() []domain.BadgeID {
	e.refreshBadges()
	return append([]domain.BadgeID(nil), e.state.EarnedBadges...)
}

// refreshBadges recomputes badges and returns notifications for the ones
// that were not earned before.
func (e *Engine) refreshBadges() []domain.Notification {
	before := e.state
	e.state.EarnedBadges = computeBadges(e.state)

	var notifs []domain.Notification
	for _, id := range e.state.EarnedBadges {
		if before.HasBadge(id) {
			continue
		}
		b, _ := badgeByID(id)
		notifs = append(notifs, domain.Notification{
			Type:    domain.NotifyBadge,
			Message: fmt.Sprintf("%s Badge earned: %s", b.Icon, b.Name),
		})
	}
	return notifs
}

// reevaluate runs unlocks before badges, since Polyglot depends on them.
func (e *Engine) reevaluate() []domain.Notification {
	notifs := e.EvaluateUnlocks()
	return append(notifs, e.refreshBadges()...)
}
