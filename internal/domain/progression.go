// Package domain holds the Global Lingo progression types.
// The progression engine drives the learning loop through XP, a daily
// streak, one-time content unlocks, badges and a translation log.
package domain

import "time"

// ─── Catalog Types ──────────────────────────────────────────────────────────

// LanguageCode is a two-letter language code such as "es".
type LanguageCode string

// Language is an entry of the language catalog.
type Language struct {
	Code LanguageCode `json:"code"`
	Name string       `json:"name"`
}

// AvatarID is the symbol shown as a player avatar.
type AvatarID string

// ─── Profile & Streak ───────────────────────────────────────────────────────

// PlayerProfile is the player's display identity.
type PlayerProfile struct {
	Name   string   `json:"name"`
	Avatar AvatarID `json:"avatar"`
}

// StreakState tracks consecutive calendar days with a login.
// Days is 0 only before the first login.
type StreakState struct {
	Days          int  `json:"days"`
	LastLoginDate Date `json:"last_login_date"`
	LongestDays   int  `json:"longest_days"`
}

// ─── Translation Log ────────────────────────────────────────────────────────

// TranslationRecord is one logged translation. Immutable once appended.
type TranslationRecord struct {
	ID           string       `json:"id"`
	Timestamp    time.Time    `json:"timestamp"`
	FromLanguage LanguageCode `json:"from"`
	ToLanguage   LanguageCode `json:"to"`
	SourceText   string       `json:"source_text"`
	ResultText   string       `json:"result_text"`
}

// ─── Badges ─────────────────────────────────────────────────────────────────

// BadgeID identifies a badge in the static catalog.
type BadgeID string

// PredicateKind selects how a badge is earned.
type PredicateKind string

const (
	PredTranslationCountAtLeast PredicateKind = "translation_count_at_least"
	PredXPAtLeast               PredicateKind = "xp_at_least"
	PredStreakDaysAtLeast       PredicateKind = "streak_days_at_least"
	PredAllLanguagesUnlocked    PredicateKind = "all_languages_unlocked"
	PredNever                   PredicateKind = "never"
)

// BadgePredicate is a structural unlock condition. Threshold is ignored by
// kinds that carry none.
type BadgePredicate struct {
	Kind      PredicateKind `json:"kind"`
	Threshold int           `json:"threshold,omitempty"`
}

// Badge is a static catalog entry. Badges are never persisted on their own.
type Badge struct {
	ID        BadgeID        `json:"id"`
	Name      string         `json:"name"`
	Icon      string         `json:"icon"`
	Predicate BadgePredicate `json:"predicate"`
}

// ─── Aggregate ──────────────────────────────────────────────────────────────

// ProgressionState is the root aggregate, one per player, persisted as a
// single blob.
type ProgressionState struct {
	Profile               PlayerProfile       `json:"profile"`
	XP                    int                 `json:"xp"`
	Streak                StreakState         `json:"streak"`
	DailyTranslationCount int                 `json:"daily_translation_count"`
	UnlockedLanguages     []LanguageCode      `json:"unlocked_languages"`
	UnlockedAvatars       []AvatarID          `json:"unlocked_avatars"`
	EarnedBadges          []BadgeID           `json:"earned_badges"`
	TranslationLog        []TranslationRecord `json:"translation_log"`
}

// HasProfile reports whether first-run setup has happened.
func (s ProgressionState) HasProfile() bool {
	return s.Profile.Name != ""
}

// HasLanguage reports whether code is in the unlocked language set.
func (s ProgressionState) HasLanguage(code LanguageCode) bool {
	for _, c := range s.UnlockedLanguages {
		if c == code {
			return true
		}
	}
	return false
}

// HasAvatar reports whether avatar is in the unlocked avatar set.
func (s ProgressionState) HasAvatar(avatar AvatarID) bool {
	for _, a := range s.UnlockedAvatars {
		if a == avatar {
			return true
		}
	}
	return false
}

// HasBadge reports whether id is in the earned badge set.
func (s ProgressionState) HasBadge(id BadgeID) bool {
	for _, b := range s.EarnedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can't alias the engine's slices.
func (s ProgressionState) Clone() ProgressionState {
	cp := s
	cp.UnlockedLanguages = append([]LanguageCode(nil), s.UnlockedLanguages...)
	cp.UnlockedAvatars = append([]AvatarID(nil), s.UnlockedAvatars...)
	cp.EarnedBadges = append([]BadgeID(nil), s.EarnedBadges...)
	cp.TranslationLog = append([]TranslationRecord(nil), s.TranslationLog...)
	return cp
}

// ─── Notification Types ─────────────────────────────────────────────────────

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotifyStreak      NotificationType = "streak"
	NotifyStreakReset NotificationType = "streak_reset"
	NotifyUnlock      NotificationType = "unlock"
	NotifyBadge       NotificationType = "badge"
)

// Notification is a human-readable message emitted by the engine.
// ID and CreatedAt are assigned by the sink that stores it.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}
