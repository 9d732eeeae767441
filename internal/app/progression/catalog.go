package progression

import "github.com/globallingo/lingo/internal/domain"

// ─── Language Catalog ───────────────────────────────────────────────────────

// StarterLanguages are available from the first run.
var StarterLanguages = []domain.Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "ar", Name: "Arabic"},
}

// ExtendedLanguages are granted all at once by the XP unlock.
var ExtendedLanguages = []domain.Language{
	{Code: "ru", Name: "Russian"},
	{Code: "hi", Name: "Hindi"},
	{Code: "tr", Name: "Turkish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "sv", Name: "Swedish"},
	{Code: "pl", Name: "Polish"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "th", Name: "Thai"},
	{Code: "id", Name: "Indonesian"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ro", Name: "Romanian"},
	{Code: "el", Name: "Greek"},
	{Code: "cs", Name: "Czech"},
	{Code: "da", Name: "Danish"},
	{Code: "fi", Name: "Finnish"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "he", Name: "Hebrew"},
	{Code: "no", Name: "Norwegian"},
	{Code: "sk", Name: "Slovak"},
	{Code: "bg", Name: "Bulgarian"},
}

// AllLanguages returns the starter and extended catalogs in display order.
func AllLanguages() []domain.Language {
	all := make([]domain.Language, 0, len(StarterLanguages)+len(ExtendedLanguages))
	all = append(all, StarterLanguages...)
	return append(all, ExtendedLanguages...)
}

// LanguageName returns the display name for code, or the code itself.
func LanguageName(code domain.LanguageCode) string {
	for _, l := range AllLanguages() {
		if l.Code == code {
			return l.Name
		}
	}
	return string(code)
}

// IsKnownLanguage reports whether code is in either catalog.
func IsKnownLanguage(code domain.LanguageCode) bool {
	for _, l := range AllLanguages() {
		if l.Code == code {
			return true
		}
	}
	return false
}

func languageCodes(langs []domain.Language) []domain.LanguageCode {
	codes := make([]domain.LanguageCode, len(langs))
	for i, l := range langs {
		codes[i] = l.Code
	}
	return codes
}

// ─── Avatar Catalog ─────────────────────────────────────────────────────────

// DefaultAvatar is selected when setup doesn't name one.
const DefaultAvatar domain.AvatarID = "🌍"

// StarterAvatars are selectable from the first run.
var StarterAvatars = []domain.AvatarID{"🌍", "🌎", "🌏", "🗺️", "🧭", "✈️", "🚀", "🛸"}

// UnlockableAvatars are gated behind progression.
var UnlockableAvatars = []domain.AvatarID{"👽", "🤖", "🦾", "🦿", "🎯", "⚡", "🔥", "⭐", "💎", "🏆", "👑", "🎨"}

// unlockAvatarCount is how many unlockable avatars the XP unlock grants.
const unlockAvatarCount = 6

// ─── Badge Catalog ──────────────────────────────────────────────────────────

const (
	BadgeFirstTranslation domain.BadgeID = "first_translation"
	BadgeXP100            domain.BadgeID = "xp_100"
	BadgeStreak7          domain.BadgeID = "streak_7"
	BadgePolyglot         domain.BadgeID = "polyglot"
	BadgeXP1000           domain.BadgeID = "xp_1000"
	BadgeSpeedDemon       domain.BadgeID = "speed_demon"
)

// AllBadges returns the static badge catalog.
func AllBadges() []domain.Badge {
	return []domain.Badge{
		{
			ID: BadgeFirstTranslation, Name: "First Translation", Icon: "🎯",
			Predicate: domain.BadgePredicate{Kind: domain.PredTranslationCountAtLeast, Threshold: 1},
		},
		{
			ID: BadgeXP100, Name: "100 XP Master", Icon: "💯",
			Predicate: domain.BadgePredicate{Kind: domain.PredXPAtLeast, Threshold: 100},
		},
		{
			ID: BadgeStreak7, Name: "7 Day Streak", Icon: "🔥",
			Predicate: domain.BadgePredicate{Kind: domain.PredStreakDaysAtLeast, Threshold: 7},
		},
		{
			ID: BadgePolyglot, Name: "Polyglot", Icon: "📚",
			Predicate: domain.BadgePredicate{Kind: domain.PredAllLanguagesUnlocked},
		},
		{
			ID: BadgeXP1000, Name: "1000 XP Legend", Icon: "🏆",
			Predicate: domain.BadgePredicate{Kind: domain.PredXPAtLeast, Threshold: 1000},
		},
		{
			// Special achievement with no rule yet.
			ID: BadgeSpeedDemon, Name: "Speed Demon", Icon: "⚡",
			Predicate: domain.BadgePredicate{Kind: domain.PredNever},
		},
	}
}
