package progression

import "github.com/globallingo/lingo/internal/domain"

// Satisfied evaluates a badge predicate against a state snapshot.
// Streak thresholds use the longest streak so a later reset never takes
// an earned badge away.
func Satisfied(p domain.BadgePredicate, s domain.ProgressionState) bool {
	switch p.Kind {
	case domain.PredTranslationCountAtLeast:
		return len(s.TranslationLog) >= p.Threshold
	case domain.PredXPAtLeast:
		return s.XP >= p.Threshold
	case domain.PredStreakDaysAtLeast:
		return max(s.Streak.Days, s.Streak.LongestDays) >= p.Threshold
	case domain.PredAllLanguagesUnlocked:
		return allLanguagesUnlocked(s)
	default:
		return false
	}
}

// computeBadges recomputes the earned set from scratch, in catalog order.
func computeBadges(s domain.ProgressionState) []domain.BadgeID {
	var earned []domain.BadgeID
	for _, b := range AllBadges() {
		if Satisfied(b.Predicate, s) {
			earned = append(earned, b.ID)
		}
	}
	return earned
}

func allLanguagesUnlocked(s domain.ProgressionState) bool {
	for _, l := range AllLanguages() {
		if !s.HasLanguage(l.Code) {
			return false
		}
	}
	return true
}

// badgeByID looks up a catalog entry.
func badgeByID(id domain.BadgeID) (domain.Badge, bool) {
	for _, b := range AllBadges() {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Badge{}, false
}
