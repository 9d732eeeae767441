package progression

import (
	"fmt"

	"github.com/globallingo/lingo/internal/domain"
)

const (
	// baseLoginXP is granted for every first login of a calendar day.
	baseLoginXP = 10

	// welcomeXP is granted once at profile setup.
	welcomeXP = 10

	// bonusAfterDays is the streak length after which each extra day adds
	// one more login XP.
	bonusAfterDays = 7
)

// LoginBonus returns the XP for a consecutive-day login that brings the
// streak to days: flat 10 for the first week, +1 per day beyond day 7.
func LoginBonus(days int) int {
	return baseLoginXP + max(0, days-bonusAfterDays)
}

// loginOutcome classifies a daily login against the previous login date.
type loginOutcome int

const (
	loginSameDay loginOutcome = iota
	loginConsecutive
	loginFirst
	loginBroken
)

func classifyLogin(last, today domain.Date) loginOutcome {
	switch {
	case last.IsZero():
		return loginFirst
	case last == today:
		return loginSameDay
	case last.AddDays(1) == today:
		return loginConsecutive
	default:
		// Gap of two or more days, or a clock that went backwards.
		return loginBroken
	}
}

// advanceStreak applies a login on today to streak and returns the XP to
// award plus the notification to emit, if any. Same-day logins return a
// zero award and leave streak untouched.
func advanceStreak(streak *domain.StreakState, today domain.Date) (int, *domain.Notification) {
	var (
		award int
		notif *domain.Notification
	)

	switch classifyLogin(streak.LastLoginDate, today) {
	case loginSameDay:
		return 0, nil

	case loginConsecutive:
		streak.Days++
		award = LoginBonus(streak.Days)
		notif = &domain.Notification{
			Type:    domain.NotifyStreak,
			Message: fmt.Sprintf("🎉 Day %d Streak! +%d XP", streak.Days, award),
		}

	case loginBroken:
		streak.Days = 1
		award = baseLoginXP
		notif = &domain.Notification{
			Type:    domain.NotifyStreakReset,
			Message: fmt.Sprintf("Streak reset. Starting fresh! +%d XP", award),
		}

	case loginFirst:
		// First login ever: welcome silently.
		streak.Days = 1
		award = baseLoginXP
	}

	streak.LastLoginDate = today
	if streak.Days > streak.LongestDays {
		streak.LongestDays = streak.Days
	}
	return award, notif
}
