package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/globallingo/lingo/internal/app/session"
	"github.com/globallingo/lingo/internal/domain"
)

// ─── Level Bar ──────────────────────────────────────────────────────────────
// Renders level progress as: [=========>..........]  42%

const barWidth = 20

func levelBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	var bar string
	if filled == barWidth {
		bar = strings.Repeat("=", filled)
	} else if filled > 0 {
		bar = strings.Repeat("=", filled-1) + ">" + strings.Repeat(".", empty)
	} else {
		bar = strings.Repeat(".", barWidth)
	}
	return fmt.Sprintf("[%s] %3.0f%%", bar, pct)
}

// printSummary writes the status view.
func printSummary(w io.Writer, s session.Summary) {
	fmt.Fprintf(w, "%s %s\n", s.Profile.Avatar, s.Profile.Name)
	fmt.Fprintf(w, "Level:        %d  %s\n", s.Level, levelBar(s.LevelProgress))
	fmt.Fprintf(w, "XP:           %d (next level at %d)\n", s.XP, s.NextLevelXP)
	fmt.Fprintf(w, "Streak:       %d days (longest %d, last login %s)\n",
		s.Streak.Days, s.Streak.LongestDays, s.Streak.LastLoginDate)
	fmt.Fprintf(w, "Today:        %d / %d translations\n", s.DailyTranslations, s.DailyGoal)
	fmt.Fprintf(w, "Translations: %d\n", s.TotalTranslations)
	fmt.Fprintf(w, "Badges:       %d / %d\n", s.BadgesEarned, s.BadgesTotal)
	fmt.Fprintf(w, "Languages:    %d / %d\n", s.LanguagesUnlocked, s.LanguagesTotal)
}

// printNotifications writes one line per notification.
func printNotifications(w io.Writer, notifs []domain.Notification) {
	for _, n := range notifs {
		fmt.Fprintf(w, "  %s\n", n.Message)
	}
}
