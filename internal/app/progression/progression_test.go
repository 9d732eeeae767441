package progression_test

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/globallingo/lingo/internal/app/progression"
	"github.com/globallingo/lingo/internal/domain"
)

// day returns 2025-07-01 shifted by n days.
func day(n int) domain.Date {
	return domain.Date{Year: 2025, Month: time.July, Day: 1}.AddDays(n)
}

func at(n int) time.Time {
	return time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// newPlayer returns an engine that went through setup on day(0).
func newPlayer(t *testing.T) *progression.Engine {
	t.Helper()
	e := progression.New()
	if _, err := e.SetupProfile("Ana", "", day(0)); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return e
}

func translate(t *testing.T, e *progression.Engine, text string) int {
	t.Helper()
	xp, _, err := e.RecordTranslation("en", "es", text, "x", at(0))
	if err != nil {
		t.Fatalf("record %q: %v", text, err)
	}
	return xp
}

func countType(notifs []domain.Notification, typ domain.NotificationType) int {
	n := 0
	for _, nt := range notifs {
		if nt.Type == typ {
			n++
		}
	}
	return n
}

// ═══════════════════════════════════════════════════════════════════════════
// Profile Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestSetupProfile_WelcomeBonus(t *testing.T) {
	e := progression.New()
	if _, err := e.SetupProfile("  Ana  ", "", day(0)); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s := e.State()
	if s.Profile.Name != "Ana" {
		t.Errorf("name = %q, want trimmed %q", s.Profile.Name, "Ana")
	}
	if s.Profile.Avatar != progression.DefaultAvatar {
		t.Errorf("avatar = %q, want default", s.Profile.Avatar)
	}
	if s.XP != 10 {
		t.Errorf("expected 10 welcome XP, got %d", s.XP)
	}
	if s.Streak.Days != 1 || s.Streak.LastLoginDate != day(0) {
		t.Errorf("expected streak day 1 on %s, got %+v", day(0), s.Streak)
	}
}

func TestSetupProfile_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		avatar domain.AvatarID
	}{
		{"   ", ""},
		{"Ana", "👽"}, // locked until the XP unlock
		{"Ana", "🦄"}, // not in any catalog
	}
	for _, tc := range cases {
		e := progression.New()
		before := e.State()
		_, err := e.SetupProfile(tc.name, tc.avatar, day(0))
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("setup(%q, %q): expected ErrInvalidInput, got %v", tc.name, tc.avatar, err)
		}
		if !reflect.DeepEqual(before, e.State()) {
			t.Errorf("setup(%q, %q) mutated state on error", tc.name, tc.avatar)
		}
	}
}

func TestSetupProfile_OnlyOnce(t *testing.T) {
	e := newPlayer(t)
	if _, err := e.SetupProfile("Bob", "", day(1)); !errors.Is(err, domain.ErrProfileExists) {
		t.Errorf("expected ErrProfileExists, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	e := newPlayer(t)

	if err := e.UpdateProfile("", "🚀"); err != nil {
		t.Fatalf("update: %v", err)
	}
	s := e.State()
	if s.Profile.Name != "Ana" || s.Profile.Avatar != "🚀" {
		t.Errorf("expected name kept and avatar changed, got %+v", s.Profile)
	}

	if err := e.UpdateProfile("Zoe", "👽"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("locked avatar: expected ErrInvalidInput, got %v", err)
	}
	if got := e.State().Profile.Name; got != "Ana" {
		t.Errorf("failed update changed name to %q", got)
	}
}

func TestUpdateProfile_NoProfile(t *testing.T) {
	e := progression.New()
	if err := e.UpdateProfile("Ana", ""); !errors.Is(err, domain.ErrNoProfile) {
		t.Errorf("expected ErrNoProfile, got %v", err)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Daily Login & Streak Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestDailyLogin_SameDayIdempotent(t *testing.T) {
	e := newPlayer(t)

	if notifs := e.EvaluateDailyLogin(day(0)); len(notifs) != 0 {
		t.Errorf("same-day login after setup should be silent, got %v", notifs)
	}

	e.EvaluateDailyLogin(day(1))
	first := e.State()
	e.EvaluateDailyLogin(day(1))
	e.EvaluateDailyLogin(day(1))

	if !reflect.DeepEqual(first, e.State()) {
		t.Errorf("repeated login on the same date changed state:\n%+v\n%+v", first, e.State())
	}
	if first.XP != 20 || first.Streak.Days != 2 {
		t.Errorf("expected 20 XP and 2 days, got %d XP and %d days", first.XP, first.Streak.Days)
	}
}

func TestDailyLogin_ConsecutiveIncrements(t *testing.T) {
	e := newPlayer(t)
	for i := 1; i <= 6; i++ {
		e.EvaluateDailyLogin(day(i))
	}

	s := e.State()
	if s.Streak.Days != 7 {
		t.Fatalf("expected 7 consecutive days, got %d", s.Streak.Days)
	}
	if s.XP != 70 { // 10 welcome + 6 × 10
		t.Errorf("expected 70 XP, got %d", s.XP)
	}

	notifs := e.EvaluateDailyLogin(day(7))
	if len(notifs) == 0 || notifs[0].Type != domain.NotifyStreak {
		t.Fatalf("expected streak notification first, got %v", notifs)
	}
	if notifs[0].Message != "🎉 Day 8 Streak! +11 XP" {
		t.Errorf("unexpected message %q", notifs[0].Message)
	}
	if xp := e.State().XP; xp != 81 {
		t.Errorf("expected 81 XP after day 8 bonus, got %d", xp)
	}
}

func TestDailyLogin_GapResetsStreak(t *testing.T) {
	e := newPlayer(t)
	e.EvaluateDailyLogin(day(1))
	e.EvaluateDailyLogin(day(2))
	prior := e.State()

	notifs := e.EvaluateDailyLogin(day(5))
	s := e.State()
	if s.Streak.Days != 1 {
		t.Errorf("expected streak reset to 1, got %d", s.Streak.Days)
	}
	if s.Streak.LongestDays != 3 {
		t.Errorf("expected longest preserved at 3, got %d", s.Streak.LongestDays)
	}
	if s.XP != prior.XP+10 {
		t.Errorf("expected +10 XP on reset, got %d → %d", prior.XP, s.XP)
	}
	if countType(notifs, domain.NotifyStreakReset) != 1 {
		t.Errorf("expected one reset notification, got %v", notifs)
	}
	if notifs[0].Message != "Streak reset. Starting fresh! +10 XP" {
		t.Errorf("unexpected message %q", notifs[0].Message)
	}
}

func TestDailyLogin_NextDayVsThreeDaysLater(t *testing.T) {
	next := newPlayer(t)
	prior := next.State().Streak.Days
	next.EvaluateDailyLogin(day(1))
	if got := next.State().Streak.Days; got != prior+1 {
		t.Errorf("N+1: expected %d, got %d", prior+1, got)
	}

	later := newPlayer(t)
	later.EvaluateDailyLogin(day(1))
	later.EvaluateDailyLogin(day(4))
	if got := later.State().Streak.Days; got != 1 {
		t.Errorf("N+3: expected 1, got %d", got)
	}
}

func TestDailyLogin_FirstEverIsSilent(t *testing.T) {
	e := progression.New()
	notifs := e.EvaluateDailyLogin(day(0))
	if countType(notifs, domain.NotifyStreak)+countType(notifs, domain.NotifyStreakReset) != 0 {
		t.Errorf("first login should not emit a streak notification, got %v", notifs)
	}
	s := e.State()
	if s.Streak.Days != 1 || s.XP != 10 {
		t.Errorf("expected day 1 and 10 XP, got %d days %d XP", s.Streak.Days, s.XP)
	}
}

func TestDailyLogin_MonthRollover(t *testing.T) {
	e := progression.New()
	_, err := e.SetupProfile("Ana", "", domain.Date{Year: 2024, Month: time.February, Day: 28})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	e.EvaluateDailyLogin(domain.Date{Year: 2024, Month: time.February, Day: 29})
	e.EvaluateDailyLogin(domain.Date{Year: 2024, Month: time.March, Day: 1})
	if got := e.State().Streak.Days; got != 3 {
		t.Errorf("expected leap-day streak of 3, got %d", got)
	}
}

func TestDailyLogin_ResetsDailyCount(t *testing.T) {
	e := newPlayer(t)
	translate(t, e, "hello")
	translate(t, e, "goodbye")

	e.EvaluateDailyLogin(day(0))
	if got := e.State().DailyTranslationCount; got != 2 {
		t.Errorf("same-day login must not reset count, got %d", got)
	}

	e.EvaluateDailyLogin(day(1))
	if got := e.State().DailyTranslationCount; got != 0 {
		t.Errorf("new day should reset count, got %d", got)
	}
}

func TestLoginBonus(t *testing.T) {
	cases := map[int]int{1: 10, 2: 10, 7: 10, 8: 11, 10: 13, 30: 33}
	for days, want := range cases {
		if got := progression.LoginBonus(days); got != want {
			t.Errorf("LoginBonus(%d) = %d, want %d", days, got, want)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Translation Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestRecordTranslation_XPBoundary(t *testing.T) {
	e := newPlayer(t)
	if xp := translate(t, e, "how are you"); xp != 5 {
		t.Errorf("3 words: expected 5 XP, got %d", xp)
	}
	if xp := translate(t, e, "what are you doing"); xp != 10 {
		t.Errorf("4 words: expected 10 XP, got %d", xp)
	}
	if xp := translate(t, e, "  spaced\tout   words  here "); xp != 10 {
		t.Errorf("whitespace-delimited 4 words: expected 10 XP, got %d", xp)
	}
}

func TestRecordTranslation_AppendsNewestLast(t *testing.T) {
	e := newPlayer(t)
	for i, text := range []string{"hello", "thank you", "good night"} {
		if _, _, err := e.RecordTranslation("en", "fr", " "+text+" ", "r", at(i)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	s := e.State()
	if len(s.TranslationLog) != 3 {
		t.Fatalf("expected 3 records, got %d", len(s.TranslationLog))
	}
	last := s.TranslationLog[2]
	if last.SourceText != "good night" || last.FromLanguage != "en" || last.ToLanguage != "fr" {
		t.Errorf("unexpected newest record %+v", last)
	}
	if !last.Timestamp.Equal(at(2)) {
		t.Errorf("timestamp = %v, want %v", last.Timestamp, at(2))
	}
	if last.ID == "" || last.ID == s.TranslationLog[0].ID {
		t.Error("records should carry distinct ids")
	}
	if s.DailyTranslationCount != 3 {
		t.Errorf("expected daily count 3, got %d", s.DailyTranslationCount)
	}
}

func TestRecordTranslation_InvalidInput(t *testing.T) {
	cases := []struct {
		from, to domain.LanguageCode
		text     string
	}{
		{"en", "en", "hello"},
		{"en", "es", "   "},
		{"en", "ru", "hello"}, // locked before the unlock
		{"xx", "es", "hello"},
	}
	for _, tc := range cases {
		e := newPlayer(t)
		before := e.State()
		xp, notifs, err := e.RecordTranslation(tc.from, tc.to, tc.text, "r", at(0))
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s→%s %q: expected ErrInvalidInput, got %v", tc.from, tc.to, tc.text, err)
		}
		if xp != 0 || notifs != nil {
			t.Errorf("%s→%s: expected no reward on error", tc.from, tc.to)
		}
		if !reflect.DeepEqual(before, e.State()) {
			t.Errorf("%s→%s %q: state mutated on error", tc.from, tc.to, tc.text)
		}
	}
}

func TestRecordTranslation_NoDailyCap(t *testing.T) {
	e := newPlayer(t)
	for i := 0; i < progression.DailyGoal+3; i++ {
		translate(t, e, "hello")
	}
	if got := e.State().DailyTranslationCount; got != progression.DailyGoal+3 {
		t.Errorf("daily goal is display only, expected %d, got %d", progression.DailyGoal+3, got)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Unlock Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestUnlock_FiresOnceAt100XP(t *testing.T) {
	e := newPlayer(t) // 10 XP
	unlocks := 0

	for i := 0; i < 17; i++ { // 17 × 5 = 85 → 95 XP
		_, notifs, _ := e.RecordTranslation("en", "es", "hello", "hola", at(0))
		unlocks += countType(notifs, domain.NotifyUnlock)
	}
	s := e.State()
	if s.XP != 95 || len(s.UnlockedLanguages) != len(progression.StarterLanguages) {
		t.Fatalf("expected 95 XP at starter set, got %d XP and %d languages", s.XP, len(s.UnlockedLanguages))
	}

	_, notifs, _ := e.RecordTranslation("en", "es", "hello", "hola", at(0))
	unlocks += countType(notifs, domain.NotifyUnlock)
	s = e.State()
	if s.XP != 100 {
		t.Fatalf("expected 100 XP, got %d", s.XP)
	}
	if len(s.UnlockedLanguages) != len(progression.AllLanguages()) {
		t.Errorf("expected full catalog of %d, got %d", len(progression.AllLanguages()), len(s.UnlockedLanguages))
	}
	if want := len(progression.StarterAvatars) + 6; len(s.UnlockedAvatars) != want {
		t.Errorf("expected %d avatars, got %d", want, len(s.UnlockedAvatars))
	}
	if !s.HasAvatar("🎯") || s.HasAvatar("🔥") {
		t.Error("expected exactly the first six unlockable avatars")
	}

	for i := 0; i < 10; i++ {
		_, notifs, _ := e.RecordTranslation("en", "ru", "hello", "привет", at(0))
		unlocks += countType(notifs, domain.NotifyUnlock)
	}
	if unlocks != 1 {
		t.Errorf("expected the unlock to fire exactly once, fired %d times", unlocks)
	}
	if got := len(e.State().UnlockedLanguages); got != len(progression.AllLanguages()) {
		t.Errorf("language set changed after unlock: %d", got)
	}
}

func TestUnlock_RepeatedEvaluationIsNoop(t *testing.T) {
	e := progression.NewFromState(domain.ProgressionState{
		Profile:           domain.PlayerProfile{Name: "Ana", Avatar: "🌍"},
		XP:                150,
		UnlockedLanguages: progression.DefaultState().UnlockedLanguages,
		UnlockedAvatars:   progression.DefaultState().UnlockedAvatars,
	})
	if n := len(e.EvaluateUnlocks()); n != 1 {
		t.Fatalf("expected one unlock notification, got %d", n)
	}
	snapshot := e.State()
	if notifs := e.EvaluateUnlocks(); notifs != nil {
		t.Errorf("second evaluation should be a no-op, got %v", notifs)
	}
	if !reflect.DeepEqual(snapshot, e.State()) {
		t.Error("second evaluation mutated state")
	}
}

func TestUnlock_ViaLoginBonus(t *testing.T) {
	e := progression.NewFromState(domain.ProgressionState{
		Profile:           domain.PlayerProfile{Name: "Ana", Avatar: "🌍"},
		XP:                95,
		Streak:            domain.StreakState{Days: 3, LastLoginDate: day(0), LongestDays: 3},
		UnlockedLanguages: progression.DefaultState().UnlockedLanguages,
		UnlockedAvatars:   progression.DefaultState().UnlockedAvatars,
	})
	notifs := e.EvaluateDailyLogin(day(1))
	if countType(notifs, domain.NotifyUnlock) != 1 {
		t.Errorf("login bonus crossing 100 XP should unlock, got %v", notifs)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Badge Tests
// ═══════════════════════════════════════════════════════════════════════════

func hasBadge(ids []domain.BadgeID, id domain.BadgeID) bool {
	for _, b := range ids {
		if b == id {
			return true
		}
	}
	return false
}

func TestBadges_Derivation(t *testing.T) {
	base := progression.DefaultState()

	withLog := base.Clone()
	withLog.TranslationLog = []domain.TranslationRecord{{ID: "1", SourceText: "hello"}}
	if !hasBadge(progression.NewFromState(withLog).EvaluateBadges(), progression.BadgeFirstTranslation) {
		t.Error("one logged translation should earn First Translation")
	}

	almost := base.Clone()
	almost.XP = 99
	if hasBadge(progression.NewFromState(almost).EvaluateBadges(), progression.BadgeXP100) {
		t.Error("99 XP must not earn 100 XP Master")
	}

	legend := base.Clone()
	legend.XP = 1000
	got := progression.NewFromState(legend).EvaluateBadges()
	if !hasBadge(got, progression.BadgeXP100) || !hasBadge(got, progression.BadgeXP1000) {
		t.Errorf("1000 XP should earn both XP badges, got %v", got)
	}
	if hasBadge(got, progression.BadgeSpeedDemon) {
		t.Error("Speed Demon is never earned automatically")
	}
}

func TestBadges_RecomputedNotAccumulated(t *testing.T) {
	s := progression.DefaultState()
	s.EarnedBadges = []domain.BadgeID{progression.BadgeXP1000, progression.BadgeSpeedDemon}
	if got := progression.NewFromState(s).EvaluateBadges(); len(got) != 0 {
		t.Errorf("stale stored badges should be dropped by recomputation, got %v", got)
	}
}

func TestBadges_StreakBadgeSurvivesReset(t *testing.T) {
	e := newPlayer(t)
	for i := 1; i <= 6; i++ {
		e.EvaluateDailyLogin(day(i))
	}
	if !e.State().HasBadge(progression.BadgeStreak7) {
		t.Fatal("7 consecutive days should earn 7 Day Streak")
	}

	e.EvaluateDailyLogin(day(20))
	if !hasBadge(e.EvaluateBadges(), progression.BadgeStreak7) {
		t.Error("7 Day Streak must not be lost when the streak resets")
	}
}

func TestBadges_PolyglotAfterUnlock(t *testing.T) {
	e := newPlayer(t)
	for e.State().XP < progression.UnlockXP {
		translate(t, e, "what are you doing")
	}
	if !e.State().HasBadge(progression.BadgePolyglot) {
		t.Error("unlocking every language should earn Polyglot")
	}
}

func TestBadges_NotifiedOnce(t *testing.T) {
	e := newPlayer(t)
	_, first, _ := e.RecordTranslation("en", "es", "hello", "hola", at(0))
	_, second, _ := e.RecordTranslation("en", "es", "hello", "hola", at(0))
	if countType(first, domain.NotifyBadge) != 1 {
		t.Errorf("expected one badge notification, got %v", first)
	}
	if countType(second, domain.NotifyBadge) != 0 {
		t.Errorf("badge should not be announced twice, got %v", second)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Persistence Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestSerialize_RoundTrip(t *testing.T) {
	e := newPlayer(t)
	for i := 1; i <= 3; i++ {
		e.EvaluateDailyLogin(day(i))
		translate(t, e, strings.Repeat("word ", i))
	}
	for e.State().XP < 200 {
		translate(t, e, "what are you doing")
	}
	_ = e.UpdateProfile("Zoe", "🤖")

	states := []domain.ProgressionState{progression.DefaultState(), newPlayer(t).State(), e.State()}
	for i, want := range states {
		blob, err := progression.Serialize(want)
		if err != nil {
			t.Fatalf("serialize %d: %v", i, err)
		}
		got, restored := progression.Deserialize(blob)
		if !restored {
			t.Errorf("state %d: expected restored", i)
		}
		if !reflect.DeepEqual(want, got) {
			t.Errorf("state %d: round trip mismatch\nwant %+v\ngot  %+v", i, want, got)
		}
	}
}

func TestDeserialize_FailsOpen(t *testing.T) {
	blobs := map[string][]byte{
		"absent":      nil,
		"empty":       []byte(""),
		"garbage":     []byte("{not json"),
		"version":     []byte(`{"version":99,"state":{"xp":5}}`),
		"negative xp": []byte(`{"version":1,"state":{"xp":-5}}`),
	}
	for name, blob := range blobs {
		got, restored := progression.Deserialize(blob)
		if restored {
			t.Errorf("%s: expected restored=false", name)
		}
		if !reflect.DeepEqual(got, progression.DefaultState()) {
			t.Errorf("%s: expected default state, got %+v", name, got)
		}
	}
}

func TestDeserialize_Normalizes(t *testing.T) {
	blob := []byte(`{"version":1,"state":{"profile":{"name":"Ana","avatar":"🌍"},"xp":120,
		"streak":{"days":9,"last_login_date":"2025-07-01","longest_days":2},
		"unlocked_languages":["en"],"earned_badges":["speed_demon"]}}`)

	s, restored := progression.Deserialize(blob)
	if !restored {
		t.Fatal("expected restored")
	}
	if len(s.UnlockedLanguages) != len(progression.StarterLanguages) {
		t.Errorf("starter languages should be restored, got %v", s.UnlockedLanguages)
	}
	if len(s.UnlockedAvatars) != len(progression.StarterAvatars) {
		t.Errorf("starter avatars should be restored, got %v", s.UnlockedAvatars)
	}
	if s.Streak.LongestDays != 9 {
		t.Errorf("longest streak should be at least current, got %d", s.Streak.LongestDays)
	}
	if s.HasBadge(progression.BadgeSpeedDemon) || !s.HasBadge(progression.BadgeStreak7) {
		t.Errorf("badges should be recomputed, got %v", s.EarnedBadges)
	}
	if s.Streak.LastLoginDate != day(0) {
		t.Errorf("last login = %v, want %v", s.Streak.LastLoginDate, day(0))
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Property Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestMonotonicity_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := newPlayer(t)
	texts := []string{"hello", "how are you", "what are you doing today", "", "good night"}
	langs := []domain.LanguageCode{"en", "es", "fr", "ru", "ja"}
	today := 0
	prev := e.State()

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			today += rng.Intn(4)
			e.EvaluateDailyLogin(day(today))
		case 1:
			e.EvaluateUnlocks()
		default:
			_, _, _ = e.RecordTranslation(langs[rng.Intn(len(langs))], langs[rng.Intn(len(langs))],
				texts[rng.Intn(len(texts))], "r", at(today))
		}

		cur := e.State()
		if cur.XP < prev.XP {
			t.Fatalf("step %d: XP decreased %d → %d", i, prev.XP, cur.XP)
		}
		if len(cur.TranslationLog) < len(prev.TranslationLog) {
			t.Fatalf("step %d: log shrank", i)
		}
		if len(cur.UnlockedLanguages) < len(prev.UnlockedLanguages) || len(cur.UnlockedAvatars) < len(prev.UnlockedAvatars) {
			t.Fatalf("step %d: unlocked set shrank", i)
		}
		for _, b := range prev.EarnedBadges {
			if !cur.HasBadge(b) {
				t.Fatalf("step %d: badge %s lost", i, b)
			}
		}
		prev = cur
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Level Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestXPForLevel_Exponential(t *testing.T) {
	if xp := progression.XPForLevel(1); xp != 0 {
		t.Errorf("level 1 should need 0 XP, got %d", xp)
	}
	for l := 2; l < progression.MaxLevel; l++ {
		if progression.XPForLevel(l+1) <= progression.XPForLevel(l) {
			t.Fatalf("level %d should need more XP than level %d", l+1, l)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	if got := progression.LevelForXP(0); got != 1 {
		t.Errorf("LevelForXP(0) = %d, want 1", got)
	}
	for l := 2; l <= 10; l++ {
		need := progression.XPForLevel(l)
		if got := progression.LevelForXP(need); got != l {
			t.Errorf("LevelForXP(%d) = %d, want %d", need, got, l)
		}
		if got := progression.LevelForXP(need - 1); got != l-1 {
			t.Errorf("LevelForXP(%d) = %d, want %d", need-1, got, l-1)
		}
	}
	if pct := progression.LevelProgress(0); pct != 0 {
		t.Errorf("LevelProgress(0) = %.1f, want 0", pct)
	}
}
