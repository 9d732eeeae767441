package progression

import (
	"encoding/json"
	"fmt"

	"github.com/globallingo/lingo/internal/domain"
)

// StateVersion is the current blob schema version.
const StateVersion = 1

// envelope is the versioned storage representation of a ProgressionState.
type envelope struct {
	Version int                     `json:"version"`
	State   domain.ProgressionState `json:"state"`
}

// Serialize encodes the engine's state as one text blob.
func (e *Engine) Serialize() ([]byte, error) {
	return Serialize(e.state)
}

// Serialize encodes s as one text blob.
func Serialize(s domain.ProgressionState) ([]byte, error) {
	b, err := json.Marshal(envelope{Version: StateVersion, State: s})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return b, nil
}

// Deserialize decodes a blob written by Serialize. Absent, malformed or
// unknown-version blobs yield DefaultState with restored=false; it never
// fails. Callers treat restored=false as a first run.
func Deserialize(blob []byte) (s domain.ProgressionState, restored bool) {
	if len(blob) == 0 {
		return DefaultState(), false
	}

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil || env.Version != StateVersion {
		return DefaultState(), false
	}
	if !valid(env.State) {
		return DefaultState(), false
	}
	return normalize(env.State), true
}

// valid rejects states no sequence of engine operations can reach.
func valid(s domain.ProgressionState) bool {
	return s.XP >= 0 &&
		s.Streak.Days >= 0 &&
		s.Streak.LongestDays >= 0 &&
		s.DailyTranslationCount >= 0
}

// normalize restores structural invariants on a decoded state: starter
// sets present, longest streak at least the current one, badges derived.
// Empty collections are stored as nil so a round trip is exact.
func normalize(s domain.ProgressionState) domain.ProgressionState {
	for _, l := range StarterLanguages {
		if !s.HasLanguage(l.Code) {
			s.UnlockedLanguages = append(s.UnlockedLanguages, l.Code)
		}
	}
	for _, a := range StarterAvatars {
		if !s.HasAvatar(a) {
			s.UnlockedAvatars = append(s.UnlockedAvatars, a)
		}
	}
	s.Streak.LongestDays = max(s.Streak.LongestDays, s.Streak.Days)

	if len(s.TranslationLog) == 0 {
		s.TranslationLog = nil
	}
	s.EarnedBadges = computeBadges(s)
	return s
}
