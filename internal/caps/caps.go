// Package caps enforces the daily gem-economy ceilings: how many
// mini-game sessions and battles still pay out, and the shared gem
// budget both channels draw from.
package caps

// Daily limits. Sessions and battles past their rewarded count still
// play, they just stop paying gems.
const (
	MaxRewardedSessions = 5
	MaxRewardedBattles  = 10
	MaxGemsPerDay       = 15
)

// Tracker is one day's counters. A new day gets a fresh tracker.
type Tracker struct {
	Day string `json:"day"`

	SessionsPlayed   int `json:"sessions_played"`
	RewardedSessions int `json:"rewarded_sessions"`
	BattlesPlayed    int `json:"battles_played"`
	RewardedBattles  int `json:"rewarded_battles"`

	GemsEarned int `json:"gems_earned"`
}

func NewTracker(day string) *Tracker {
	return &Tracker{Day: day}
}

// RecordSession counts one mini-game session and returns the gems
// actually granted: zero once the session cap is hit, otherwise the
// requested amount clipped to what is left of the shared daily budget.
func (t *Tracker) RecordSession(gemsRequested int) int {
	t.SessionsPlayed++
	if t.RewardedSessions >= MaxRewardedSessions {
		return 0
	}
	t.RewardedSessions++
	return t.takeGems(gemsRequested)
}

// RecordBattle counts one battle and returns the gems actually granted,
// under the battle cap and the shared budget.
func (t *Tracker) RecordBattle(gemsRequested int) int {
	t.BattlesPlayed++
	if t.RewardedBattles >= MaxRewardedBattles {
		return 0
	}
	t.RewardedBattles++
	return t.takeGems(gemsRequested)
}

// Remaining is what is left of the shared daily gem budget.
func (t *Tracker) Remaining() int {
	if t.GemsEarned >= MaxGemsPerDay {
		return 0
	}
	return MaxGemsPerDay - t.GemsEarned
}

func (t *Tracker) takeGems(requested int) int {
	if requested <= 0 {
		return 0
	}
	granted := requested
	if left := t.Remaining(); granted > left {
		granted = left
	}
	t.GemsEarned += granted
	return granted
}
