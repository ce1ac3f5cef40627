// Package missions tracks the daily mission set and the one-time
// achievement table.
package missions

// Mission ids referenced by the engine when reporting progress.
const (
	IDFeed   = "daily_feed"
	IDGame   = "daily_game"
	IDSocial = "daily_social"
	// IDMeta completes itself when every other mission is done.
	IDMeta = "daily_all"
)

type Mission struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	RewardGems  int    `json:"reward_gems"`
	RewardCoins int    `json:"reward_coins"`
	Rewarded    bool   `json:"rewarded"`
}

func (m Mission) Completed() bool { return m.Progress >= m.Target }

// Set is one day's missions. A new day gets a fresh set.
type Set struct {
	Day      string    `json:"day"`
	Missions []Mission `json:"missions"`
}

func NewSet(day string) *Set {
	return &Set{
		Day: day,
		Missions: []Mission{
			{ID: IDFeed, Description: "Feed your buddy 3 times", Emoji: "🍖", Target: 3, RewardGems: 1, RewardCoins: 10},
			{ID: IDGame, Description: "Play 2 mini-games", Emoji: "🎮", Target: 2, RewardGems: 1, RewardCoins: 15},
			{ID: IDSocial, Description: "Send a message", Emoji: "💬", Target: 1, RewardGems: 1, RewardCoins: 5},
			{ID: IDMeta, Description: "Complete every mission", Emoji: "🏆", Target: 1, RewardGems: 2, RewardCoins: 25},
		},
	}
}

// Record advances one mission by a single step and returns the missions
// whose rewards became payable: the mission itself when it just
// finished, plus the meta mission when it was the last one standing.
// Rewards are handed out once; further progress never re-pays them.
func (s *Set) Record(id string) []Mission {
	var payable []Mission

	m := s.find(id)
	if m == nil || id == IDMeta {
		return nil
	}
	m.Progress++
	if m.Completed() && !m.Rewarded {
		m.Rewarded = true
		payable = append(payable, *m)
	}

	if meta := s.find(IDMeta); meta != nil && !meta.Rewarded && s.othersDone() {
		meta.Progress = meta.Target
		meta.Rewarded = true
		payable = append(payable, *meta)
	}
	return payable
}

func (s *Set) find(id string) *Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i]
		}
	}
	return nil
}

func (s *Set) othersDone() bool {
	for _, m := range s.Missions {
		if m.ID != IDMeta && !m.Completed() {
			return false
		}
	}
	return true
}
