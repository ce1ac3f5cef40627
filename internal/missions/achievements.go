package missions

// Achievement is a one-time goal with a gem reward. Unlocked is sticky:
// an achievement never pays twice.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	RewardGems  int    `json:"reward_gems"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievement ids the engine unlocks explicitly.
const (
	AchFirstFeed   = "ach_first_feed"
	AchFirstBattle = "ach_first_battle"
)

// AllAchievements returns the full locked table.
func AllAchievements() []Achievement {
	return []Achievement{
		{ID: AchFirstFeed, Name: "First meal", Description: "Feed your buddy for the first time", Emoji: "🍽️", RewardGems: 5},
		{ID: "ach_level5", Name: "Beginner", Description: "Reach level 5", Emoji: "⭐", RewardGems: 10},
		{ID: "ach_level10", Name: "Intermediate", Description: "Reach level 10", Emoji: "🌟", RewardGems: 15},
		{ID: "ach_level25", Name: "Expert", Description: "Reach level 25", Emoji: "💫", RewardGems: 20},
		{ID: "ach_level50", Name: "Legend", Description: "Reach level 50", Emoji: "🏆", RewardGems: 50},
		{ID: "ach_streak7", Name: "One week!", Description: "7-day streak", Emoji: "🔥", RewardGems: 10},
		{ID: "ach_streak30", Name: "One month!", Description: "30-day streak", Emoji: "🔥", RewardGems: 30},
		{ID: AchFirstBattle, Name: "Warrior", Description: "Win your first battle", Emoji: "⚔️", RewardGems: 5},
	}
}

// EvaluateAchievements unlocks every level- and streak-gated
// achievement the given progress has earned and returns the newly
// unlocked ones.
func EvaluateAchievements(achs []Achievement, level, streakDays int) []Achievement {
	thresholds := map[string]bool{
		"ach_level5":   level >= 5,
		"ach_level10":  level >= 10,
		"ach_level25":  level >= 25,
		"ach_level50":  level >= 50,
		"ach_streak7":  streakDays >= 7,
		"ach_streak30": streakDays >= 30,
	}

	var unlocked []Achievement
	for i := range achs {
		if achs[i].Unlocked || !thresholds[achs[i].ID] {
			continue
		}
		achs[i].Unlocked = true
		unlocked = append(unlocked, achs[i])
	}
	return unlocked
}

// Unlock flips one achievement by id and returns it when it was still
// locked.
func Unlock(achs []Achievement, id string) (Achievement, bool) {
	for i := range achs {
		if achs[i].ID != id {
			continue
		}
		if achs[i].Unlocked {
			return Achievement{}, false
		}
		achs[i].Unlocked = true
		return achs[i], true
	}
	return Achievement{}, false
}
