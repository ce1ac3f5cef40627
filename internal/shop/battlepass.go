package shop

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRewardLocked    = errors.New("battle pass reward not reached")
	ErrRewardClaimed   = errors.New("battle pass reward already claimed")
	ErrPremiumRequired = errors.New("battle pass reward needs the premium track")
)

// MaxPassLevel is the last battle pass tier. XP earned at the cap is
// discarded.
const MaxPassLevel = 30

// ItemRewardGems is the flat gem bonus paid for item-like reward tiers.
const ItemRewardGems = 10

type RewardKind string

const (
	RewardGems      RewardKind = "gems"
	RewardCoins     RewardKind = "coins"
	RewardItem      RewardKind = "item"
	RewardCostume   RewardKind = "costume"
	RewardTheme     RewardKind = "theme"
	RewardExclusive RewardKind = "exclusive"
)

// Reward is one battle pass tier. Value carries the amount for gem and
// coin rewards; item-like kinds pay ItemRewardGems instead.
type Reward struct {
	ID          string     `json:"id"`
	Level       int        `json:"level"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji"`
	PremiumOnly bool       `json:"premium_only"`
	Kind        RewardKind `json:"kind"`
	Value       int        `json:"value"`
	Claimed     bool       `json:"claimed"`
}

type BattlePass struct {
	SeasonID string    `json:"season_id"`
	Name     string    `json:"name"`
	Emoji    string    `json:"emoji"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`

	Level   int  `json:"level"`
	XP      int  `json:"xp"`
	Premium bool `json:"premium"`

	Rewards []Reward `json:"rewards"`
}

// NewSeason starts a two-month season with a generated reward track.
func NewSeason(now time.Time) *BattlePass {
	return &BattlePass{
		SeasonID: "season_1",
		Name:     "Cosmos",
		Emoji:    "🚀",
		StartAt:  now,
		EndAt:    now.AddDate(0, 2, 0),
		Rewards:  seasonRewards("season_1"),
	}
}

// Every third tier is premium-only; the reward kind cycles on a
// five-tier pattern.
func seasonRewards(seasonID string) []Reward {
	rewards := make([]Reward, 0, MaxPassLevel)
	for level := 1; level <= MaxPassLevel; level++ {
		r := Reward{
			ID:          fmt.Sprintf("bp_%s_%d", seasonID, level),
			Level:       level,
			PremiumOnly: level%3 == 0,
		}
		switch level % 5 {
		case 0:
			r.Kind, r.Name, r.Emoji = RewardCostume, fmt.Sprintf("Cosmic costume lv%d", level), "🚀"
		case 1:
			r.Kind, r.Value = RewardGems, level*2
			r.Name, r.Emoji = fmt.Sprintf("%d gems", r.Value), "💎"
		case 2:
			r.Kind, r.Value = RewardCoins, level*20
			r.Name, r.Emoji = fmt.Sprintf("%d coins", r.Value), "🪙"
		case 3:
			r.Kind, r.Name, r.Emoji = RewardItem, "Star accessory", "⭐"
		default:
			r.Kind, r.Name, r.Emoji = RewardTheme, "Nebula theme", "🌌"
		}
		rewards = append(rewards, r)
	}
	return rewards
}

// XPForNextLevel is the XP needed to finish the current tier.
func (bp *BattlePass) XPForNextLevel() int { return 200 + bp.Level*50 }

// AddXP credits pass XP and returns the tiers gained. Leftover XP at
// the level cap is discarded.
func (bp *BattlePass) AddXP(amount int) int {
	bp.XP += amount
	gained := 0
	for bp.XP >= bp.XPForNextLevel() && bp.Level < MaxPassLevel {
		bp.XP -= bp.XPForNextLevel()
		bp.Level++
		gained++
	}
	if bp.Level >= MaxPassLevel {
		bp.XP = 0
	}
	return gained
}

// RewardAt returns the reward for a tier, nil when no such tier exists.
func (bp *BattlePass) RewardAt(level int) *Reward {
	for i := range bp.Rewards {
		if bp.Rewards[i].Level == level {
			return &bp.Rewards[i]
		}
	}
	return nil
}

// Claim marks the tier's reward claimed and returns it. A tier can be
// claimed once: reaching the level again never re-grants it.
func (bp *BattlePass) Claim(level int) (*Reward, error) {
	r := bp.RewardAt(level)
	if r == nil {
		return nil, fmt.Errorf("no reward at level %d", level)
	}
	if bp.Level < r.Level {
		return nil, ErrRewardLocked
	}
	if r.PremiumOnly && !bp.Premium {
		return nil, ErrPremiumRequired
	}
	if r.Claimed {
		return nil, ErrRewardClaimed
	}
	r.Claimed = true
	return r, nil
}
