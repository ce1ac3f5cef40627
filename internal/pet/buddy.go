// Package pet holds the buddy aggregate: identity, appearance, equipped
// cosmetics, the four needs, and the XP/currency ledger.
package pet

import (
	"time"

	"github.com/google/uuid"

	"github.com/rezaimia/buddypocket/internal/catalog"
)

// MaxLevel is the last buddy level. XP earned at the cap is discarded.
const MaxLevel = 50

type Action string

const (
	ActionFeed  Action = "feed"
	ActionPet   Action = "pet"
	ActionSleep Action = "sleep"
	ActionBathe Action = "bathe"
)

// Need returns the need the action restores.
func (a Action) Need() Need {
	switch a {
	case ActionFeed:
		return NeedHunger
	case ActionPet:
		return NeedHappiness
	case ActionSleep:
		return NeedEnergy
	default:
		return NeedHygiene
	}
}

// Restore is how much of the need one use of the action refills.
func (a Action) Restore() float64 {
	switch a {
	case ActionFeed:
		return 0.30
	case ActionPet:
		return 0.25
	case ActionSleep:
		return 0.35
	default:
		return 0.30
	}
}

// DecorPlacement is one decor emoji placed in the buddy's room, on the
// wall or on the floor. Coordinates are normalized to [0,1].
type DecorPlacement struct {
	ID      string  `json:"id"`
	DecorID string  `json:"decor_id"`
	Emoji   string  `json:"emoji"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Wall    bool    `json:"wall"`
}

type Buddy struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Gender catalog.Gender `json:"gender"`

	BodyType  string `json:"body_type"`
	BodyColor string `json:"body_color"`
	EyeType   string `json:"eye_type"`

	// Equipped cosmetics, empty when the slot is bare. A costume
	// replaces top and bottom.
	HeadAccessory string `json:"head_accessory,omitempty"`
	Top           string `json:"top,omitempty"`
	Bottom        string `json:"bottom,omitempty"`
	Costume       string `json:"costume,omitempty"`

	RoomTheme string           `json:"room_theme"`
	Decor     []DecorPlacement `json:"decor,omitempty"`

	// Needs, each in [0,1].
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Hygiene   float64 `json:"hygiene"`

	Level int `json:"level"`
	XP    int `json:"xp"`
	Coins int `json:"coins"`
	Gems  int `json:"gems"`

	StreakDays   int    `json:"streak_days"`
	LastLoginDay string `json:"last_login_day,omitempty"`
	StreakShield bool   `json:"streak_shield"`

	// Purchased premium cosmetics and level-revealed secret bodies.
	UnlockedItems  []string `json:"unlocked_items,omitempty"`
	UnlockedBodies []string `json:"unlocked_bodies,omitempty"`
	UnlockedColors []string `json:"unlocked_colors,omitempty"`
	UnlockedEyes   []string `json:"unlocked_eyes,omitempty"`

	DevMode bool `json:"dev_mode,omitempty"`

	// Needs already reported critical, cleared when care lifts the
	// need back over the threshold.
	CriticalSeen map[Need]bool `json:"critical_seen,omitempty"`

	LastTick time.Time `json:"last_tick"`
}

// New creates a fresh buddy with full needs and the starter wallet.
func New(name string, gender catalog.Gender, now time.Time) *Buddy {
	return &Buddy{
		ID:        uuid.NewString(),
		Name:      name,
		Gender:    gender,
		BodyType:  "blob",
		BodyColor: "violet",
		EyeType:   "normal",
		RoomTheme: "theme_default",
		Hunger:    1,
		Happiness: 1,
		Energy:    1,
		Hygiene:   1,
		Level:     1,
		Coins:     100,
		Gems:      10,
		LastTick:  now,
	}
}

// XPForNextLevel is the XP needed to finish the current level.
func (b *Buddy) XPForNextLevel() int { return b.Level*100 + 50 }

// AddXP credits xp and applies any level-ups, returning how many levels
// were gained. Leftover XP at MaxLevel is discarded.
func (b *Buddy) AddXP(amount int) int {
	b.XP += amount
	gained := 0
	for b.XP >= b.XPForNextLevel() && b.Level < MaxLevel {
		b.XP -= b.XPForNextLevel()
		b.Level++
		gained++
	}
	if b.Level >= MaxLevel {
		b.XP = 0
	}
	return gained
}

// RevealSecretBodies adds every secret body the current level has earned
// and returns the ids newly added, in unlock order.
func (b *Buddy) RevealSecretBodies(reg *catalog.Registry) []string {
	var revealed []string
	for _, body := range reg.SecretBodies() {
		if body.UnlockLevel > b.Level {
			continue
		}
		if contains(b.UnlockedBodies, body.ID) {
			continue
		}
		b.UnlockedBodies = append(b.UnlockedBodies, body.ID)
		revealed = append(revealed, body.ID)
	}
	return revealed
}

// HasItem reports whether a premium item has been purchased.
func (b *Buddy) HasItem(id string) bool { return contains(b.UnlockedItems, id) }

func (b *Buddy) GrantItem(id string) {
	if !b.HasItem(id) {
		b.UnlockedItems = append(b.UnlockedItems, id)
	}
}

// HasBody reports whether a secret body has been revealed.
func (b *Buddy) HasBody(id string) bool { return contains(b.UnlockedBodies, id) }

// HasColor reports whether a premium color has been purchased.
func (b *Buddy) HasColor(id string) bool { return contains(b.UnlockedColors, id) }

func (b *Buddy) GrantColor(id string) {
	if !b.HasColor(id) {
		b.UnlockedColors = append(b.UnlockedColors, id)
	}
}

// HasEyes reports whether a premium eye style has been purchased.
func (b *Buddy) HasEyes(id string) bool { return contains(b.UnlockedEyes, id) }

func (b *Buddy) GrantEyes(id string) {
	if !b.HasEyes(id) {
		b.UnlockedEyes = append(b.UnlockedEyes, id)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
