package engine

import (
	"github.com/rezaimia/buddypocket/internal/pet"
)

type EventKind string

const (
	EventLevelUp             EventKind = "level-up"
	EventAchievementUnlocked EventKind = "achievement-unlocked"
	EventStreakReward        EventKind = "streak-reward-granted"
	EventCriticalNeed        EventKind = "critical-need-crossed"
	EventShopRotated         EventKind = "shop-rotated"
	EventPassLevelUp         EventKind = "battle-pass-level-up"
	EventMissionCompleted    EventKind = "mission-completed"
)

// Event is one engine notification. Only the fields relevant to the
// kind are set.
type Event struct {
	Kind EventKind

	Need        pet.Need // critical-need-crossed
	Level       int      // level-up, battle-pass-level-up
	Bodies      []string // level-up: secret bodies revealed by it
	Achievement string   // achievement-unlocked
	MissionID   string   // mission-completed
	Day         int      // streak-reward-granted
	Gems        int      // gem amount granted, where applicable
	WeekID      string   // shop-rotated
}

// Sink receives events synchronously as operations produce them.
type Sink func(Event)

func (s *Service) emit(e Event) {
	if s.sink != nil {
		s.sink(e)
	}
}
