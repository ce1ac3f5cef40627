// Package streak implements the daily check-in chain: consecutive days,
// the one-shot shield that saves a broken chain, and milestone gem
// rewards.
package streak

import (
	"time"
)

// DayFormat is the civil-day stamp used for streak bookkeeping.
const DayFormat = "2006-01-02"

// State is the streak portion of a buddy, detached so the transition
// rules stay a pure function.
type State struct {
	Days    int
	LastDay string
	Shield  bool
}

// Result describes what one check-in did.
type Result struct {
	// Advanced is false when today was already counted.
	Advanced bool
	// ShieldUsed marks a gap absorbed by the shield: the chain is
	// preserved but not extended.
	ShieldUsed bool
	// Gems is the milestone reward granted for the new streak day.
	Gems int
}

// Milestone maps a streak day to its gem reward. Days between
// milestones pay the base single gem.
type Milestone struct {
	Day  int
	Gems int
}

var milestones = []Milestone{
	{Day: 1, Gems: 1},
	{Day: 3, Gems: 2},
	{Day: 7, Gems: 5},
	{Day: 14, Gems: 10},
	{Day: 30, Gems: 20},
}

// RewardFor returns the gems paid for reaching the given streak day:
// the highest milestone at or below it.
func RewardFor(day int) int {
	gems := 1
	for _, m := range milestones {
		if day >= m.Day {
			gems = m.Gems
		}
	}
	return gems
}

// Advance runs one check-in for the given civil day and returns the new
// state. Same day twice is a no-op. A one-day gap continues the chain; a
// longer gap consumes the shield if armed (preserving the count) and
// otherwise resets to day one.
func Advance(s State, today string) (State, Result) {
	if s.LastDay == today {
		return s, Result{}
	}

	next := s
	next.LastDay = today
	res := Result{Advanced: true}

	switch {
	case s.LastDay == "":
		next.Days = 1
	case s.LastDay == yesterday(today):
		next.Days = s.Days + 1
	case s.Shield:
		next.Shield = false
		res.ShieldUsed = true
	default:
		next.Days = 1
	}

	res.Gems = RewardFor(next.Days)
	return next, res
}

func yesterday(today string) string {
	t, err := time.Parse(DayFormat, today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DayFormat)
}
