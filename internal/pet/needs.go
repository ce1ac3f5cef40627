package pet

import (
	"time"
)

type Need string

const (
	NeedHunger    Need = "hunger"
	NeedHappiness Need = "happiness"
	NeedEnergy    Need = "energy"
	NeedHygiene   Need = "hygiene"
)

// NeedOrder is the reporting priority when several needs are low.
var NeedOrder = []Need{NeedHunger, NeedHappiness, NeedEnergy, NeedHygiene}

// CriticalThreshold is the level under which a need is considered
// critical.
const CriticalThreshold = 0.2

// DecayRates are per-minute need losses. Hunger sets the base rate; the
// other needs drain at fixed fractions of it.
type DecayRates struct {
	Hunger    float64
	Happiness float64
	Energy    float64
	Hygiene   float64
}

func DefaultDecayRates() DecayRates {
	const base = 0.002
	return DecayRates{
		Hunger:    base,
		Happiness: base * 0.8,
		Energy:    base * 0.6,
		Hygiene:   base * 0.5,
	}
}

func (r DecayRates) rate(n Need) float64 {
	switch n {
	case NeedHunger:
		return r.Hunger
	case NeedHappiness:
		return r.Happiness
	case NeedEnergy:
		return r.Energy
	default:
		return r.Hygiene
	}
}

// NeedValue returns the current level of one need.
func (b *Buddy) NeedValue(n Need) float64 {
	switch n {
	case NeedHunger:
		return b.Hunger
	case NeedHappiness:
		return b.Happiness
	case NeedEnergy:
		return b.Energy
	default:
		return b.Hygiene
	}
}

func (b *Buddy) setNeed(n Need, v float64) {
	switch n {
	case NeedHunger:
		b.Hunger = v
	case NeedHappiness:
		b.Happiness = v
	case NeedEnergy:
		b.Energy = v
	default:
		b.Hygiene = v
	}
}

// AdvanceNeeds applies linear decay for the time elapsed since the last
// tick and returns the needs that newly dropped below the critical
// threshold. Decay is linear in elapsed time, so splitting an interval
// across several calls lands on the same values as one call.
func (b *Buddy) AdvanceNeeds(now time.Time, rates DecayRates) []Need {
	if b.LastTick.IsZero() {
		b.LastTick = now
		return nil
	}
	elapsed := now.Sub(b.LastTick).Minutes()
	if elapsed <= 0 {
		b.LastTick = now
		return nil
	}
	b.LastTick = now

	var crossed []Need
	for _, n := range NeedOrder {
		v := clamp01(b.NeedValue(n) - elapsed*rates.rate(n))
		b.setNeed(n, v)
		if v < CriticalThreshold && !b.CriticalSeen[n] {
			if b.CriticalSeen == nil {
				b.CriticalSeen = make(map[Need]bool)
			}
			b.CriticalSeen[n] = true
			crossed = append(crossed, n)
		}
	}
	return crossed
}

// RestoreNeed refills one need, clamped to full, and re-arms the
// critical signal once the need is safely above the threshold.
func (b *Buddy) RestoreNeed(n Need, amount float64) {
	v := clamp01(b.NeedValue(n) + amount)
	b.setNeed(n, v)
	if v >= CriticalThreshold {
		delete(b.CriticalSeen, n)
	}
}

// CriticalStat returns the highest-priority critical need, if any.
func (b *Buddy) CriticalStat() (Need, bool) {
	for _, n := range NeedOrder {
		if b.NeedValue(n) < CriticalThreshold {
			return n, true
		}
	}
	return "", false
}

// Mood buckets the average of the four needs into five tiers, 1 (worst)
// to 5 (best).
func (b *Buddy) Mood() int {
	avg := (b.Hunger + b.Happiness + b.Energy + b.Hygiene) / 4
	switch {
	case avg > 0.8:
		return 5
	case avg > 0.6:
		return 4
	case avg > 0.4:
		return 3
	case avg > 0.2:
		return 2
	default:
		return 1
	}
}

func (b *Buddy) MoodEmoji() string {
	switch b.Mood() {
	case 5:
		return "😊"
	case 4:
		return "🙂"
	case 3:
		return "😐"
	case 2:
		return "😟"
	default:
		return "😢"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
