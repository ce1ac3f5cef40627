// Package engine owns the live game state and every inbound operation:
// care, games, battles, check-ins, shopping, the battle pass, and daily
// missions. A Service is constructed per process and passed by
// reference; nothing in here is global.
package engine

import (
	"math/rand"
	"time"

	"github.com/rezaimia/buddypocket/internal/caps"
	"github.com/rezaimia/buddypocket/internal/catalog"
	"github.com/rezaimia/buddypocket/internal/config"
	"github.com/rezaimia/buddypocket/internal/missions"
	"github.com/rezaimia/buddypocket/internal/pet"
	"github.com/rezaimia/buddypocket/internal/shop"
	"github.com/rezaimia/buddypocket/internal/streak"
)

// HighScore is the best score recorded for one mini-game.
type HighScore struct {
	Game  string    `json:"game"`
	Score int       `json:"score"`
	When  time.Time `json:"when"`
}

// State is everything the engine persists, one entity per field.
type State struct {
	Buddy           *pet.Buddy
	Caps            *caps.Tracker
	Shop            *shop.Weekly
	Pass            *shop.BattlePass
	Missions        *missions.Set
	Achievements    []missions.Achievement
	HighScores      []HighScore
	RecentPurchases []string
}

// NewState creates the day-one state for a fresh buddy.
func NewState(name string, gender catalog.Gender, now time.Time) *State {
	day := now.Format(streak.DayFormat)
	return &State{
		Buddy:        pet.New(name, gender, now),
		Caps:         caps.NewTracker(day),
		Pass:         shop.NewSeason(now),
		Missions:     missions.NewSet(day),
		Achievements: missions.AllAchievements(),
	}
}

type Service struct {
	reg *catalog.Registry
	cfg config.Config
	st  *State

	now  func() time.Time
	rng  *rand.Rand
	sink Sink
}

type Option func(*Service)

// WithClock injects the time source, for tests and replay.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand injects the RNG used for shop rotation, gem rolls, and
// battle rounds.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithSink registers the event sink.
func WithSink(sink Sink) Option {
	return func(s *Service) { s.sink = sink }
}

func New(reg *catalog.Registry, cfg config.Config, st *State, opts ...Option) *Service {
	s := &Service{
		reg: reg,
		cfg: cfg,
		st:  st,
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) State() *State { return s.st }

// Refresh advances time-derived state: need decay, the daily check-in
// and counter resets, the weekly shop rotation, and season turnover.
// Rollover is lazy; calling it more than once per moment is harmless.
func (s *Service) Refresh() {
	now := s.now()
	today := now.Format(streak.DayFormat)
	b := s.st.Buddy

	for _, n := range b.AdvanceNeeds(now, s.cfg.DecayRates()) {
		s.emit(Event{Kind: EventCriticalNeed, Need: n})
	}

	if s.st.Caps == nil || s.st.Caps.Day != today {
		s.st.Caps = caps.NewTracker(today)
	}
	if s.st.Missions == nil || s.st.Missions.Day != today {
		s.st.Missions = missions.NewSet(today)
	}

	s.checkIn(today)

	weekID := shop.WeekID(now)
	if s.st.Shop == nil || s.st.Shop.WeekID != weekID {
		s.st.Shop = shop.Generate(s.reg, b.Gender, weekID, s.st.RecentPurchases, now, s.rng)
		s.emit(Event{Kind: EventShopRotated, WeekID: weekID})
	}

	if s.st.Pass == nil || now.After(s.st.Pass.EndAt) {
		s.st.Pass = shop.NewSeason(now)
	}
}

// checkIn runs the streak machine for today and pays the milestone
// reward.
func (s *Service) checkIn(today string) {
	b := s.st.Buddy
	next, res := streak.Advance(streak.State{
		Days:    b.StreakDays,
		LastDay: b.LastLoginDay,
		Shield:  b.StreakShield,
	}, today)
	if !res.Advanced {
		return
	}
	b.StreakDays = next.Days
	b.LastLoginDay = next.LastDay
	b.StreakShield = next.Shield

	if res.Gems > 0 {
		b.Gems += res.Gems
		s.emit(Event{Kind: EventStreakReward, Day: b.StreakDays, Gems: res.Gems})
	}
	s.settleAchievements()
}

// grantXP credits buddy XP and runs the level-up chain: secret body
// reveals, the level-up event, and level-gated achievements.
func (s *Service) grantXP(amount int) {
	b := s.st.Buddy
	if b.AddXP(amount) == 0 {
		return
	}
	bodies := b.RevealSecretBodies(s.reg)
	s.emit(Event{Kind: EventLevelUp, Level: b.Level, Bodies: bodies})
	s.settleAchievements()
}

// grantPassXP credits battle pass XP and reports tier-ups.
func (s *Service) grantPassXP(amount int) {
	if s.st.Pass == nil {
		return
	}
	if s.st.Pass.AddXP(amount) > 0 {
		s.emit(Event{Kind: EventPassLevelUp, Level: s.st.Pass.Level})
	}
}

// settleAchievements pays out any level- or streak-gated achievements
// earned by the current progress.
func (s *Service) settleAchievements() {
	b := s.st.Buddy
	for _, a := range missions.EvaluateAchievements(s.st.Achievements, b.Level, b.StreakDays) {
		b.Gems += a.RewardGems
		s.emit(Event{Kind: EventAchievementUnlocked, Achievement: a.ID, Gems: a.RewardGems})
	}
}

// unlockAchievement pays a single event-driven achievement.
func (s *Service) unlockAchievement(id string) {
	a, ok := missions.Unlock(s.st.Achievements, id)
	if !ok {
		return
	}
	s.st.Buddy.Gems += a.RewardGems
	s.emit(Event{Kind: EventAchievementUnlocked, Achievement: a.ID, Gems: a.RewardGems})
}

// recordMission advances one mission and pays whatever completed.
func (s *Service) recordMission(id string) {
	if s.st.Missions == nil {
		return
	}
	for _, m := range s.st.Missions.Record(id) {
		s.st.Buddy.Gems += m.RewardGems
		s.st.Buddy.Coins += m.RewardCoins
		s.emit(Event{Kind: EventMissionCompleted, MissionID: m.ID, Gems: m.RewardGems})
	}
}
