package storage

import "github.com/rezaimia/buddypocket/internal/pet"

// WidgetSnapshot is the small read-only projection external surfaces
// (status bars, desktop widgets) poll instead of loading full state.
type WidgetSnapshot struct {
	Name      string  `json:"name"`
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Hygiene   float64 `json:"hygiene"`
	Level     int     `json:"level"`
	Streak    int     `json:"streak"`
	BodyType  string  `json:"body_type"`
	BodyColor string  `json:"body_color"`
	Mood      string  `json:"mood"`
}

// BuildWidget projects the buddy into its widget snapshot.
func BuildWidget(b *pet.Buddy) WidgetSnapshot {
	return WidgetSnapshot{
		Name:      b.Name,
		Hunger:    b.Hunger,
		Happiness: b.Happiness,
		Energy:    b.Energy,
		Hygiene:   b.Hygiene,
		Level:     b.Level,
		Streak:    b.StreakDays,
		BodyType:  b.BodyType,
		BodyColor: b.BodyColor,
		Mood:      b.MoodEmoji(),
	}
}
