// Package shop covers the gem storefronts: the weekly rotating slate
// and the seasonal battle pass.
package shop

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rezaimia/buddypocket/internal/catalog"
)

var ErrAlreadyPurchased = errors.New("shop slot already purchased")

const (
	// SlotCount is the size of the weekly slate.
	SlotCount = 6
	// FreeSlotStreakMin is the streak needed to claim the free slot.
	FreeSlotStreakMin = 5

	recentTrimAt = 50
	recentKeep   = 30
)

// Slot is one offer in the weekly slate. Discount is a percentage, zero
// meaning full price.
type Slot struct {
	ItemID    string `json:"item_id"`
	Discount  int    `json:"discount,omitempty"`
	Purchased bool   `json:"purchased"`
}

// FinalPrice applies the slot discount to the item price, never going
// under one gem.
func (s Slot) FinalPrice(price int) int {
	if s.Discount <= 0 {
		return price
	}
	p := price - price*s.Discount/100
	if p < 1 {
		p = 1
	}
	return p
}

// Weekly is the current shop slate. It is regenerated when the stored
// week id no longer matches the calendar.
type Weekly struct {
	WeekID     string    `json:"week_id"`
	Slots      []Slot    `json:"slots"`
	FreeItemID string    `json:"free_item_id,omitempty"`
	ResetAt    time.Time `json:"reset_at"`
}

// WeekID stamps a moment with its ISO year-week, e.g. "2026-W35".
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// Generate builds the slate for one week from the premium catalog:
// up to two outfits (tops or costumes), two head accessories, one
// theme, one mystery pick, backfilled to six slots. Recently bought
// items are kept out of the pool so the rotation feels fresh. The
// first slot doubles as the streak free item, and one other slot gets
// a random discount.
func Generate(reg *catalog.Registry, gender catalog.Gender, weekID string, excludeRecent []string, now time.Time, rng *rand.Rand) *Weekly {
	excluded := make(map[string]bool, len(excludeRecent))
	for _, id := range excludeRecent {
		excluded[id] = true
	}

	var pool []catalog.Item
	for _, it := range reg.PremiumFor(gender) {
		if !excluded[it.ID] {
			pool = append(pool, it)
		}
	}
	shuffled := make([]catalog.Item, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	picked := make(map[string]bool)
	take := func(n int, match func(catalog.Item) bool) []catalog.Item {
		var out []catalog.Item
		for _, it := range shuffled {
			if len(out) == n {
				break
			}
			if picked[it.ID] || !match(it) {
				continue
			}
			picked[it.ID] = true
			out = append(out, it)
		}
		return out
	}

	slate := take(2, func(it catalog.Item) bool {
		return it.Category == catalog.CategoryTop || it.Category == catalog.CategoryCostume
	})
	slate = append(slate, take(2, func(it catalog.Item) bool {
		return it.Category == catalog.CategoryHead
	})...)
	slate = append(slate, take(1, func(it catalog.Item) bool {
		return it.Category == catalog.CategoryTheme
	})...)
	slate = append(slate, take(1, func(catalog.Item) bool { return true })...)

	// Backfill when a bucket came up short.
	slate = append(slate, take(SlotCount-len(slate), func(catalog.Item) bool { return true })...)
	if len(slate) > SlotCount {
		slate = slate[:SlotCount]
	}

	w := &Weekly{
		WeekID:  weekID,
		ResetAt: nextMonday(now),
	}
	for _, it := range slate {
		w.Slots = append(w.Slots, Slot{ItemID: it.ID})
	}
	if len(w.Slots) > 0 {
		w.FreeItemID = w.Slots[0].ItemID
	}
	// One non-free slot carries this week's discount.
	if len(w.Slots) > 1 {
		discounts := []int{10, 20, 25, 30, 50}
		i := 1 + rng.Intn(len(w.Slots)-1)
		w.Slots[i].Discount = discounts[rng.Intn(len(discounts))]
	}
	return w
}

// Slot returns the indexed slot, nil when out of range.
func (w *Weekly) Slot(i int) *Slot {
	if w == nil || i < 0 || i >= len(w.Slots) {
		return nil
	}
	return &w.Slots[i]
}

// FreeFor reports whether the slot is the week's free item for a buddy
// with the given streak.
func (w *Weekly) FreeFor(s Slot, streakDays int) bool {
	return w.FreeItemID != "" && w.FreeItemID == s.ItemID && streakDays >= FreeSlotStreakMin
}

func nextMonday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// RecordPurchase appends an item to the recent-purchase history and
// trims it once it grows past fifty entries, keeping the newest thirty.
func RecordPurchase(recent []string, itemID string) []string {
	recent = append(recent, itemID)
	if len(recent) > recentTrimAt {
		recent = append([]string(nil), recent[len(recent)-recentKeep:]...)
	}
	return recent
}
