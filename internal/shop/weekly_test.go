package shop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rezaimia/buddypocket/internal/catalog"
)

var testNow = time.Date(2026, 8, 12, 15, 0, 0, 0, time.UTC) // a Wednesday

func TestWeekID(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), "2026-W33"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W1"},
		// Jan 1 2027 falls in ISO week 53 of 2026.
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}
	for _, tc := range tests {
		if got := WeekID(tc.t); got != tc.want {
			t.Errorf("WeekID(%s) = %s, want %s", tc.t.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestGenerateSlate(t *testing.T) {
	reg := catalog.MustLoad()
	w := Generate(reg, catalog.GenderBoy, "2026-W33", nil, testNow, rand.New(rand.NewSource(7)))

	if len(w.Slots) != SlotCount {
		t.Fatalf("slate has %d slots, want %d", len(w.Slots), SlotCount)
	}
	seen := make(map[string]bool)
	counts := make(map[catalog.Category]int)
	for _, s := range w.Slots {
		if seen[s.ItemID] {
			t.Errorf("duplicate slot item %q", s.ItemID)
		}
		seen[s.ItemID] = true

		it, ok := reg.Item(s.ItemID)
		if !ok {
			t.Fatalf("slot references unknown item %q", s.ItemID)
		}
		if !it.Premium {
			t.Errorf("slot item %q is not premium", s.ItemID)
		}
		if !it.FitsGender(catalog.GenderBoy) {
			t.Errorf("slot item %q does not fit the buddy's gender", s.ItemID)
		}
		counts[it.Category]++
	}
	if w.FreeItemID != w.Slots[0].ItemID {
		t.Errorf("free item %q is not the first slot %q", w.FreeItemID, w.Slots[0].ItemID)
	}
	if counts[catalog.CategoryTheme] < 1 {
		t.Errorf("slate has no theme slot: %v", counts)
	}
	if got := counts[catalog.CategoryTop] + counts[catalog.CategoryCostume]; got < 2 {
		t.Errorf("slate has %d outfit slots, want at least 2", got)
	}
	if counts[catalog.CategoryHead] < 2 {
		t.Errorf("slate has %d head slots, want at least 2", counts[catalog.CategoryHead])
	}

	discounted := 0
	for i, s := range w.Slots {
		if s.Discount > 0 {
			discounted++
			if i == 0 {
				t.Error("free slot carries the discount")
			}
		}
	}
	if discounted != 1 {
		t.Errorf("slate has %d discounted slots, want 1", discounted)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	reg := catalog.MustLoad()

	a := Generate(reg, catalog.GenderGirl, "2026-W33", nil, testNow, rand.New(rand.NewSource(42)))
	b := Generate(reg, catalog.GenderGirl, "2026-W33", nil, testNow, rand.New(rand.NewSource(42)))
	for i := range a.Slots {
		if a.Slots[i].ItemID != b.Slots[i].ItemID {
			t.Fatalf("same seed produced different slates: %v vs %v", a.Slots, b.Slots)
		}
	}
}

func TestGenerateExcludesRecent(t *testing.T) {
	reg := catalog.MustLoad()

	exclude := []string{"pacc_spiderman", "pacc_viking", "bcostp_batman"}
	w := Generate(reg, catalog.GenderBoy, "2026-W33", exclude, testNow, rand.New(rand.NewSource(3)))
	for _, s := range w.Slots {
		for _, ex := range exclude {
			if s.ItemID == ex {
				t.Errorf("slate contains recently purchased item %q", ex)
			}
		}
	}
}

func TestSlotFinalPrice(t *testing.T) {
	tests := []struct {
		price    int
		discount int
		want     int
	}{
		{100, 0, 100},
		{100, 30, 70},
		{80, 25, 60},
		{1, 99, 1},  // never free
		{3, 50, 2},  // integer discount math
	}
	for _, tc := range tests {
		s := Slot{ItemID: "x", Discount: tc.discount}
		if got := s.FinalPrice(tc.price); got != tc.want {
			t.Errorf("FinalPrice(%d) with %d%% = %d, want %d", tc.price, tc.discount, got, tc.want)
		}
	}
}

func TestFreeFor(t *testing.T) {
	w := &Weekly{FreeItemID: "pacc_xmas", Slots: []Slot{{ItemID: "pacc_xmas"}, {ItemID: "pacc_ninja"}}}

	if !w.FreeFor(w.Slots[0], 5) {
		t.Error("free slot not free at streak 5")
	}
	if w.FreeFor(w.Slots[0], 4) {
		t.Error("free slot free below the streak gate")
	}
	if w.FreeFor(w.Slots[1], 20) {
		t.Error("non-free slot reported free")
	}
}

func TestNextMonday(t *testing.T) {
	got := nextMonday(testNow)
	want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("nextMonday(%s) = %s, want %s", testNow, got, want)
	}

	// From a Monday, the reset is the following Monday.
	monday := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	if got := nextMonday(monday); !got.Equal(want.AddDate(0, 0, 7)) {
		t.Errorf("nextMonday(monday) = %s, want %s", got, want.AddDate(0, 0, 7))
	}
}

func TestRecordPurchaseTrims(t *testing.T) {
	var recent []string
	for i := 0; i < recentTrimAt; i++ {
		recent = RecordPurchase(recent, "item")
	}
	if len(recent) != recentTrimAt {
		t.Fatalf("history length = %d, want %d", len(recent), recentTrimAt)
	}
	recent = RecordPurchase(recent, "overflow")
	if len(recent) != recentKeep {
		t.Fatalf("trimmed history length = %d, want %d", len(recent), recentKeep)
	}
	if recent[len(recent)-1] != "overflow" {
		t.Error("trim dropped the newest purchase")
	}
}
