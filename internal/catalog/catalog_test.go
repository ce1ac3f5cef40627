package catalog

import (
	"testing"
)

func TestLoad(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r.Items) == 0 || len(r.Bodies) == 0 || len(r.Colors) == 0 || len(r.Eyes) == 0 {
		t.Fatalf("Load() returned empty sections: items=%d bodies=%d colors=%d eyes=%d",
			len(r.Items), len(r.Bodies), len(r.Colors), len(r.Eyes))
	}
	if got, want := len(r.Bodies), 30; got != want {
		t.Errorf("len(Bodies) = %d, want %d", got, want)
	}
	if got, want := len(r.Colors), 40; got != want {
		t.Errorf("len(Colors) = %d, want %d", got, want)
	}
	if got, want := len(r.Eyes), 20; got != want {
		t.Errorf("len(Eyes) = %d, want %d", got, want)
	}
}

func TestItemLookup(t *testing.T) {
	r := MustLoad()

	tests := []struct {
		id       string
		ok       bool
		category Category
		premium  bool
		price    int
	}{
		{"hat_tophat", true, CategoryHead, false, 0},
		{"pacc_spiderman", true, CategoryHead, true, 80},
		{"bcostp_batman", true, CategoryCostume, true, 150},
		{"gbot_tutu", true, CategoryBottom, false, 0},
		{"theme_aquarium", true, CategoryTheme, true, 50},
		{"theme_default", true, CategoryTheme, false, 0},
		{"no_such_item", false, "", false, 0},
	}
	for _, tc := range tests {
		it, ok := r.Item(tc.id)
		if ok != tc.ok {
			t.Errorf("Item(%q) ok = %v, want %v", tc.id, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if it.Category != tc.category || it.Premium != tc.premium || it.Price != tc.price {
			t.Errorf("Item(%q) = {category:%s premium:%v price:%d}, want {%s %v %d}",
				tc.id, it.Category, it.Premium, it.Price, tc.category, tc.premium, tc.price)
		}
	}
}

func TestItemsForGender(t *testing.T) {
	r := MustLoad()

	for _, g := range []Gender{GenderBoy, GenderGirl} {
		items := r.ItemsFor(g)
		if len(items) == 0 {
			t.Fatalf("ItemsFor(%s) is empty", g)
		}
		for _, it := range items {
			if !it.Unisex() && it.Gender != g {
				t.Errorf("ItemsFor(%s) contains %q with gender %s", g, it.ID, it.Gender)
			}
		}
	}

	// Unisex premium accessories show up for both genders.
	for _, g := range []Gender{GenderBoy, GenderGirl} {
		found := false
		for _, it := range r.ItemsFor(g) {
			if it.ID == "pacc_xmas" {
				found = true
			}
		}
		if !found {
			t.Errorf("ItemsFor(%s) missing unisex item pacc_xmas", g)
		}
	}
}

func TestPremiumFor(t *testing.T) {
	r := MustLoad()
	for _, it := range r.PremiumFor(GenderGirl) {
		if !it.Premium {
			t.Errorf("PremiumFor returned non-premium item %q", it.ID)
		}
		if it.Price <= 0 {
			t.Errorf("premium item %q has price %d", it.ID, it.Price)
		}
	}
}

func TestSecretBodies(t *testing.T) {
	r := MustLoad()

	secrets := r.SecretBodies()
	if got, want := len(secrets), 10; got != want {
		t.Fatalf("len(SecretBodies()) = %d, want %d", got, want)
	}
	for _, b := range secrets {
		if b.UnlockLevel <= 0 {
			t.Errorf("secret body %q has no unlock level", b.ID)
		}
	}
	if got, want := len(r.BasicBodies()), 20; got != want {
		t.Errorf("len(BasicBodies()) = %d, want %d", got, want)
	}

	rainbow, ok := r.Body("rainbow")
	if !ok || rainbow.UnlockLevel != 50 {
		t.Errorf("Body(rainbow) = %+v, %v; want unlock level 50", rainbow, ok)
	}
}
