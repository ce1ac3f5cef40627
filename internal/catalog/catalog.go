// Package catalog holds the static cosmetic registry: every item, body
// type, color, eye style, and room theme the game knows about. The data
// lives in an embedded YAML table so adding content is a data edit, not
// a code change.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawData []byte

type Gender string

const (
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

type Category string

const (
	CategoryHead    Category = "head"
	CategoryTop     Category = "top"
	CategoryBottom  Category = "bottom"
	CategoryCostume Category = "costume"
	CategoryTheme   Category = "theme"

	// Declared for forward data compatibility; the table currently has
	// no items in these categories.
	CategoryDecor   Category = "decor"
	CategoryFood    Category = "food"
	CategorySpecial Category = "special"
)

// Item is one purchasable or equippable catalog entry. Price is in gems
// and only meaningful for premium items; free items gate on RequiredLevel
// alone.
type Item struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Emoji         string   `yaml:"emoji"`
	Category      Category `yaml:"category"`
	Gender        Gender   `yaml:"gender,omitempty"`
	Premium       bool     `yaml:"premium,omitempty"`
	Price         int      `yaml:"price,omitempty"`
	RequiredLevel int      `yaml:"required_level,omitempty"`
}

func (it Item) Unisex() bool { return it.Gender == "" }

// FitsGender reports whether the item can be worn by a buddy of the
// given gender.
func (it Item) FitsGender(g Gender) bool { return it.Unisex() || it.Gender == g }

// Body is a buddy body type. UnlockLevel zero means available from the
// start; a positive value marks a secret body revealed at that level.
type Body struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	UnlockLevel int    `yaml:"unlock_level,omitempty"`
}

func (b Body) Secret() bool { return b.UnlockLevel > 0 }

// Color and Eyes follow the item gating model: free entries are always
// available, premium ones are bought with gems.
type Color struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Hex     string `yaml:"hex"`
	Premium bool   `yaml:"premium,omitempty"`
	Price   int    `yaml:"price,omitempty"`
}

type Eyes struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Premium bool   `yaml:"premium,omitempty"`
	Price   int    `yaml:"price,omitempty"`
}

// Registry is the parsed catalog with id indexes built.
type Registry struct {
	Items  []Item  `yaml:"items"`
	Bodies []Body  `yaml:"bodies"`
	Colors []Color `yaml:"colors"`
	Eyes   []Eyes  `yaml:"eyes"`

	itemsByID  map[string]Item
	bodiesByID map[string]Body
	colorsByID map[string]Color
	eyesByID   map[string]Eyes
}

// Load parses the embedded data table. It fails on duplicate ids so a
// bad data edit is caught at startup rather than at purchase time.
func Load() (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(rawData, &r); err != nil {
		return nil, fmt.Errorf("parsing catalog data: %w", err)
	}

	r.itemsByID = make(map[string]Item, len(r.Items))
	for _, it := range r.Items {
		if _, dup := r.itemsByID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		r.itemsByID[it.ID] = it
	}
	r.bodiesByID = make(map[string]Body, len(r.Bodies))
	for _, b := range r.Bodies {
		if _, dup := r.bodiesByID[b.ID]; dup {
			return nil, fmt.Errorf("duplicate body id %q", b.ID)
		}
		r.bodiesByID[b.ID] = b
	}
	r.colorsByID = make(map[string]Color, len(r.Colors))
	for _, c := range r.Colors {
		if _, dup := r.colorsByID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate color id %q", c.ID)
		}
		r.colorsByID[c.ID] = c
	}
	r.eyesByID = make(map[string]Eyes, len(r.Eyes))
	for _, e := range r.Eyes {
		if _, dup := r.eyesByID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate eye id %q", e.ID)
		}
		r.eyesByID[e.ID] = e
	}
	return &r, nil
}

// MustLoad is Load for main and tests, where a broken embedded table is
// unrecoverable.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Item(id string) (Item, bool) {
	it, ok := r.itemsByID[id]
	return it, ok
}

func (r *Registry) Body(id string) (Body, bool) {
	b, ok := r.bodiesByID[id]
	return b, ok
}

func (r *Registry) Color(id string) (Color, bool) {
	c, ok := r.colorsByID[id]
	return c, ok
}

func (r *Registry) Eye(id string) (Eyes, bool) {
	e, ok := r.eyesByID[id]
	return e, ok
}

// ItemsFor returns every item wearable by the given gender, in table
// order.
func (r *Registry) ItemsFor(g Gender) []Item {
	var out []Item
	for _, it := range r.Items {
		if it.FitsGender(g) {
			out = append(out, it)
		}
	}
	return out
}

// PremiumFor returns the premium slice of ItemsFor. The weekly shop
// draws its slate from this pool.
func (r *Registry) PremiumFor(g Gender) []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Premium && it.FitsGender(g) {
			out = append(out, it)
		}
	}
	return out
}

// SecretBodies returns the secret bodies in ascending unlock-level
// order.
func (r *Registry) SecretBodies() []Body {
	var out []Body
	for _, b := range r.Bodies {
		if b.Secret() {
			out = append(out, b)
		}
	}
	return out
}

// BasicBodies returns the bodies available to a fresh buddy.
func (r *Registry) BasicBodies() []Body {
	var out []Body
	for _, b := range r.Bodies {
		if !b.Secret() {
			out = append(out, b)
		}
	}
	return out
}
