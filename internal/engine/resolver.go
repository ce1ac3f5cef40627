package engine

import (
	"errors"
	"fmt"

	"github.com/rezaimia/buddypocket/internal/catalog"
	"github.com/rezaimia/buddypocket/internal/shop"
)

var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientFunds = errors.New("not enough gems")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrItemNotUnlocked   = errors.New("item not unlocked")
	ErrWrongGender       = errors.New("item does not fit this buddy")
)

// IsUnlocked reports whether the buddy may equip the item: dev mode
// opens everything, free items gate on level, premium items must have
// been purchased.
func (s *Service) IsUnlocked(it catalog.Item) bool {
	b := s.st.Buddy
	if b.DevMode {
		return true
	}
	if !it.Premium {
		return b.Level >= it.RequiredLevel
	}
	return b.HasItem(it.ID)
}

// PurchaseItem buys a premium item at catalog price. The wallet and the
// unlock move together or not at all.
func (s *Service) PurchaseItem(itemID string) error {
	it, ok := s.reg.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	b := s.st.Buddy
	if b.HasItem(it.ID) {
		return ErrAlreadyOwned
	}
	if !it.Premium {
		// Free items are never bought; they unlock by level.
		return nil
	}
	if b.Gems < it.Price {
		return fmt.Errorf("%w: need %d gems, have %d", ErrInsufficientFunds, it.Price, b.Gems)
	}
	b.Gems -= it.Price
	b.GrantItem(it.ID)
	return nil
}

// PurchaseShopSlot buys one slot of the weekly slate at its discounted
// price. The streak free item costs nothing. Each slot sells once per
// week.
func (s *Service) PurchaseShopSlot(index int) error {
	w := s.st.Shop
	slot := w.Slot(index)
	if slot == nil {
		return fmt.Errorf("no shop slot %d", index)
	}
	if slot.Purchased {
		return shop.ErrAlreadyPurchased
	}
	it, ok := s.reg.Item(slot.ItemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, slot.ItemID)
	}

	b := s.st.Buddy
	price := slot.FinalPrice(it.Price)
	if w.FreeFor(*slot, b.StreakDays) {
		price = 0
	}
	if b.Gems < price {
		return fmt.Errorf("%w: need %d gems, have %d", ErrInsufficientFunds, price, b.Gems)
	}
	b.Gems -= price
	b.GrantItem(it.ID)
	slot.Purchased = true
	s.st.RecentPurchases = shop.RecordPurchase(s.st.RecentPurchases, it.ID)
	return nil
}

// Equip puts an unlocked item on the buddy. A costume clears top and
// bottom; equipping either clears the costume. Themes swap the room.
func (s *Service) Equip(itemID string) error {
	it, ok := s.reg.Item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	b := s.st.Buddy
	if !it.FitsGender(b.Gender) {
		return ErrWrongGender
	}
	if !s.IsUnlocked(it) {
		return fmt.Errorf("%w: %s", ErrItemNotUnlocked, itemID)
	}

	switch it.Category {
	case catalog.CategoryHead:
		b.HeadAccessory = it.ID
	case catalog.CategoryTop:
		b.Top = it.ID
		b.Costume = ""
	case catalog.CategoryBottom:
		b.Bottom = it.ID
		b.Costume = ""
	case catalog.CategoryCostume:
		b.Costume = it.ID
		b.Top = ""
		b.Bottom = ""
	case catalog.CategoryTheme:
		b.RoomTheme = it.ID
	}
	return nil
}

// Unequip clears one cosmetic slot. Clearing the theme returns the room
// to the default.
func (s *Service) Unequip(cat catalog.Category) {
	b := s.st.Buddy
	switch cat {
	case catalog.CategoryHead:
		b.HeadAccessory = ""
	case catalog.CategoryTop:
		b.Top = ""
	case catalog.CategoryBottom:
		b.Bottom = ""
	case catalog.CategoryCostume:
		b.Costume = ""
	case catalog.CategoryTheme:
		b.RoomTheme = "theme_default"
	}
}

// ClaimPassReward claims one battle pass tier and applies its value:
// gem and coin tiers pay their amount, item-like tiers pay the flat gem
// bonus.
func (s *Service) ClaimPassReward(level int) (shop.Reward, error) {
	r, err := s.st.Pass.Claim(level)
	if err != nil {
		return shop.Reward{}, err
	}
	b := s.st.Buddy
	switch r.Kind {
	case shop.RewardGems:
		b.Gems += r.Value
	case shop.RewardCoins:
		b.Coins += r.Value
	default:
		b.Gems += shop.ItemRewardGems
	}
	return *r, nil
}

// UpgradePassPremium switches the battle pass to the premium track.
func (s *Service) UpgradePassPremium() {
	s.st.Pass.Premium = true
}
