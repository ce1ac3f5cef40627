package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBody  = errors.New("unknown body type")
	ErrUnknownColor = errors.New("unknown color")
	ErrUnknownEyes  = errors.New("unknown eye style")
	ErrBodyLocked   = errors.New("body type not unlocked")
	ErrColorLocked  = errors.New("color not unlocked")
	ErrEyesLocked   = errors.New("eye style not unlocked")
)

// SetBody switches the buddy's body type. Basic bodies are always
// available; secret ones must have been revealed by level.
func (s *Service) SetBody(id string) error {
	body, ok := s.reg.Body(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBody, id)
	}
	b := s.st.Buddy
	if body.Secret() && !b.DevMode && !b.HasBody(body.ID) {
		return fmt.Errorf("%w: %s reveals at level %d", ErrBodyLocked, id, body.UnlockLevel)
	}
	b.BodyType = body.ID
	return nil
}

// SetColor switches the body color. Premium colors must have been
// purchased.
func (s *Service) SetColor(id string) error {
	c, ok := s.reg.Color(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColor, id)
	}
	b := s.st.Buddy
	if c.Premium && !b.DevMode && !b.HasColor(c.ID) {
		return fmt.Errorf("%w: %s", ErrColorLocked, id)
	}
	b.BodyColor = c.ID
	return nil
}

// SetEyes switches the eye style. Premium styles must have been
// purchased.
func (s *Service) SetEyes(id string) error {
	e, ok := s.reg.Eye(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEyes, id)
	}
	b := s.st.Buddy
	if e.Premium && !b.DevMode && !b.HasEyes(e.ID) {
		return fmt.Errorf("%w: %s", ErrEyesLocked, id)
	}
	b.EyeType = e.ID
	return nil
}

// PurchaseColor buys a premium color at catalog price.
func (s *Service) PurchaseColor(id string) error {
	c, ok := s.reg.Color(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColor, id)
	}
	b := s.st.Buddy
	if b.HasColor(c.ID) {
		return ErrAlreadyOwned
	}
	if !c.Premium {
		// Free colors are always available; nothing to buy.
		return nil
	}
	if b.Gems < c.Price {
		return fmt.Errorf("%w: need %d gems, have %d", ErrInsufficientFunds, c.Price, b.Gems)
	}
	b.Gems -= c.Price
	b.GrantColor(c.ID)
	return nil
}

// PurchaseEyes buys a premium eye style at catalog price.
func (s *Service) PurchaseEyes(id string) error {
	e, ok := s.reg.Eye(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEyes, id)
	}
	b := s.st.Buddy
	if b.HasEyes(e.ID) {
		return ErrAlreadyOwned
	}
	if !e.Premium {
		return nil
	}
	if b.Gems < e.Price {
		return fmt.Errorf("%w: need %d gems, have %d", ErrInsufficientFunds, e.Price, b.Gems)
	}
	b.Gems -= e.Price
	b.GrantEyes(e.ID)
	return nil
}
