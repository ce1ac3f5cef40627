package engine

import (
	"errors"

	"github.com/google/uuid"

	"github.com/rezaimia/buddypocket/internal/missions"
	"github.com/rezaimia/buddypocket/internal/pet"
)

var ErrDecorNotFound = errors.New("decor placement not found")

// Care performs one care action: refill the need, pay the flat XP and
// coin reward, and advance the feed mission when feeding.
func (s *Service) Care(action pet.Action) {
	b := s.st.Buddy
	b.RestoreNeed(action.Need(), action.Restore())
	b.Coins += s.cfg.CareCoins
	s.grantXP(s.cfg.CareXP)

	if action == pet.ActionFeed {
		s.unlockAchievement(missions.AchFirstFeed)
		s.recordMission(missions.IDFeed)
	}
}

// GameResult summarizes what one finished mini-game session paid.
type GameResult struct {
	Gems      int
	Coins     int
	XP        int
	HighScore bool
}

// FinishMiniGame settles a completed session: a gem roll pushed through
// the daily caps, flat coins and XP, battle pass XP, the games mission,
// and the per-game best score.
func (s *Service) FinishMiniGame(game string, score int) GameResult {
	b := s.st.Buddy

	rolled := s.cfg.GameGemsMin
	if spread := s.cfg.GameGemsMax - s.cfg.GameGemsMin; spread > 0 {
		rolled += s.rng.Intn(spread + 1)
	}
	granted := s.st.Caps.RecordSession(rolled)

	b.Gems += granted
	b.Coins += s.cfg.GameCoins
	s.grantXP(s.cfg.GameXP)
	s.grantPassXP(s.cfg.GamePassXP)
	s.recordMission(missions.IDGame)

	return GameResult{
		Gems:      granted,
		Coins:     s.cfg.GameCoins,
		XP:        s.cfg.GameXP,
		HighScore: s.recordHighScore(game, score),
	}
}

// recordHighScore keeps the best score per game and reports whether
// this one took the spot.
func (s *Service) recordHighScore(game string, score int) bool {
	for i := range s.st.HighScores {
		if s.st.HighScores[i].Game != game {
			continue
		}
		if score <= s.st.HighScores[i].Score {
			return false
		}
		s.st.HighScores[i].Score = score
		s.st.HighScores[i].When = s.now()
		return true
	}
	s.st.HighScores = append(s.st.HighScores, HighScore{Game: game, Score: score, When: s.now()})
	return true
}

// FinishBattle settles a battle outcome. Wins pay gems through the
// battle channel plus XP, coins, and pass XP; losses pay a consolation.
func (s *Service) FinishBattle(won bool) GameResult {
	b := s.st.Buddy
	if !won {
		b.Coins += s.cfg.BattleLossCoins
		s.grantXP(s.cfg.BattleLossXP)
		return GameResult{Coins: s.cfg.BattleLossCoins, XP: s.cfg.BattleLossXP}
	}

	granted := s.st.Caps.RecordBattle(s.cfg.BattleWinGems)
	b.Gems += granted
	b.Coins += s.cfg.BattleWinCoins
	s.grantXP(s.cfg.BattleWinXP)
	s.grantPassXP(s.cfg.BattleWinPassXP)
	s.unlockAchievement(missions.AchFirstBattle)

	return GameResult{Gems: granted, Coins: s.cfg.BattleWinCoins, XP: s.cfg.BattleWinXP}
}

// RecordMessageSent advances the social mission.
func (s *Service) RecordMessageSent() {
	s.recordMission(missions.IDSocial)
}

// GrantGems credits purchased gems. The store front end verifies the
// transaction; the engine only applies it.
func (s *Service) GrantGems(amount int) {
	if amount > 0 {
		s.st.Buddy.Gems += amount
	}
}

// devWallet is the currency balance dev mode sets. Large enough to buy
// anything, far from integer overflow under further grants.
const devWallet = 1 << 30

// ActivateDevMode unlocks everything when the code matches.
func (s *Service) ActivateDevMode(code string) bool {
	if code != s.cfg.DevCode {
		return false
	}
	b := s.st.Buddy
	b.DevMode = true
	b.Coins = devWallet
	b.Gems = devWallet
	b.Level = pet.MaxLevel
	b.XP = 0
	b.RevealSecretBodies(s.reg)
	b.BodyType = "ghost"
	b.HeadAccessory = "pacc_spiderman"
	b.Top = ""
	b.Bottom = "bbot_baggy"
	b.Costume = "bcostp_psgplayer"
	return true
}

// PlaceDecor drops a decor emoji in the room at normalized coordinates.
func (s *Service) PlaceDecor(decorID, emoji string, x, y float64, wall bool) pet.DecorPlacement {
	p := pet.DecorPlacement{
		ID:      uuid.NewString(),
		DecorID: decorID,
		Emoji:   emoji,
		X:       x,
		Y:       y,
		Wall:    wall,
	}
	s.st.Buddy.Decor = append(s.st.Buddy.Decor, p)
	return p
}

func (s *Service) MoveDecor(id string, x, y float64) error {
	for i := range s.st.Buddy.Decor {
		if s.st.Buddy.Decor[i].ID == id {
			s.st.Buddy.Decor[i].X = x
			s.st.Buddy.Decor[i].Y = y
			return nil
		}
	}
	return ErrDecorNotFound
}

func (s *Service) RemoveDecor(id string) error {
	decor := s.st.Buddy.Decor
	for i := range decor {
		if decor[i].ID == id {
			s.st.Buddy.Decor = append(decor[:i], decor[i+1:]...)
			return nil
		}
	}
	return ErrDecorNotFound
}
