package engine

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

type RoundKind string

const (
	RoundStrength RoundKind = "strength"
	RoundLuck     RoundKind = "luck"
	RoundSpeed    RoundKind = "speed"
)

func (k RoundKind) Emoji() string {
	switch k {
	case RoundStrength:
		return "💪"
	case RoundLuck:
		return "🍀"
	default:
		return "⚡"
	}
}

// Round is one resolved battle round. Higher value wins the round.
type Round struct {
	Number        int       `json:"number"`
	Kind          RoundKind `json:"kind"`
	PlayerValue   int       `json:"player_value"`
	OpponentValue int       `json:"opponent_value"`
}

// Battle is a finished three-round match.
type Battle struct {
	ID            string    `json:"id"`
	OpponentID    string    `json:"opponent_id"`
	Rounds        []Round   `json:"rounds"`
	PlayerScore   int       `json:"player_score"`
	OpponentScore int       `json:"opponent_score"`
	Won           bool      `json:"won"`
	StartedAt     time.Time `json:"started_at"`
}

var roundKinds = []RoundKind{RoundStrength, RoundLuck, RoundSpeed}

// SimulateBattle resolves three one-shot rounds against an opponent and
// settles the rewards for the outcome. Round values are rolled in
// [10,100]; a tie on total score counts as a loss for reward purposes.
func (s *Service) SimulateBattle(opponentID string) Battle {
	b := Battle{
		ID:         uuid.NewString(),
		OpponentID: opponentID,
		StartedAt:  s.now(),
	}
	for i, kind := range roundKinds {
		r := Round{
			Number:        i + 1,
			Kind:          kind,
			PlayerValue:   10 + s.rng.Intn(91),
			OpponentValue: 10 + s.rng.Intn(91),
		}
		if r.PlayerValue > r.OpponentValue {
			b.PlayerScore++
		} else if r.OpponentValue > r.PlayerValue {
			b.OpponentScore++
		}
		b.Rounds = append(b.Rounds, r)
	}
	b.Won = b.PlayerScore > b.OpponentScore
	s.FinishBattle(b.Won)
	return b
}

// Profile is the snapshot the social layer syncs for this player.
type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FriendCode string `json:"friend_code"`
	Level      int    `json:"level"`
	BodyType   string `json:"body_type"`
	BodyColor  string `json:"body_color"`
	EyeType    string `json:"eye_type"`
	MoodEmoji  string `json:"mood_emoji"`
}

// Profile derives the player snapshot from the buddy. The friend code
// is a stable four-digit tag derived from the buddy id.
func (s *Service) Profile() Profile {
	b := s.st.Buddy
	return Profile{
		ID:         b.ID,
		Username:   b.Name,
		FriendCode: friendCode(b.ID),
		Level:      b.Level,
		BodyType:   b.BodyType,
		BodyColor:  b.BodyColor,
		EyeType:    b.EyeType,
		MoodEmoji:  b.MoodEmoji(),
	}
}

func friendCode(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return "BUDDY#" + itoa4(1000+int(h.Sum32()%9000))
}

func itoa4(n int) string {
	buf := [4]byte{}
	for i := 3; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[:])
}
