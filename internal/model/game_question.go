package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

var answerKeys = [4]string{"a", "b", "c", "d"}

// HelpHash stores hint payloads keyed by help type. Entries are written once
// when a hint is used and survive for the rest of the question's life.
type HelpHash map[string]any

func (h HelpHash) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

func (h *HelpHash) Scan(value any) error {
	if value == nil {
		*h = HelpHash{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported help_hash column type %T", value)
	}
}

// GameQuestion binds one bank question to one level of a game. The columns
// A..D hold a permutation of the variant numbers 1..4; variant 1 is the
// correct one, so the displayed answer order differs from game to game.
type GameQuestion struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	GameID     uint           `json:"game_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Level      int            `json:"level" gorm:"not null"`
	A          int            `json:"-" gorm:"not null"`
	B          int            `json:"-" gorm:"not null"`
	C          int            `json:"-" gorm:"not null"`
	D          int            `json:"-" gorm:"not null"`
	HelpHash   HelpHash       `json:"help_hash" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewGameQuestion shuffles the question's variants over the keys a..d.
func NewGameQuestion(q Question, level int, rng *rand.Rand) GameQuestion {
	perm := rng.Perm(4)
	return GameQuestion{
		QuestionID: q.ID,
		Question:   q,
		Level:      level,
		A:          perm[0] + 1,
		B:          perm[1] + 1,
		C:          perm[2] + 1,
		D:          perm[3] + 1,
		HelpHash:   HelpHash{},
	}
}

func (gq *GameQuestion) slots() [4]int {
	return [4]int{gq.A, gq.B, gq.C, gq.D}
}

// CorrectAnswerKey returns the key (a..d) that holds the correct variant.
func (gq *GameQuestion) CorrectAnswerKey() string {
	for i, variant := range gq.slots() {
		if variant == 1 {
			return answerKeys[i]
		}
	}
	return ""
}

// Variants maps each answer key to the text it shows for this game.
func (gq *GameQuestion) Variants() map[string]string {
	answers := gq.Question.answers()
	variants := make(map[string]string, len(answerKeys))
	for i, variant := range gq.slots() {
		variants[answerKeys[i]] = answers[variant-1]
	}
	return variants
}

func (gq *GameQuestion) Text() string {
	return gq.Question.Text
}

// addAudienceHelp distributes 100 percent of the audience votes over the four
// keys, skewed toward the correct answer but never guaranteeing it.
func (gq *GameQuestion) addAudienceHelp(rng *rand.Rand) {
	correct := gq.CorrectAnswerKey()

	weights := make(map[string]int, len(answerKeys))
	total := 0
	for _, key := range answerKeys {
		w := rng.Intn(20) + 5
		if key == correct {
			w += 40 + rng.Intn(20)
		}
		weights[key] = w
		total += w
	}

	votes := make(map[string]int, len(answerKeys))
	left := 100
	for i, key := range answerKeys {
		if i == len(answerKeys)-1 {
			votes[key] = left
			break
		}
		share := weights[key] * 100 / total
		votes[key] = share
		left -= share
	}
	gq.HelpHash[string(HelpAudience)] = votes
}

// addFiftyFifty keeps the correct key plus one random wrong key.
func (gq *GameQuestion) addFiftyFifty(rng *rand.Rand) {
	correct := gq.CorrectAnswerKey()
	wrong := make([]string, 0, 3)
	for _, key := range answerKeys {
		if key != correct {
			wrong = append(wrong, key)
		}
	}
	keep := []string{correct, wrong[rng.Intn(len(wrong))]}
	sort.Strings(keep)
	gq.HelpHash[string(HelpFiftyFifty)] = keep
}

var friendNames = []string{"Max", "Olga", "Pavel", "Dasha", "Artem", "Katya"}

// addFriendCall records the friend's guess. The friend is right most of the
// time but not always.
func (gq *GameQuestion) addFriendCall(rng *rand.Rand) {
	key := gq.CorrectAnswerKey()
	if rng.Intn(10) < 2 {
		key = answerKeys[rng.Intn(len(answerKeys))]
	}
	name := friendNames[rng.Intn(len(friendNames))]
	gq.HelpHash[string(HelpFriendCall)] = fmt.Sprintf("%s thinks the answer is %s", name, strings.ToUpper(key))
}
