package model

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// Status is derived from a game's fields, never stored.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusFail       Status = "fail"
	StatusTimeout    Status = "timeout"
	StatusMoney      Status = "money"
)

// HelpType names the three hints a player may use once per game.
type HelpType string

const (
	HelpAudience   HelpType = "audience_help"
	HelpFiftyFifty HelpType = "fifty_fifty"
	HelpFriendCall HelpType = "friend_call"
)

// MaxLevel is the index of the final question.
const MaxLevel = MaxQuestionLevel

// TimeLimit is the wall-clock budget for a whole game.
const TimeLimit = 35 * time.Minute

// PrizeLadder[k] is the amount won for passing the question at level k.
var PrizeLadder = [MaxLevel + 1]int{
	100, 200, 300, 500, 1000,
	2000, 4000, 8000, 16000, 32000,
	64000, 125000, 250000, 500000, 1000000,
}

// FinalPrize is awarded for passing the last question.
const FinalPrize = 1000000

// State-machine violations. The service layer wraps these for its callers.
var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrTimeUp        = errors.New("game time limit exceeded")
	ErrHelpUsed      = errors.New("help already used in this game")
	ErrUnknownHelp   = errors.New("unknown help type")
	ErrNoLevelPassed = errors.New("no level passed yet")
)

// Game is a single play-through for one user. All transitions go through
// AnswerCurrentQuestion, TakeMoney and UseHelp; everything else is derived.
// The wall clock and randomness are passed in by the caller so the state
// machine stays deterministic under test.
type Game struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           uint           `json:"user_id" gorm:"not null;index"`
	User             User           `json:"-" gorm:"foreignKey:UserID"`
	CurrentLevel     int            `json:"current_level" gorm:"not null;default:0"`
	Prize            int            `json:"prize" gorm:"not null;default:0"`
	IsFailed         bool           `json:"is_failed" gorm:"not null;default:false"`
	AudienceHelpUsed bool           `json:"audience_help_used" gorm:"not null;default:false"`
	FiftyFiftyUsed   bool           `json:"fifty_fifty_used" gorm:"not null;default:false"`
	FriendCallUsed   bool           `json:"friend_call_used" gorm:"not null;default:false"`
	FinishedAt       *time.Time     `json:"finished_at,omitempty"`
	GameQuestions    []GameQuestion `json:"game_questions,omitempty" gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (g *Game) Finished() bool {
	return g.FinishedAt != nil
}

// TimedOut reports whether the play clock has run out. For a finished game
// the clock stopped at FinishedAt.
func (g *Game) TimedOut(now time.Time) bool {
	end := now
	if g.FinishedAt != nil {
		end = *g.FinishedAt
	}
	return end.Sub(g.CreatedAt) > TimeLimit
}

// Status derives the game's state label. A finished game with a wrong answer
// reads as timeout when the clock had run out, fail otherwise; a finished
// game without one reads as won past the last level, money before it.
func (g *Game) Status(now time.Time) Status {
	if !g.Finished() {
		return StatusInProgress
	}
	if g.CurrentLevel > MaxLevel {
		return StatusWon
	}
	if g.IsFailed {
		if g.TimedOut(now) {
			return StatusTimeout
		}
		return StatusFail
	}
	return StatusMoney
}

// CurrentGameQuestion returns the question for the current level, nil once
// the game is finished.
func (g *Game) CurrentGameQuestion() *GameQuestion {
	if g.Finished() || g.CurrentLevel > MaxLevel {
		return nil
	}
	for i := range g.GameQuestions {
		if g.GameQuestions[i].Level == g.CurrentLevel {
			return &g.GameQuestions[i]
		}
	}
	return nil
}

// PreviousGameQuestion returns the last answered question, nil before any.
func (g *Game) PreviousGameQuestion() *GameQuestion {
	for i := range g.GameQuestions {
		if g.GameQuestions[i].Level == g.CurrentLevel-1 {
			return &g.GameQuestions[i]
		}
	}
	return nil
}

// PreviousLevel is -1 before the first correct answer.
func (g *Game) PreviousLevel() int {
	return g.CurrentLevel - 1
}

// TimeLeft reports how much of the play clock remains, never negative.
func (g *Game) TimeLeft(now time.Time) time.Duration {
	left := TimeLimit - now.Sub(g.CreatedAt)
	if left < 0 || g.Finished() {
		return 0
	}
	return left
}

func (g *Game) finish(now time.Time, failed bool) {
	t := now
	g.FinishedAt = &t
	if failed {
		g.IsFailed = true
	}
}

// AnswerCurrentQuestion applies one answer. The clock is checked first: once
// the time budget is spent every answer finishes the game as a timeout, the
// letter's correctness notwithstanding. A correct answer moves the game one
// level up (finishing it with the final prize past the last level), a wrong
// one finishes it failed with level and prize untouched.
func (g *Game) AnswerCurrentQuestion(letter string, now time.Time) bool {
	if g.Finished() {
		return false
	}
	if g.TimedOut(now) {
		g.finish(now, true)
		return false
	}

	gq := g.CurrentGameQuestion()
	if gq == nil || letter != gq.CorrectAnswerKey() {
		g.finish(now, true)
		return false
	}

	g.CurrentLevel++
	if g.CurrentLevel > MaxLevel {
		g.Prize = FinalPrize
		g.finish(now, false)
	} else {
		g.Prize = PrizeLadder[g.CurrentLevel-1]
	}
	return true
}

// TakeMoney finishes the game with the prize for the highest level passed.
// Rejected before the first passed level. When the clock has already run out
// the game is finalized as a timeout instead and ErrTimeUp reported, so the
// caller persists the finalization but credits nothing.
func (g *Game) TakeMoney(now time.Time) error {
	if g.Finished() {
		return ErrGameFinished
	}
	if g.CurrentLevel == 0 {
		return ErrNoLevelPassed
	}
	if g.TimedOut(now) {
		g.finish(now, true)
		return ErrTimeUp
	}
	g.Prize = PrizeLadder[g.CurrentLevel-1]
	g.finish(now, false)
	return nil
}

// UseHelp flips the hint's used flag and writes its payload into the current
// question's help hash. Each hint type works once per game; a repeated use is
// rejected with no state change.
func (g *Game) UseHelp(kind HelpType, rng *rand.Rand) error {
	if g.Finished() {
		return ErrGameFinished
	}
	gq := g.CurrentGameQuestion()
	if gq == nil {
		return ErrGameFinished
	}

	switch kind {
	case HelpAudience:
		if g.AudienceHelpUsed {
			return ErrHelpUsed
		}
		gq.addAudienceHelp(rng)
		g.AudienceHelpUsed = true
	case HelpFiftyFifty:
		if g.FiftyFiftyUsed {
			return ErrHelpUsed
		}
		gq.addFiftyFifty(rng)
		g.FiftyFiftyUsed = true
	case HelpFriendCall:
		if g.FriendCallUsed {
			return ErrHelpUsed
		}
		gq.addFriendCall(rng)
		g.FriendCallUsed = true
	default:
		return ErrUnknownHelp
	}
	return nil
}
