package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GameService is the request layer's contract for everything a player does
// with a game. Every mutating call loads the game, checks ownership, applies
// the state machine and persists the outcome in one transaction.
type GameService interface {
	CreateGame(userID uint) (*dto.GameResponseDTO, error)
	GetGame(gameID, userID uint) (*dto.GameResponseDTO, error)
	Answer(gameID, userID uint, letter string) (*dto.AnswerResultDTO, error)
	TakeMoney(gameID, userID uint) (*dto.GameResponseDTO, error)
	UseHelp(gameID, userID uint, kind model.HelpType) (*dto.GameResponseDTO, error)
}

type gameService struct {
	gameRepo     repository.GameRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
	db           *gorm.DB // for transactions spanning game, question and balance rows
	now          func() time.Time
	mu           sync.Mutex // guards rng
	rng          *rand.Rand
}

// NewGameService wires the game service. The clock and the random source are
// injected so question selection, shuffles and hint payloads are reproducible
// under test.
func NewGameService(
	gameRepo repository.GameRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
	now func() time.Time,
	rng *rand.Rand,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		db:           db,
		now:          now,
		rng:          rng,
	}
}

// CreateGame builds a fresh game for the user: one random bank question per
// level 0..14, shuffled variants, all persisted atomically with the game row.
// When the user already has an unfinished game, that game's state is returned
// alongside ErrActiveGameExists and nothing is created.
func (s *gameService) CreateGame(userID uint) (*dto.GameResponseDTO, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	if active, err := s.gameRepo.FindActiveByUser(userID); err == nil {
		existing, err := s.gameRepo.FindByIDWithQuestions(active.ID)
		if err != nil {
			return nil, err
		}
		return s.gameDTO(existing), fmt.Errorf("game %d: %w", active.ID, ErrActiveGameExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pool := make([][]model.Question, 0, model.MaxLevel+1)
	for level := model.MinQuestionLevel; level <= model.MaxQuestionLevel; level++ {
		questions, err := s.questionRepo.FindAllByLevel(level)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return nil, fmt.Errorf("level %d: %w", level, ErrInsufficientQuestions)
		}
		pool = append(pool, questions)
	}

	game := model.Game{
		UserID:        userID,
		GameQuestions: make([]model.GameQuestion, 0, model.MaxLevel+1),
	}
	s.mu.Lock()
	for level, questions := range pool {
		question := questions[s.rng.Intn(len(questions))]
		game.GameQuestions = append(game.GameQuestions, model.NewGameQuestion(question, level, s.rng))
	}
	s.mu.Unlock()

	if err := s.gameRepo.Create(&game); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create game")
		return nil, err
	}
	log.Info().Uint("userID", userID).Uint("gameID", game.ID).Msg("Game created")
	return s.gameDTO(&game), nil
}

func (s *gameService) GetGame(gameID, userID uint) (*dto.GameResponseDTO, error) {
	game, err := s.loadOwnedGame(gameID, userID)
	if err != nil {
		return nil, err
	}
	return s.gameDTO(game), nil
}

// Answer applies one answer to the game's current question and persists the
// result. The final-question win credits the user's balance in the same
// transaction as the finalization.
func (s *gameService) Answer(gameID, userID uint, letter string) (*dto.AnswerResultDTO, error) {
	game, err := s.loadOwnedGame(gameID, userID)
	if err != nil {
		return nil, err
	}
	if game.Finished() {
		return nil, fmt.Errorf("game %d: %w", gameID, model.ErrGameFinished)
	}

	correct := game.AnswerCurrentQuestion(letter, s.now())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.gameRepo.Update(tx, game); err != nil {
			return err
		}
		if game.Finished() && !game.IsFailed {
			// only the won transition reaches here from an answer
			return s.userRepo.CreditBalance(tx, game.UserID, game.Prize)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("gameID", gameID).Msg("Failed to persist answer")
		return nil, err
	}

	return &dto.AnswerResultDTO{Correct: correct, Game: *s.gameDTO(game)}, nil
}

// TakeMoney finalizes the game with the prize for the highest passed level
// and credits the user's balance, both in one transaction. A run-out clock
// persists the timeout finalization instead and credits nothing.
func (s *gameService) TakeMoney(gameID, userID uint) (*dto.GameResponseDTO, error) {
	game, err := s.loadOwnedGame(gameID, userID)
	if err != nil {
		return nil, err
	}

	switch err := game.TakeMoney(s.now()); {
	case err == nil:
		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.gameRepo.Update(tx, game); err != nil {
				return err
			}
			return s.userRepo.CreditBalance(tx, game.UserID, game.Prize)
		})
		if txErr != nil {
			log.Error().Err(txErr).Uint("gameID", gameID).Msg("Failed to persist take money")
			return nil, txErr
		}
		log.Info().Uint("gameID", gameID).Int("prize", game.Prize).Msg("Money taken")
		return s.gameDTO(game), nil
	case errors.Is(err, model.ErrTimeUp):
		if updErr := s.gameRepo.Update(s.db, game); updErr != nil {
			return nil, updErr
		}
		return s.gameDTO(game), fmt.Errorf("game %d: %w", gameID, err)
	default:
		return nil, fmt.Errorf("game %d: %w", gameID, err)
	}
}

// UseHelp applies one of the three hints to the current question. The used
// flag on the game and the payload on the question are persisted together.
func (s *gameService) UseHelp(gameID, userID uint, kind model.HelpType) (*dto.GameResponseDTO, error) {
	game, err := s.loadOwnedGame(gameID, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = game.UseHelp(kind, s.rng)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", gameID, err)
	}

	gq := game.CurrentGameQuestion()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.gameRepo.Update(tx, game); err != nil {
			return err
		}
		return s.gameRepo.UpdateQuestion(tx, gq)
	})
	if err != nil {
		log.Error().Err(err).Uint("gameID", gameID).Str("help", string(kind)).Msg("Failed to persist help")
		return nil, err
	}
	return s.gameDTO(game), nil
}

func (s *gameService) loadOwnedGame(gameID, userID uint) (*model.Game, error) {
	game, err := s.gameRepo.FindByIDWithQuestions(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		return nil, err
	}
	if game.UserID != userID {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrForbidden)
	}
	return game, nil
}

func (s *gameService) gameDTO(game *model.Game) *dto.GameResponseDTO {
	now := s.now()
	resp := &dto.GameResponseDTO{
		ID:               game.ID,
		UserID:           game.UserID,
		Status:           string(game.Status(now)),
		CurrentLevel:     game.CurrentLevel,
		PreviousLevel:    game.PreviousLevel(),
		Prize:            game.Prize,
		AudienceHelpUsed: game.AudienceHelpUsed,
		FiftyFiftyUsed:   game.FiftyFiftyUsed,
		FriendCallUsed:   game.FriendCallUsed,
		TimeLeftSeconds:  int(game.TimeLeft(now) / time.Second),
		CreatedAt:        game.CreatedAt,
		FinishedAt:       game.FinishedAt,
	}
	if gq := game.CurrentGameQuestion(); gq != nil {
		resp.Question = &dto.GameQuestionDTO{
			Level:    gq.Level,
			Text:     gq.Text(),
			Variants: gq.Variants(),
			HelpHash: gq.HelpHash,
		}
	}
	return resp
}
