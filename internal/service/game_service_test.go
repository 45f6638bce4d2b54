package service_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/repository"
	"github.com/dkhramov/millionaire/internal/service"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Question{}, &model.Game{}, &model.GameQuestion{}))
	return db
}

type fixture struct {
	db    *gorm.DB
	clock *testClock
	svc   service.GameService
	user  model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	clock := &testClock{now: baseTime}
	svc := service.NewGameService(
		repository.NewGameRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewUserRepository(db),
		db,
		clock.Now,
		rand.New(rand.NewSource(1)),
	)
	user := model.User{Name: "player"}
	require.NoError(t, db.Create(&user).Error)
	return &fixture{db: db, clock: clock, svc: svc, user: user}
}

// seedQuestions fills the bank with n questions per level 0..maxLevel.
func seedQuestions(t *testing.T, db *gorm.DB, perLevel int, maxLevel int) {
	t.Helper()
	for level := 0; level <= maxLevel; level++ {
		for i := 0; i < perLevel; i++ {
			q := model.Question{
				Level:   level,
				Text:    fmt.Sprintf("level %d question %d", level, i),
				Answer1: "right",
				Answer2: "wrong 1",
				Answer3: "wrong 2",
				Answer4: "wrong 3",
			}
			require.NoError(t, db.Create(&q).Error)
		}
	}
}

func (f *fixture) loadGame(t *testing.T, id uint) *model.Game {
	t.Helper()
	var game model.Game
	err := f.db.
		Preload("GameQuestions", func(db *gorm.DB) *gorm.DB { return db.Order("level ASC") }).
		Preload("GameQuestions.Question").
		First(&game, id).Error
	require.NoError(t, err)
	return &game
}

// pinCreatedAt rewrites the game's DB timestamp so the test clock controls
// the play clock.
func (f *fixture) pinCreatedAt(t *testing.T, gameID uint, at time.Time) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.Game{}).Where("id = ?", gameID).Update("created_at", at).Error)
}

func (f *fixture) setLevel(t *testing.T, gameID uint, level int) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.Game{}).Where("id = ?", gameID).Update("current_level", level).Error)
}

func (f *fixture) balance(t *testing.T, userID uint) int {
	t.Helper()
	var user model.User
	require.NoError(t, f.db.First(&user, userID).Error)
	return user.Balance
}

func (f *fixture) createGame(t *testing.T) *model.Game {
	t.Helper()
	resp, err := f.svc.CreateGame(f.user.ID)
	require.NoError(t, err)
	f.pinCreatedAt(t, resp.ID, baseTime)
	return f.loadGame(t, resp.ID)
}

func TestCreateGame(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 4, model.MaxQuestionLevel)

	resp, err := f.svc.CreateGame(f.user.ID)

	require.NoError(t, err)
	assert.Equal(t, f.user.ID, resp.UserID)
	assert.Equal(t, string(model.StatusInProgress), resp.Status)
	assert.Equal(t, 0, resp.CurrentLevel)
	assert.Equal(t, -1, resp.PreviousLevel)
	assert.Zero(t, resp.Prize)
	require.NotNil(t, resp.Question)
	assert.Equal(t, 0, resp.Question.Level)
	assert.Len(t, resp.Question.Variants, 4)

	game := f.loadGame(t, resp.ID)
	require.Len(t, game.GameQuestions, 15)
	for i, gq := range game.GameQuestions {
		assert.Equal(t, i, gq.Level)
		assert.Equal(t, i, gq.Question.Level, "bank level must match the slot")
	}

	var questionCount int64
	require.NoError(t, f.db.Model(&model.Question{}).Count(&questionCount).Error)
	assert.EqualValues(t, 60, questionCount, "game creation must not touch the bank")
}

func TestCreateGame_ActiveGameExists(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	first := f.createGame(t)

	resp, err := f.svc.CreateGame(f.user.ID)

	assert.ErrorIs(t, err, service.ErrActiveGameExists)
	require.NotNil(t, resp, "the existing game is referenced instead")
	assert.Equal(t, first.ID, resp.ID)

	var gameCount int64
	require.NoError(t, f.db.Model(&model.Game{}).Count(&gameCount).Error)
	assert.EqualValues(t, 1, gameCount)
}

func TestCreateGame_InsufficientQuestions(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel-1) // last level empty

	resp, err := f.svc.CreateGame(f.user.ID)

	assert.ErrorIs(t, err, service.ErrInsufficientQuestions)
	assert.Nil(t, resp)

	var gameCount, gqCount int64
	require.NoError(t, f.db.Model(&model.Game{}).Count(&gameCount).Error)
	require.NoError(t, f.db.Model(&model.GameQuestion{}).Count(&gqCount).Error)
	assert.Zero(t, gameCount, "no partial game may be persisted")
	assert.Zero(t, gqCount)
}

func TestCreateGame_UnknownUser(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)

	_, err := f.svc.CreateGame(9999)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAnswer_CorrectContinuesGame(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	letter := game.CurrentGameQuestion().CorrectAnswerKey()

	result, err := f.svc.Answer(game.ID, f.user.ID, letter)

	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Game.CurrentLevel)
	assert.Equal(t, string(model.StatusInProgress), result.Game.Status)
	assert.Equal(t, model.PrizeLadder[0], result.Game.Prize)
	assert.Zero(t, f.balance(t, f.user.ID), "no credit while the game is open")

	reloaded := f.loadGame(t, game.ID)
	assert.Equal(t, 1, reloaded.CurrentLevel)
	assert.Nil(t, reloaded.FinishedAt)
}

func TestAnswer_WrongFinishesWithFail(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	correct := game.CurrentGameQuestion().CorrectAnswerKey()
	wrong := "a"
	if wrong == correct {
		wrong = "b"
	}

	result, err := f.svc.Answer(game.ID, f.user.ID, wrong)

	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, string(model.StatusFail), result.Game.Status)
	assert.Equal(t, 0, result.Game.CurrentLevel)
	assert.Zero(t, f.balance(t, f.user.ID))

	reloaded := f.loadGame(t, game.ID)
	assert.True(t, reloaded.IsFailed)
	assert.NotNil(t, reloaded.FinishedAt)
}

func TestAnswer_FinalQuestionWins(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	f.setLevel(t, game.ID, model.MaxLevel)
	game = f.loadGame(t, game.ID)
	letter := game.CurrentGameQuestion().CorrectAnswerKey()

	result, err := f.svc.Answer(game.ID, f.user.ID, letter)

	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, string(model.StatusWon), result.Game.Status)
	assert.Equal(t, model.FinalPrize, result.Game.Prize)
	assert.NotNil(t, result.Game.FinishedAt)
	assert.Equal(t, model.FinalPrize, f.balance(t, f.user.ID), "win credits the balance")
}

func TestAnswer_AfterTimeLimit(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	letter := game.CurrentGameQuestion().CorrectAnswerKey()
	f.clock.now = baseTime.Add(model.TimeLimit + time.Minute)

	result, err := f.svc.Answer(game.ID, f.user.ID, letter)

	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, string(model.StatusTimeout), result.Game.Status)
	assert.Equal(t, 0, result.Game.CurrentLevel)
	assert.Zero(t, f.balance(t, f.user.ID))
}

func TestAnswer_FinishedGameRejected(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	_, err := f.svc.TakeMoney(game.ID, f.user.ID)
	require.ErrorIs(t, err, model.ErrNoLevelPassed) // still open, pass a level first
	letter := game.CurrentGameQuestion().CorrectAnswerKey()
	_, err = f.svc.Answer(game.ID, f.user.ID, letter)
	require.NoError(t, err)
	_, err = f.svc.TakeMoney(game.ID, f.user.ID)
	require.NoError(t, err)

	_, err = f.svc.Answer(game.ID, f.user.ID, letter)

	assert.ErrorIs(t, err, model.ErrGameFinished)
}

func TestAnswer_Forbidden(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	alien := model.User{Name: "alien"}
	require.NoError(t, f.db.Create(&alien).Error)

	_, err := f.svc.Answer(game.ID, alien.ID, "a")

	assert.ErrorIs(t, err, service.ErrForbidden)
	reloaded := f.loadGame(t, game.ID)
	assert.Nil(t, reloaded.FinishedAt, "no state change for a non-owner")
}

func TestTakeMoney(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	f.setLevel(t, game.ID, 2)

	resp, err := f.svc.TakeMoney(game.ID, f.user.ID)

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusMoney), resp.Status)
	assert.Equal(t, 200, resp.Prize)
	assert.NotNil(t, resp.FinishedAt)
	assert.Equal(t, 200, f.balance(t, f.user.ID))
}

func TestTakeMoney_LevelZeroRejected(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)

	_, err := f.svc.TakeMoney(game.ID, f.user.ID)

	assert.ErrorIs(t, err, model.ErrNoLevelPassed)
	reloaded := f.loadGame(t, game.ID)
	assert.Nil(t, reloaded.FinishedAt)
	assert.Zero(t, f.balance(t, f.user.ID))
}

func TestTakeMoney_AfterTimeLimit(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	f.setLevel(t, game.ID, 3)
	f.clock.now = baseTime.Add(model.TimeLimit + time.Minute)

	resp, err := f.svc.TakeMoney(game.ID, f.user.ID)

	assert.ErrorIs(t, err, model.ErrTimeUp)
	require.NotNil(t, resp)
	assert.Equal(t, string(model.StatusTimeout), resp.Status)
	assert.Zero(t, f.balance(t, f.user.ID), "timeout pays nothing")

	reloaded := f.loadGame(t, game.ID)
	assert.NotNil(t, reloaded.FinishedAt, "the timeout finalization is persisted")
	assert.True(t, reloaded.IsFailed)
}

func TestUseHelp_PersistsFlagAndPayload(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)

	resp, err := f.svc.UseHelp(game.ID, f.user.ID, model.HelpFiftyFifty)

	require.NoError(t, err)
	assert.True(t, resp.FiftyFiftyUsed)
	require.NotNil(t, resp.Question)
	assert.Contains(t, resp.Question.HelpHash, string(model.HelpFiftyFifty))

	reloaded := f.loadGame(t, game.ID)
	assert.True(t, reloaded.FiftyFiftyUsed)
	gq := reloaded.CurrentGameQuestion()
	require.Contains(t, gq.HelpHash, string(model.HelpFiftyFifty))

	keep, ok := gq.HelpHash[string(model.HelpFiftyFifty)].([]any)
	require.True(t, ok, "payload survives the JSON round trip")
	require.Len(t, keep, 2)
	assert.Contains(t, keep, gq.CorrectAnswerKey())
}

func TestUseHelp_SecondUseRejected(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 1, model.MaxQuestionLevel)
	game := f.createGame(t)
	_, err := f.svc.UseHelp(game.ID, f.user.ID, model.HelpAudience)
	require.NoError(t, err)

	_, err = f.svc.UseHelp(game.ID, f.user.ID, model.HelpAudience)

	assert.ErrorIs(t, err, model.ErrHelpUsed)
}

func TestGetGame_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetGame(12345, f.user.ID)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFullRun_AnswerAllFifteen(t *testing.T) {
	f := newFixture(t)
	seedQuestions(t, f.db, 2, model.MaxQuestionLevel)
	game := f.createGame(t)

	for level := 0; level <= model.MaxLevel; level++ {
		current := f.loadGame(t, game.ID)
		gq := current.CurrentGameQuestion()
		require.NotNil(t, gq, "level %d", level)
		result, err := f.svc.Answer(game.ID, f.user.ID, gq.CorrectAnswerKey())
		require.NoError(t, err)
		require.True(t, result.Correct)
	}

	final := f.loadGame(t, game.ID)
	assert.Equal(t, model.MaxLevel+1, final.CurrentLevel)
	assert.Equal(t, string(model.StatusWon), string(final.Status(f.clock.now)))
	assert.Equal(t, model.FinalPrize, final.Prize)
	assert.Equal(t, model.FinalPrize, f.balance(t, f.user.ID))
}
