package repository

import (
	"github.com/dkhramov/millionaire/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	Create(game *model.Game) error
	FindByIDWithQuestions(id uint) (*model.Game, error)
	FindActiveByUser(userID uint) (*model.Game, error)
	FindAllByUser(userID uint) ([]model.Game, error)
	Update(tx *gorm.DB, game *model.Game) error
	UpdateQuestion(tx *gorm.DB, gq *model.GameQuestion) error
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// Create persists the game together with its game questions in one statement,
// so a game never exists without its full question set.
func (r *gameRepository) Create(game *model.Game) error {
	return r.db.Create(game).Error
}

func (r *gameRepository) FindByIDWithQuestions(id uint) (*model.Game, error) {
	var game model.Game
	err := r.db.
		Preload("GameQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Preload("GameQuestions.Question").
		First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindActiveByUser(userID uint) (*model.Game, error) {
	var game model.Game
	err := r.db.
		Where("user_id = ? AND finished_at IS NULL", userID).
		Order("created_at DESC").
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindAllByUser(userID uint) ([]model.Game, error) {
	var games []model.Game
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&games).Error
	return games, err
}

// Update saves the game's own columns only; question rows are written
// through UpdateQuestion so an answer never rewrites the whole set.
func (r *gameRepository) Update(tx *gorm.DB, game *model.Game) error {
	return tx.Omit(clause.Associations).Save(game).Error
}

func (r *gameRepository) UpdateQuestion(tx *gorm.DB, gq *model.GameQuestion) error {
	return tx.Omit(clause.Associations).Save(gq).Error
}
