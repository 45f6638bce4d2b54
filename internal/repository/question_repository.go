package repository

import (
	"github.com/dkhramov/millionaire/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindAllByLevel(level int) ([]model.Question, error)
	CountByLevel() (map[int]int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("level ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAllByLevel(level int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("level = ?", level).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByLevel reports bank coverage per level, used to refuse game creation
// early when some level has no questions at all.
func (r *questionRepository) CountByLevel() (map[int]int64, error) {
	type row struct {
		Level int
		N     int64
	}
	var rows []row
	err := r.db.Model(&model.Question{}).
		Select("level, count(*) as n").
		Group("level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Level] = rw.N
	}
	return counts, nil
}
