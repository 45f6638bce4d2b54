package model

import (
	"time"

	"gorm.io/gorm"
)

// Question levels are 0-indexed: level 0 is the easiest question of a game,
// level MaxLevel the final one.
const (
	MinQuestionLevel = 0
	MaxQuestionLevel = 14
)

// Question is a bank question. Answer1 is always the correct variant; the
// per-game shuffle lives in GameQuestion, so the bank never leaks answer order.
type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Level     int            `json:"level" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Answer1   string         `json:"answer1" gorm:"not null"`
	Answer2   string         `json:"answer2" gorm:"not null"`
	Answer3   string         `json:"answer3" gorm:"not null"`
	Answer4   string         `json:"answer4" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) answers() [4]string {
	return [4]string{q.Answer1, q.Answer2, q.Answer3, q.Answer4}
}
