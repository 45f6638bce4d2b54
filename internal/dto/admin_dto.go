package dto

import "time"

// CreateQuestionDTO is the admin request for adding one bank question.
// Answer1 must be the correct variant; players see a shuffled order.
type CreateQuestionDTO struct {
	Level   int    `json:"level" binding:"min=0,max=14"`
	Text    string `json:"text" binding:"required"`
	Answer1 string `json:"answer1" binding:"required"`
	Answer2 string `json:"answer2" binding:"required"`
	Answer3 string `json:"answer3" binding:"required"`
	Answer4 string `json:"answer4" binding:"required"`
}

// QuestionResponseDTO is the admin-facing view of a bank question.
type QuestionResponseDTO struct {
	ID        uint      `json:"id"`
	Level     int       `json:"level"`
	Text      string    `json:"text"`
	Answer1   string    `json:"answer1"`
	Answer2   string    `json:"answer2"`
	Answer3   string    `json:"answer3"`
	Answer4   string    `json:"answer4"`
	CreatedAt time.Time `json:"created_at"`
}
