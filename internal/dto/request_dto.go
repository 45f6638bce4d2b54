package dto

// AnswerRequestDTO carries the player's chosen answer key.
type AnswerRequestDTO struct {
	Letter string `json:"letter" binding:"required,oneof=a b c d"`
}

// HelpRequestDTO names the hint the player wants to use.
type HelpRequestDTO struct {
	HelpType string `json:"help_type" binding:"required,oneof=audience_help fifty_fifty friend_call"`
}

// RegisterUserDTO is the request body for creating a player account.
type RegisterUserDTO struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}
