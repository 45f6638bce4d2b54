package dto

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	GameID  *uint    `json:"game_id,omitempty"` // set when an existing active game blocks creation
}

// GameQuestionDTO is the player-facing view of the current question. The
// correct key is never exposed here.
type GameQuestionDTO struct {
	Level    int               `json:"level"`
	Text     string            `json:"text"`
	Variants map[string]string `json:"variants"`
	HelpHash map[string]any    `json:"help_hash"`
}

// GameResponseDTO is the full player-facing game state.
type GameResponseDTO struct {
	ID               uint             `json:"id"`
	UserID           uint             `json:"user_id"`
	Status           string           `json:"status"`
	CurrentLevel     int              `json:"current_level"`
	PreviousLevel    int              `json:"previous_level"`
	Prize            int              `json:"prize"`
	AudienceHelpUsed bool             `json:"audience_help_used"`
	FiftyFiftyUsed   bool             `json:"fifty_fifty_used"`
	FriendCallUsed   bool             `json:"friend_call_used"`
	TimeLeftSeconds  int              `json:"time_left_seconds"`
	Question         *GameQuestionDTO `json:"question,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	FinishedAt       *time.Time       `json:"finished_at,omitempty"`
}

// AnswerResultDTO reports the outcome of one answer together with the
// resulting game state.
type AnswerResultDTO struct {
	Correct bool            `json:"correct"`
	Game    GameResponseDTO `json:"game"`
}

// GameSummaryDTO is one row of a user's game history.
type GameSummaryDTO struct {
	ID           uint       `json:"id"`
	Status       string     `json:"status"`
	CurrentLevel int        `json:"current_level"`
	Prize        int        `json:"prize"`
	CreatedAt    time.Time  `json:"created_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}

// UserResponseDTO is a player account with its balance.
type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfileDTO is the profile page payload: account plus game history.
type UserProfileDTO struct {
	UserResponseDTO
	Games []GameSummaryDTO `json:"games"`
}
