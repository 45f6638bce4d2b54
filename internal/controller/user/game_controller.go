package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService service.GameService
}

func NewGameController(gameService service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// actingUserID resolves the acting player from the X-User-ID header (a
// stand-in for the external identity provider), falling back to the user_id
// query param.
func actingUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.GetHeader("X-User-ID")
	if raw == "" {
		raw = ctx.Query("user_id")
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		return 0, false
	}
	return uint(val), true
}

func requireUser(ctx *gin.Context) (uint, bool) {
	userID, ok := actingUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Sign in required"})
	}
	return userID, ok
}

func gameIDParam(ctx *gin.Context) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid game ID format"})
		return 0, false
	}
	return uint(val), true
}

// respondServiceError maps service and state-machine errors to HTTP codes.
func respondServiceError(ctx *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, service.ErrActiveGameExists):
		code = http.StatusConflict
	case errors.Is(err, model.ErrGameFinished),
		errors.Is(err, model.ErrTimeUp),
		errors.Is(err, model.ErrHelpUsed),
		errors.Is(err, model.ErrUnknownHelp),
		errors.Is(err, model.ErrNoLevelPassed):
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
	}
	ctx.JSON(code, dto.ErrorResponse{Message: err.Error()})
}

// CreateGame godoc
// @Summary Start a new game for the acting user
// @Description Creates a game with 15 randomly drawn questions, one per level 0..14. Refused while the user still has a game in progress.
// @Tags Games
// @Produce json
// @Param X-User-ID header int true "Acting user ID"
// @Success 201 {object} dto.GameResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Anonymous caller"
// @Failure 409 {object} dto.ErrorResponse "Active game exists; its ID is referenced"
// @Failure 500 {object} dto.ErrorResponse "Question bank cannot fill every level"
// @Router /games [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	game, err := c.gameService.CreateGame(userID)
	if err != nil {
		if errors.Is(err, service.ErrActiveGameExists) && game != nil {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Message: "Finish your current game first",
				GameID:  &game.ID,
			})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("CreateGame: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, game)
}

// GetGame godoc
// @Summary Show a game
// @Tags Games
// @Produce json
// @Param game_id path int true "Game ID"
// @Param X-User-ID header int true "Acting user ID"
// @Success 200 {object} dto.GameResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not the game owner"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Router /games/{game_id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(ctx)
	if !ok {
		return
	}

	game, err := c.gameService.GetGame(gameID, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// Answer godoc
// @Summary Answer the current question
// @Description Applies the chosen letter to the game's current question. After the time budget every answer finishes the game as a timeout.
// @Tags Games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param X-User-ID header int true "Acting user ID"
// @Param answer body dto.AnswerRequestDTO true "Answer key a..d"
// @Success 200 {object} dto.AnswerResultDTO
// @Failure 422 {object} dto.ErrorResponse "Game already finished"
// @Router /games/{game_id}/answer [put]
func (c *GameController) Answer(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AnswerRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.gameService.Answer(gameID, userID, req.Letter)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// TakeMoney godoc
// @Summary Take the accumulated money and finish the game
// @Tags Games
// @Produce json
// @Param game_id path int true "Game ID"
// @Param X-User-ID header int true "Acting user ID"
// @Success 200 {object} dto.GameResponseDTO
// @Failure 422 {object} dto.ErrorResponse "No level passed yet, or the clock ran out"
// @Router /games/{game_id}/take-money [put]
func (c *GameController) TakeMoney(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(ctx)
	if !ok {
		return
	}

	game, err := c.gameService.TakeMoney(gameID, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// UseHelp godoc
// @Summary Use one of the three hints on the current question
// @Tags Games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param X-User-ID header int true "Acting user ID"
// @Param help body dto.HelpRequestDTO true "Hint type"
// @Success 200 {object} dto.GameResponseDTO
// @Failure 422 {object} dto.ErrorResponse "Hint already used or game finished"
// @Router /games/{game_id}/help [put]
func (c *GameController) UseHelp(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(ctx)
	if !ok {
		return
	}

	var req dto.HelpRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	game, err := c.gameService.UseHelp(gameID, userID, model.HelpType(req.HelpType))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, game)
}
