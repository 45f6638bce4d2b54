package user

import (
	"net/http"
	"strconv"

	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register godoc
// @Summary Register a new player
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserDTO true "Player name"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /users [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Register(req)
	if err != nil {
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register user", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// GetProfile godoc
// @Summary Show a player profile with balance and game history
// @Description Profiles are public; any caller may view any player's finished and running games.
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserProfileDTO
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{user_id} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	val, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}

	profile, err := c.userService.GetProfile(uint(val))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
