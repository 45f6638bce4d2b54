package admin

import (
	"net/http"
	"strconv"

	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.AdminQuestionService
}

func NewAdminQuestionController(questionService service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Description Answer1 is stored as the correct variant; players always see a per-game shuffle.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionDTO true "Question with level 0..14 and four answers"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary (Admin) List bank questions
// @Tags Admin - Questions
// @Produce json
// @Param level query int false "Filter by level 0..14"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid level format"
// @Router /admin/questions [get]
func (c *AdminQuestionController) ListQuestions(ctx *gin.Context) {
	var level *int
	if raw := ctx.Query("level"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid level format"})
			return
		}
		level = &val
	}

	questions, err := c.questionService.ListQuestions(level)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// BankCoverage godoc
// @Summary (Admin) Question counts per level
// @Description Game creation needs at least one question on every level 0..14.
// @Tags Admin - Questions
// @Produce json
// @Success 200 {object} map[int]int64
// @Router /admin/questions/coverage [get]
func (c *AdminQuestionController) BankCoverage(ctx *gin.Context) {
	counts, err := c.questionService.BankCoverage()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute coverage", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
