package service

import (
	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminQuestionService manages the question bank the game factory draws from.
type AdminQuestionService interface {
	CreateQuestion(req dto.CreateQuestionDTO) (*dto.QuestionResponseDTO, error)
	ListQuestions(level *int) ([]dto.QuestionResponseDTO, error)
	BankCoverage() (map[int]int64, error)
}

type adminQuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionService(questionRepo repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{questionRepo: questionRepo}
}

func (s *adminQuestionService) CreateQuestion(req dto.CreateQuestionDTO) (*dto.QuestionResponseDTO, error) {
	var question model.Question
	copier.Copy(&question, &req)

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Int("level", req.Level).Msg("Failed to create bank question")
		return nil, err
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *adminQuestionService) ListQuestions(level *int) ([]dto.QuestionResponseDTO, error) {
	var (
		questions []model.Question
		err       error
	)
	if level != nil {
		questions, err = s.questionRepo.FindAllByLevel(*level)
	} else {
		questions, err = s.questionRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	var resp []dto.QuestionResponseDTO
	copier.Copy(&resp, &questions)
	return resp, nil
}

// BankCoverage reports how many questions each level has, so an operator can
// see whether game creation will succeed.
func (s *adminQuestionService) BankCoverage() (map[int]int64, error) {
	return s.questionRepo.CountByLevel()
}
