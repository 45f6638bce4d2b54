package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dkhramov/millionaire/internal/dto"
	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Register(req dto.RegisterUserDTO) (*dto.UserResponseDTO, error)
	GetProfile(userID uint) (*dto.UserProfileDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
	gameRepo repository.GameRepository
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, gameRepo repository.GameRepository, now func() time.Time) UserService {
	return &userService{userRepo: userRepo, gameRepo: gameRepo, now: now}
}

func (s *userService) Register(req dto.RegisterUserDTO) (*dto.UserResponseDTO, error) {
	user := model.User{Name: req.Name}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to register user")
		return nil, err
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

// GetProfile returns the account with its balance and full game history,
// newest game first.
func (s *userService) GetProfile(userID uint) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	games, err := s.gameRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	var resp dto.UserProfileDTO
	copier.Copy(&resp.UserResponseDTO, user)
	now := s.now()
	resp.Games = make([]dto.GameSummaryDTO, 0, len(games))
	for i := range games {
		g := &games[i]
		resp.Games = append(resp.Games, dto.GameSummaryDTO{
			ID:           g.ID,
			Status:       string(g.Status(now)),
			CurrentLevel: g.CurrentLevel,
			Prize:        g.Prize,
			CreatedAt:    g.CreatedAt,
			FinishedAt:   g.FinishedAt,
		})
	}
	return &resp, nil
}
