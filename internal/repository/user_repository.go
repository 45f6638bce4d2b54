package repository

import (
	"github.com/dkhramov/millionaire/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	CreditBalance(tx *gorm.DB, userID uint, amount int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreditBalance adds a prize to the user's balance inside the caller's
// transaction, so the credit commits together with the game finalization.
func (r *userRepository) CreditBalance(tx *gorm.DB, userID uint, amount int) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}
