package user_repository

import (
	"context"

	"github.com/init-pkg/excel-users/domain/app"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

var _ app.UserRepository = &UserRepository{}

func New(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (this *UserRepository) Create(ctx context.Context, user *app.User) error {
	return this.db.WithContext(ctx).Create(user).Error
}
