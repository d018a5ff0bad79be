package repository

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
