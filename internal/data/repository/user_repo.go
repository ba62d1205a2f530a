package repository

import (
	"context"
	"sync"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error)
	UpdatePassword(ctx context.Context, phone string, passwordHash string) error
}

type userRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex // serializes read-modify-write cycles on the users collection
}

func NewUserRepository(store storage.Store, log *zap.Logger) UserRepository {
	return &userRepository{
		store: store,
		log:   log,
	}
}

func (ur *userRepository) readAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := ur.store.ReadAll(ctx, usersCollection, &users); err != nil {
		ur.log.Error("Failed to load users collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load users")
	}
	return users, nil
}

func (ur *userRepository) writeAll(ctx context.Context, users []*entity.User) error {
	if err := ur.store.WriteAll(ctx, usersCollection, users); err != nil {
		ur.log.Error("Failed to persist users collection", zap.Error(err))
		return apperr.Storage(err, "failed to save users")
	}
	return nil
}

// Create appends a new user record. Email and phone uniqueness is checked
// here, under the collection lock, so two concurrent registrations cannot
// both slip past the caller's pre-check.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	users, err := ur.readAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range users {
		if user.Email != nil && existing.Email != nil && *existing.Email == *user.Email {
			return apperr.Conflict("email already registered")
		}
		if user.PhoneNumber != nil && existing.PhoneNumber != nil && *existing.PhoneNumber == *user.PhoneNumber {
			return apperr.Conflict("phone number already registered")
		}
	}

	users = append(users, user)
	return ur.writeAll(ctx, users)
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	users, err := ur.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, nil
}

// FindByEmail does a linear scan with case-sensitive exact matching.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := ur.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}

	return nil, nil
}

func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	users, err := ur.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.PhoneNumber != nil && *user.PhoneNumber == phone {
			return user, nil
		}
	}

	return nil, nil
}

// FindAll retrieves a page of users in stored order.
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users, err := ur.readAll(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= len(users) {
		return nil, nil
	}

	end := offset + limit
	if end > len(users) {
		end = len(users)
	}

	return users[offset:end], nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	users, err := ur.readAll(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

func (ur *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	users, err := ur.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == id {
			user.Role = role
			if err := ur.writeAll(ctx, users); err != nil {
				return nil, err
			}
			return user, nil
		}
	}

	return nil, apperr.NotFound("user %s not found", id.String())
}

// UpdatePassword replaces the stored credential of the user with the given
// phone number.
func (ur *userRepository) UpdatePassword(ctx context.Context, phone string, passwordHash string) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	users, err := ur.readAll(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if user.PhoneNumber != nil && *user.PhoneNumber == phone {
			user.PasswordHash = &passwordHash
			return ur.writeAll(ctx, users)
		}
	}

	return apperr.NotFound("no account with phone number %s", phone)
}
