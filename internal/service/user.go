package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// CreateUserParams carries a validated registration payload.
type CreateUserParams struct {
	Username string
	Name     string
	Password string
}

// UpdateUserParams carries a validated profile update. Empty fields are
// left unchanged.
type UpdateUserParams struct {
	ID       uuid.UUID
	Username string
	Name     string
	Password string
}

// UserList is a page of users with the totals needed for the pagination
// envelope.
type UserList struct {
	Users      []model.User
	Size       int
	TotalPages int
}

type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *User) List(ctx context.Context, page model.Page) (UserList, error) {
	users, err := s.userStore.List(ctx, page)
	if err != nil {
		return UserList{}, fmt.Errorf("failed to list users: %w", err)
	}

	count, err := s.userStore.Count(ctx, page.Search)
	if err != nil {
		return UserList{}, fmt.Errorf("failed to count users: %w", err)
	}

	return UserList{
		Users:      users,
		Size:       count,
		TotalPages: page.TotalPages(count),
	}, nil
}

func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// Create registers a new account. The username pre-check is a fast path
// only; the unique index on users.username is the real guarantee and
// surfaces concurrent duplicates as AlreadyExists.
func (s *User) Create(ctx context.Context, params CreateUserParams) error {
	s.logger.Debug("User service: creating user", "username", params.Username)

	_, err := s.userStore.GetByUsername(ctx, params.Username)
	if err == nil {
		return model.ErrAlreadyExists("user with username %s already exists", params.Username)
	}
	if model.KindOf(err) != model.KindNotFound {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Name:         params.Name,
		PasswordHash: passwordHash,
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "username", params.Username, "user_id", user.ID)

	return nil
}

func (s *User) Update(ctx context.Context, principal model.Principal, params UpdateUserParams) error {
	user, err := s.userStore.GetByID(ctx, params.ID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := authorizeOwner(principal, user.ID); err != nil {
		s.logger.Info("User service: update denied",
			"user_id", user.ID,
			"principal_id", principal.UserID)
		return err
	}

	if params.Username != "" && params.Username != user.Username {
		_, err := s.userStore.GetByUsername(ctx, params.Username)
		if err == nil {
			return model.ErrAlreadyExists("user with username %s already exists", params.Username)
		}
		if model.KindOf(err) != model.KindNotFound {
			return fmt.Errorf("failed to get user by username: %w", err)
		}
		user.Username = params.Username
	}

	if params.Name != "" {
		user.Name = params.Name
	}

	if params.Password != "" {
		passwordHash, err := s.hasher.Hash(params.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	if _, err := s.userStore.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", user.ID)

	return nil
}

func (s *User) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := authorizeOwner(principal, user.ID); err != nil {
		s.logger.Info("User service: delete denied",
			"user_id", user.ID,
			"principal_id", principal.UserID)
		return err
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return nil
}
