package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/mocks"
	"github.com/temirov/blogapi/internal/model"
)

func TestUser_Create_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByUsername", mock.Anything, "johndoe").Return(model.User{}, model.ErrNotFound("user not found"))
	hasher.On("Hash", "secretpw").Return("digest", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "johndoe" && u.Name == "John Doe" && u.PasswordHash == "digest"
	})).Return(model.User{}, nil)

	s := NewUser(userStore, hasher, logger.New(0))

	err := s.Create(ctx, CreateUserParams{Username: "johndoe", Name: "John Doe", Password: "secretpw"})
	require.NoError(t, err)
}

func TestUser_Create_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByUsername", mock.Anything, "johndoe").Return(model.User{ID: uuid.New()}, nil)

	s := NewUser(userStore, hasher, logger.New(0))

	err := s.Create(ctx, CreateUserParams{Username: "johndoe", Name: "John Doe", Password: "secretpw"})
	require.Error(t, err)
	assert.Equal(t, model.KindAlreadyExists, model.KindOf(err))
}

func TestUser_Create_RaceSurfacesConstraint(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	// The pre-check misses a concurrent insert; the unique index still wins.
	userStore.On("GetByUsername", mock.Anything, "johndoe").Return(model.User{}, model.ErrNotFound("user not found"))
	hasher.On("Hash", "secretpw").Return("digest", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrAlreadyExists("user with username johndoe already exists"))

	s := NewUser(userStore, hasher, logger.New(0))

	err := s.Create(ctx, CreateUserParams{Username: "johndoe", Name: "John Doe", Password: "secretpw"})
	require.Error(t, err)
	assert.Equal(t, model.KindAlreadyExists, model.KindOf(err))
}

func TestUser_Update_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	target := model.User{ID: uuid.New(), Username: "johndoe", Name: "John Doe"}
	userStore.On("GetByID", mock.Anything, target.ID).Return(target, nil)

	s := NewUser(userStore, &mocks.PasswordHasher{}, logger.New(0))

	stranger := model.Principal{UserID: uuid.New(), Username: "intruder"}
	err := s.Update(ctx, stranger, UpdateUserParams{ID: target.ID, Name: "Hacked"})
	require.Error(t, err)
	assert.Equal(t, model.KindAuthorizationDenied, model.KindOf(err))
	userStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUser_Update_Owner_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	target := model.User{ID: uuid.New(), Username: "johndoe", Name: "John Doe", PasswordHash: "old"}
	userStore.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	hasher.On("Hash", "newsecret").Return("new-digest", nil)
	userStore.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.ID == target.ID && u.Name == "Johnny" && u.PasswordHash == "new-digest" && u.Username == "johndoe"
	})).Return(model.User{}, nil)

	s := NewUser(userStore, hasher, logger.New(0))

	owner := model.Principal{UserID: target.ID, Username: "johndoe"}
	err := s.Update(ctx, owner, UpdateUserParams{ID: target.ID, Name: "Johnny", Password: "newsecret"})
	require.NoError(t, err)
}

func TestUser_Update_NotFoundBeforeOwnership(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	missing := uuid.New()
	userStore.On("GetByID", mock.Anything, missing).Return(model.User{}, model.ErrNotFound("user not found"))

	s := NewUser(userStore, &mocks.PasswordHasher{}, logger.New(0))

	err := s.Update(ctx, model.Principal{UserID: uuid.New()}, UpdateUserParams{ID: missing, Name: "x"})
	require.Error(t, err)
	// A missing record reads as not-found to everyone, owner or not.
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestUser_Delete_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	target := model.User{ID: uuid.New(), Username: "johndoe"}
	userStore.On("GetByID", mock.Anything, target.ID).Return(target, nil)

	s := NewUser(userStore, &mocks.PasswordHasher{}, logger.New(0))

	err := s.Delete(ctx, model.Principal{UserID: uuid.New()}, target.ID)
	require.Error(t, err)
	assert.Equal(t, model.KindAuthorizationDenied, model.KindOf(err))
	userStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUser_Delete_Owner_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	target := model.User{ID: uuid.New(), Username: "johndoe"}
	userStore.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	userStore.On("Delete", mock.Anything, target.ID).Return(nil)

	s := NewUser(userStore, &mocks.PasswordHasher{}, logger.New(0))

	require.NoError(t, s.Delete(ctx, model.Principal{UserID: target.ID}, target.ID))
}

func TestUser_List_Totals(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	page := model.Page{Page: 2, PerPage: 10, Sort: "desc", SortBy: "createdAt"}
	userStore.On("List", mock.Anything, page).Return([]model.User{{ID: uuid.New()}}, nil)
	userStore.On("Count", mock.Anything, "").Return(11, nil)

	s := NewUser(userStore, &mocks.PasswordHasher{}, logger.New(0))

	list, err := s.List(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, 11, list.Size)
	assert.Equal(t, 2, list.TotalPages)
	assert.Len(t, list.Users, 1)
}
