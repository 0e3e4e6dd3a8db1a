package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
	"github.com/temirov/blogapi/internal/service"
)

// UserService drives the user resource endpoints.
type UserService interface {
	List(ctx context.Context, page model.Page) (service.UserList, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Create(ctx context.Context, params service.CreateUserParams) error
	Update(ctx context.Context, principal model.Principal, params service.UpdateUserParams) error
	Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error
}

type User struct {
	service UserService
	logger  *logger.Logger
}

func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{service: service, logger: logger}
}

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (h *User) GetAll(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	list, err := h.service.List(r.Context(), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	users := make([]userResponse, 0, len(list.Users))
	for _, user := range list.Users {
		users = append(users, newUserResponse(user))
	}

	writePaginated(w, users, newPagination(page.Page, page.PerPage, list.Size, list.TotalPages))
}

func (h *User) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Success", newUserResponse(user))
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var violations []model.FieldViolation
	if req.Username == "" {
		violations = append(violations, model.FieldViolation{Field: "username", Message: "must not be empty"})
	}
	if req.Name == "" {
		violations = append(violations, model.FieldViolation{Field: "name", Message: "must not be empty"})
	}
	if len(req.Password) < 8 {
		violations = append(violations, model.FieldViolation{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(violations) > 0 {
		writeError(w, h.logger, model.ErrValidationFailed(violations))
		return
	}

	err := h.service.Create(r.Context(), service.CreateUserParams{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User created", nil)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if req.Password != "" && len(req.Password) < 8 {
		writeError(w, h.logger, model.ErrValidationFailed([]model.FieldViolation{
			{Field: "password", Message: "must be at least 8 characters"},
		}))
		return
	}

	err = h.service.Update(r.Context(), principal, service.UpdateUserParams{
		ID:       id,
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User updated", nil)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User deleted", nil)
}
