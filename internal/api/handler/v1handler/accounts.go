package v1handler

import (
	"net/http"

	"backma/internal/accounts"
	"backma/pkg/domain"
	"backma/pkg/storage"
)

func actorOf(r *http.Request) domain.Actor {
	actor, _ := ActorFrom(r.Context())

	return actor
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	FullName string `json:"fullName" validate:"required,max=200"`
	Role     string `json:"role"     validate:"required,oneof=publisher advertiser"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	FullName string `json:"fullName" validate:"required,max=200"`
	Role     string `json:"role"     validate:"required,oneof=admin publisher advertiser"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=admin publisher advertiser"`
	Status   *string `json:"status,omitempty"   validate:"omitempty,oneof=active suspended"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      DomainUserToV1(session.User),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.Accounts.Register(r.Context(), accounts.NewUser{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainUserToV1(user))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor := actorOf(r)
	user, err := h.Accounts.User(r.Context(), actor, actor.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.Accounts.CreateUser(r.Context(), accounts.NewUser{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainUserToV1(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.Accounts.User(r.Context(), actorOf(r), domain.UserID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	page, err := h.Accounts.Users(r.Context(), actorOf(r), storage.UserFilter{
		Role:   domain.Role(q.Get("role")),
		Status: domain.UserStatus(q.Get("status")),
		Search: q.Get("search"),
		Cursor: cursor,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainUserToV1))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req UpdateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	changes := accounts.UserChanges{FullName: req.FullName, Password: req.Password}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		changes.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		changes.Status = &status
	}

	user, err := h.Accounts.UpdateUser(r.Context(), actorOf(r), domain.UserID(id), changes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Accounts.Overview(r.Context(), actorOf(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainOverviewToV1(overview))
}
