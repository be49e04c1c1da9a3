package handlers

import (
	"net/http"

	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/database/models"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenIssuer mints access tokens for users
type TokenIssuer interface {
	IssueToken(user *models.User) (*auth.TokenResponse, error)
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
	tokens      TokenIssuer
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, tokens TokenIssuer) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokens:      tokens,
	}
}

// RegisterResponse is the new user with a token to act as them
type RegisterResponse struct {
	User  *service.CurrentUserResponse `json:"user"`
	Token *auth.TokenResponse          `json:"token"`
}

// Register handles POST /users
// @Summary Register a user
// @Description Create a user and return an access token for it. A non-blank email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterUserRequest true "User data"
// @Success 201 {object} RegisterResponse "Registered user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.IssueToken(&models.User{
		BaseModel:   models.BaseModel{ID: user.ID},
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{User: user, Token: token})
}

// GetCurrentUser handles GET /users/current
// @Summary Get the current user
// @Description Get the profile of the caller with the teams they manage
// @Tags users
// @Produce json
// @Success 200 {object} service.CurrentUserResponse "Current user"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/current [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userService.GetCurrent(c.Request.Context(), auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser handles PUT /users/current
// @Summary Update the current user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} service.CurrentUserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already taken"
// @Security BearerAuth
// @Router /users/current [put]
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateCurrent(c.Request.Context(), auth.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse "User"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
