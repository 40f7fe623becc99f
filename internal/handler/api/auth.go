package api

import (
	"errors"
	"net/http"

	reqdto "vetclinic-booking-api/internal/handler/dto/request"
	resdto "vetclinic-booking-api/internal/handler/dto/response"
	"vetclinic-booking-api/internal/handler/httperr"
	"vetclinic-booking-api/internal/handler/middleware"
	"vetclinic-booking-api/internal/pkg/config"
	"vetclinic-booking-api/internal/pkg/cookie"
	"vetclinic-booking-api/internal/pkg/jwt"
	"vetclinic-booking-api/internal/usecase/commands"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Register
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), commands.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserAlreadyExists):
			httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeUserAlreadyExists, "User already exists with this email", err)
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid registration data", err)
		default:
			httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())

	c.JSON(http.StatusCreated, resdto.AuthResponse{
		Message: "User registered and logged in successfully",
		User:    resdto.FromUserView(result.User),
	})
}

// @Summary Login
// @Description Authenticate and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), commands.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithCode(c, http.StatusUnauthorized, httperr.CodeInvalidCredentials, "Invalid credentials", err)
			return
		}
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.AuthResponse{
		Message: "Login successful",
		User:    resdto.FromUserView(result.User),
	})
}

// @Summary Logout
// @Description End the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logout successful"})
}

// @Summary Me
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, httperr.CodeNotAuthenticated, "User not authenticated", nil)
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
