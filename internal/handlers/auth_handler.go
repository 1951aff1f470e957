package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clinica/appointments-api/internal/auth"
	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/httpresp"
	"github.com/clinica/appointments-api/internal/models"
	"github.com/clinica/appointments-api/internal/validators"
)

type TokenIssuer interface {
	Issue(username string) (string, error)
}

type AuthHandler struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewAuthHandler(users user.Repository, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Date     string `json:"date"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		httperr.BadRequest(c)
		return
	}

	if req.Date != "" && !validators.IsDate(req.Date) {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidDateFormat))
		return
	}

	// Re-registering is a no-op: the stored user is left untouched.
	if _, err := h.users.GetByUsername(c.Request.Context(), username); err == nil {
		httpresp.Message(c, "user already exists")
		return
	} else if !httperr.IsBusiness(err, httperr.CodeUserNotFound) {
		httperr.Respond(c, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := models.User{
		Username: username,
		Password: hashed,
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Date:     strings.TrimSpace(req.Date),
	}

	if err := h.users.CreateUser(c.Request.Context(), &u); err != nil {
		if httperr.IsBusiness(err, httperr.CodeUserExists) {
			httpresp.Message(c, "user already exists")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "user created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeBadCredentials))
		return
	}

	u, err := h.users.GetByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUserNotFound) {
			err = httperr.ErrBusiness(httperr.CodeBadCredentials)
		}
		httperr.Respond(c, err)
		return
	}

	if !auth.CheckPassword(u.Password, req.Password) {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeBadCredentials))
		return
	}

	token, err := h.tokens.Issue(u.Username)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
