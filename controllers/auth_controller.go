package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/middlewares"
	"github.com/jhaabhishek9/Nutrifitnes/services"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
	"github.com/jhaabhishek9/Nutrifitnes/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (ct *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := ct.auth.Register(c.Request.Context(), services.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	ct.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ct *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := ct.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	ct.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (ct *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ct *AuthController) CurrentUser(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	user, err := ct.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ct *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		middlewares.SessionCookie,
		token,
		int(utils.SessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)
}
