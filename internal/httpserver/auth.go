package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionmela/internal/domain"
	identitysvc "fashionmela/internal/service/identity"
	"fashionmela/internal/session"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(identity identitySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
			return
		}
		if err := identity.Register(req.Name, req.Email, req.Password); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists."})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Account created. Please sign in."})
	}
}

func loginHandler(identity identitySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		view, err := identity.Login(req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "No account found. Please register first."})
			case errors.Is(err, identitysvc.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": view})
	}
}

func logoutHandler(identity identitySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := identity.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
	}
}

func meHandler(sess *session.Session, identity identitySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		cur := sess.Current()
		if cur == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not signed in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": cur, "isAdmin": identity.IsAdmin()})
	}
}
