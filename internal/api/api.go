// Package api exposes the account and catalog flows over HTTP/JSON with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/accounts"
	"github.com/celerix-dev/gamingtech-store/internal/catalog"
	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/gin-gonic/gin"
)

// AccountService is the account flow served by AccountHandler.
type AccountService interface {
	Register(ctx context.Context, r accounts.Registration) (schema.PublicUser, error)
	Login(ctx context.Context, email, password string) (*accounts.Session, error)
	Verify(token string) (*schema.Claims, error)
	Users(ctx context.Context) ([]schema.PublicUser, error)
}

// CatalogService is the storefront served by CatalogHandler.
type CatalogService interface {
	Products(category string) []schema.Product
	Product(id int) (schema.Product, error)
	Components() map[schema.ComponentType][]schema.Component
	ComponentsOf(kind string) ([]schema.Component, error)
	Quote(req schema.BuildRequest) (*schema.BuildQuote, error)
	Contact(m schema.ContactMessage) (time.Time, error)
}

// AccountHandler serves the Account Service routes.
type AccountHandler struct {
	Accounts AccountService
	Logger   logging.Logger
}

type registerInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type verifyInput struct {
	Token string `json:"token"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var in registerInput
	if err := bindJSON(c, &in, common.ErrMissingFields); err != nil {
		respondError(c, h.Logger, err)
		return
	}

	user, err := h.Accounts.Register(c.Request.Context(), accounts.Registration{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var in loginInput
	if err := bindJSON(c, &in, common.ErrMissingCredentials); err != nil {
		respondError(c, h.Logger, err)
		return
	}

	session, err := h.Accounts.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    session.User,
		"token":   session.Token,
	})
}

// Verify reads the token from the JSON body, or from an Authorization bearer
// header when the body carries none.
func (h *AccountHandler) Verify(c *gin.Context) {
	var in verifyInput
	if err := bindJSON(c, &in, nil); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	token := in.Token
	if token == "" {
		token = bearerToken(c.GetHeader("Authorization"))
	}

	claims, err := h.Accounts.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"valid": false, "message": MsgInvalidToken})
			return
		}
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": claims})
}

func (h *AccountHandler) Users(c *gin.Context) {
	users, err := h.Accounts.Users(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CatalogHandler serves the Catalog Service routes.
type CatalogHandler struct {
	Catalog CatalogService
	Logger  logging.Logger
}

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *CatalogHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Products(c.Query("category")))
}

func (h *CatalogHandler) Product(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, common.ErrProductNotFound)
		return
	}
	p, err := h.Catalog.Product(id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) Components(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Components())
}

func (h *CatalogHandler) ComponentsOf(c *gin.Context) {
	list, err := h.Catalog.ComponentsOf(c.Param("type"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CatalogHandler) Contact(c *gin.Context) {
	var in contactInput
	if err := bindJSON(c, &in, common.ErrMissingFields); err != nil {
		respondError(c, h.Logger, err)
		return
	}

	at, err := h.Catalog.Contact(schema.ContactMessage(in))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   catalog.ContactReply,
		"timestamp": at,
	})
}

func (h *CatalogHandler) BuildPC(c *gin.Context) {
	var in schema.BuildRequest
	if err := bindJSON(c, &in, common.ErrMissingComponents); err != nil {
		respondError(c, h.Logger, err)
		return
	}

	quote, err := h.Catalog.Quote(in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
}
