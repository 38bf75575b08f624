package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/celerix-dev/gamingtech-store/pkg/schema"
)

// APIError is a non-2xx answer from either service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// Service names one of the two backends.
type Service string

const (
	AccountService Service = "account"
	CatalogService Service = "catalog"
)

// --- Response payloads ---

type RegisterResponse struct {
	Message string            `json:"message"`
	User    schema.PublicUser `json:"user"`
}

type LoginResponse struct {
	Message string            `json:"message"`
	User    schema.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

type VerifyResponse struct {
	Valid   bool           `json:"valid"`
	User    *schema.Claims `json:"user,omitempty"`
	Message string         `json:"message,omitempty"`
}

type ContactResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// --- Functional interfaces ---

// Accounts is the Account Service surface.
type Accounts interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Verify(ctx context.Context, token string) (*VerifyResponse, error)
	Users(ctx context.Context) ([]schema.PublicUser, error)
}

// CatalogReader lists products and components.
type CatalogReader interface {
	Products(ctx context.Context, category string) ([]schema.Product, error)
	Product(ctx context.Context, id int) (*schema.Product, error)
	Components(ctx context.Context) (map[schema.ComponentType][]schema.Component, error)
	ComponentsOfType(ctx context.Context, kind string) ([]schema.Component, error)
}

// Storefront is the Catalog Service's write-free actions.
type Storefront interface {
	Contact(ctx context.Context, m schema.ContactMessage) (*ContactResponse, error)
	BuildPC(ctx context.Context, req schema.BuildRequest) (*schema.BuildQuote, error)
}

// GamingTech combines both services.
type GamingTech interface {
	Accounts
	CatalogReader
	Storefront
	Health(ctx context.Context, svc Service) (*HealthStatus, error)
}
