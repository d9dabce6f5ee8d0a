package services

import (
	"context"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/models"
	"github.com/dmitrijs2005/cybercafe/internal/common"
	"github.com/dmitrijs2005/cybercafe/internal/logging"
	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// Gate is the admin access check: a fixed allow-list of admin emails.
// Login yields an AdminService, and holding one is the capability that
// authorizes administrative operations, so the business logic never
// re-checks the caller's identity. Swapping the allow-list for real
// credential verification only touches this type.
type Gate struct {
	allowed  map[string]struct{}
	registry *Registry
	log      logging.Logger
}

func NewGate(allowedEmails []string, registry *Registry, log logging.Logger) *Gate {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[e] = struct{}{}
	}
	return &Gate{allowed: allowed, registry: registry, log: log}
}

// Login matches the email exactly against the allow-list. An unknown email
// returns common.ErrorAdminAuthFailed.
func (g *Gate) Login(ctx context.Context, email string) (*AdminService, error) {
	if _, ok := g.allowed[email]; !ok {
		g.log.Warn(ctx, "admin login rejected", "email", email)
		return nil, common.ErrorAdminAuthFailed
	}
	g.log.Info(ctx, "admin logged in", "email", email)
	return &AdminService{registry: g.registry, email: email}, nil
}

// AdminService exposes the administrative operations of the registry. It
// can only be obtained through Gate.Login.
type AdminService struct {
	registry *Registry
	email    string
}

// Email reports which admin this capability was issued to.
func (a *AdminService) Email() string { return a.email }

func (a *AdminService) ViewUser(ctx context.Context, id string) (*models.User, error) {
	return a.registry.FindByID(ctx, id)
}

func (a *AdminService) Edit(ctx context.Context, id, newName, newEmail string) error {
	return a.registry.Edit(ctx, id, newName, newEmail)
}

func (a *AdminService) Delete(ctx context.Context, id string) error {
	return a.registry.Delete(ctx, id)
}

// ListNames returns the names of all registered users in insertion order.
func (a *AdminService) ListNames(ctx context.Context) ([]string, error) {
	list, err := a.registry.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Name)
	}
	return names, nil
}

func (a *AdminService) TotalSessionMinutes(ctx context.Context) (int, error) {
	return a.registry.TotalSessionMinutes(ctx)
}

func (a *AdminService) TotalRevenue(ctx context.Context) (money.Amount, error) {
	return a.registry.TotalRevenue(ctx)
}
