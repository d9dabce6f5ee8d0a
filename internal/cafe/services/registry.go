package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/billing"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/models"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/repositories/users"
	"github.com/dmitrijs2005/cybercafe/internal/common"
	"github.com/dmitrijs2005/cybercafe/internal/logging"
	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// newUserID and timeNow are test seams. Production code always runs with
// uuid.NewString and time.Now.
var newUserID = uuid.NewString
var timeNow = time.Now

// Registry owns the set of registered users and enforces the core
// invariants: unique user ids, at most one active session per user, and a
// per-user total that always equals the sum of that user's closed-session
// bills.
type Registry struct {
	repo       users.Repository
	policy     billing.Policy
	bcryptCost int
	log        logging.Logger
}

func NewRegistry(repo users.Repository, policy billing.Policy, bcryptCost int, log logging.Logger) *Registry {
	return &Registry{repo: repo, policy: policy, bcryptCost: bcryptCost, log: log}
}

// Register validates the input, hashes the password, and inserts a new user
// with a generated id and the current joining date.
//
// Name and email must be non-empty. The password must satisfy
// ValidatePassword; a failing password returns common.ErrorWeakPassword so
// the caller can re-prompt. The plaintext password is wiped after hashing.
func (r *Registry) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if err := ValidatePassword(string(password)); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password, r.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           newUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		JoinedAt:     timeNow(),
	}

	if err := r.repo.Create(ctx, user); err != nil {
		// A UUID collision would mean the uniqueness invariant is broken.
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	r.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// FindByID returns the user with the exact id, or common.ErrorUserNotFound.
func (r *Registry) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.repo.GetByID(ctx, id)
}

// StartSession opens a new session for the user. It fails with
// common.ErrorUserNotFound if the id is unknown and with
// common.ErrorSessionAlreadyActive if the user's most recent session is
// still open.
func (r *Registry) StartSession(ctx context.Context, userID string) (*models.Session, error) {
	user, err := r.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.ActiveSession() != nil {
		return nil, common.ErrorSessionAlreadyActive
	}

	session := models.OpenSession(user.NextSessionID(), timeNow())
	user.Sessions = append(user.Sessions, session)
	if err := r.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	r.log.Info(ctx, "session started", "user_id", userID, "session_id", session.ID)
	return session, nil
}

// CloseSession ends the session, computes its bill, and folds the amount
// into the user's running total. It runs effectively once per session:
// closing an already-closed session changes nothing and accumulates
// nothing.
func (r *Registry) CloseSession(ctx context.Context, userID string, session *models.Session) error {
	user, err := r.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !session.Active {
		return nil
	}

	session.Close(timeNow(), r.policy)
	user.TotalSpent = user.TotalSpent.Add(session.TotalAmount)
	if err := r.repo.Update(ctx, user); err != nil {
		return err
	}

	r.log.Info(ctx, "session closed",
		"user_id", userID,
		"session_id", session.ID,
		"minutes", session.Duration(),
		"amount", session.TotalAmount.String(),
	)
	return nil
}

// Edit updates the user's name and/or email. Blank fields keep the current
// values.
func (r *Registry) Edit(ctx context.Context, id, newName, newEmail string) error {
	user, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if newName != "" {
		user.Name = newName
	}
	if newEmail != "" {
		user.Email = newEmail
	}
	return r.repo.Update(ctx, user)
}

// Delete removes the user and all owned sessions.
func (r *Registry) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.log.Info(ctx, "user deleted", "user_id", id)
	return nil
}

// ListAll returns every registered user in insertion order.
func (r *Registry) ListAll(ctx context.Context) ([]*models.User, error) {
	return r.repo.List(ctx)
}

// TotalSessionMinutes sums the durations of every closed session across all
// users. Active sessions have no duration yet and are skipped.
func (r *Registry) TotalSessionMinutes(ctx context.Context) (int, error) {
	list, err := r.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, user := range list {
		for _, s := range user.Sessions {
			if s.Active {
				continue
			}
			total += s.Duration()
		}
	}
	return total, nil
}

// TotalRevenue sums TotalSpent over all users.
func (r *Registry) TotalRevenue(ctx context.Context) (money.Amount, error) {
	list, err := r.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	var total money.Amount
	for _, user := range list {
		total = total.Add(user.TotalSpent)
	}
	return total, nil
}
