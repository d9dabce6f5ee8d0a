package cli

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/billing"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/repositories/users"
	"github.com/dmitrijs2005/cybercafe/internal/cafe/services"
	"github.com/dmitrijs2005/cybercafe/internal/common"
	"github.com/dmitrijs2005/cybercafe/internal/logging"
	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// newTestApp builds an App around a real registry with an in-memory
// repository. Set app.reader with readerFromLines before driving a command.
func newTestApp(t *testing.T) *App {
	t.Helper()
	repo := users.NewInMemoryRepository()
	registry := services.NewRegistry(repo, billing.DefaultPolicy(), bcrypt.MinCost, logging.NewNopLogger())
	gate := services.NewGate([]string{"admin1@skylinecyber.com"}, registry, logging.NewNopLogger())
	return &App{
		registry: registry,
		gate:     gate,
		log:      logging.NewNopLogger(),
	}
}

// stubPasswords makes getPassword return the given passwords in order.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(w io.Writer) ([]byte, error) {
		if i >= len(passwords) {
			return nil, io.EOF
		}
		p := []byte(passwords[i])
		i++
		return p, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func registerAlice(t *testing.T, app *App) string {
	t.Helper()
	user, err := app.registry.Register(context.Background(), "Alice", "alice@x.com", []byte("Abcdef1!"))
	require.NoError(t, err)
	return user.ID
}

func TestRegister_WeakPasswordRetried(t *testing.T) {
	out := captureOutput(t)
	stubPasswords(t, "weak", "Abcdef1!")

	app := newTestApp(t)
	app.reader = readerFromLines("Alice", "alice@x.com")

	require.NoError(t, app.Register(context.Background()))

	assert.True(t, outputContains(out, "Password is not strong enough. Please try again."))
	assert.True(t, outputContains(out, "Registration successful!"))

	list, err := app.registry.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
}

func TestRegister_BlankNameFails(t *testing.T) {
	out := captureOutput(t)
	stubPasswords(t, "Abcdef1!")

	app := newTestApp(t)
	app.reader = readerFromLines("", "alice@x.com")

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.True(t, outputContains(out, "Registration failed:"))
}

func TestStartSession_FullFlow(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)
	app.reader = readerFromLines(
		userID,
		"print",
		"10",
		"scan",
		"4",
		"end",
	)

	require.NoError(t, app.StartSession(context.Background()))

	assert.True(t, outputContains(out, "Session started successfully!"))
	assert.True(t, outputContains(out, "Print job added successfully!"))
	assert.True(t, outputContains(out, "Scan job added successfully!"))
	assert.True(t, outputContains(out, "Total Amount: $2.60"))

	user, err := app.registry.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(260), user.TotalSpent)
	require.Len(t, user.Sessions, 1)
	assert.False(t, user.Sessions[0].Active)
}

func TestStartSession_UserNotFound(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	app.reader = readerFromLines("ghost")

	err := app.StartSession(context.Background())
	assert.ErrorIs(t, err, common.ErrorUserNotFound)
	assert.True(t, outputContains(out, "User not found!"))
}

func TestStartSession_AlreadyActive(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)
	_, err := app.registry.StartSession(context.Background(), userID)
	require.NoError(t, err)

	app.reader = readerFromLines(userID)

	err = app.StartSession(context.Background())
	assert.ErrorIs(t, err, common.ErrorSessionAlreadyActive)
	assert.True(t, outputContains(out, "User already has an active session!"))
}

func TestStartSession_BadPageInputReported(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)
	app.reader = readerFromLines(
		userID,
		"print",
		"-5",
		"scan",
		"lots",
		"end",
	)

	require.NoError(t, app.StartSession(context.Background()))

	assert.True(t, outputContains(out, "error:"))
	assert.True(t, outputContains(out, "Total Amount: $0.00"))

	user, err := app.registry.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, user.TotalSpent.IsZero())
}

func TestHistory(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)

	// No sessions yet.
	app.reader = readerFromLines(userID)
	require.NoError(t, app.History(context.Background()))
	assert.True(t, outputContains(out, "No session history found for this user."))

	s, err := app.registry.StartSession(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, s.AddPrintJob(10))
	require.NoError(t, s.AddScanJob(4))
	require.NoError(t, app.registry.CloseSession(context.Background(), userID, s))

	app.reader = readerFromLines(userID)
	require.NoError(t, app.History(context.Background()))
	assert.True(t, outputContains(out, "Session History for Alice"))
	assert.True(t, outputContains(out, "Total Amount Spent: $2.60"))
}

func TestDisplayUsers(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	require.NoError(t, app.DisplayUsers(context.Background()))
	assert.True(t, outputContains(out, "No users registered yet."))

	registerAlice(t, app)
	require.NoError(t, app.DisplayUsers(context.Background()))
	assert.True(t, outputContains(out, "Registered Users:"))
	assert.True(t, outputContains(out, "Name: Alice, Email: alice@x.com"))
}

func TestAdminLogin_Rejected(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	app.reader = readerFromLines("intruder@x.com")

	err := app.AdminLogin(context.Background())
	assert.ErrorIs(t, err, common.ErrorAdminAuthFailed)
	assert.True(t, outputContains(out, "Admin login failed. Email not recognised."))
}

func TestAdminMenu_Aggregates(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)

	s, err := app.registry.StartSession(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, s.AddPrintJob(10))
	require.NoError(t, s.AddScanJob(4))
	require.NoError(t, app.registry.CloseSession(context.Background(), userID, s))

	app.reader = readerFromLines(
		"admin1@skylinecyber.com",
		"names",
		"minutes",
		"revenue",
		"exit",
	)

	require.NoError(t, app.AdminLogin(context.Background()))

	assert.True(t, outputContains(out, "Admin login successful!"))
	assert.True(t, outputContains(out, "Alice"))
	assert.True(t, outputContains(out, "Total Duration of All Sessions: 0 minutes"))
	assert.True(t, outputContains(out, "Total Revenue: $2.60"))
	assert.True(t, outputContains(out, "Exiting admin menu."))
}

func TestAdminMenu_EditAndDelete(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(t)
	userID := registerAlice(t, app)

	app.reader = readerFromLines(
		"admin1@skylinecyber.com",
		"view",
		userID,
		"edit",
		userID,
		"Alice B.",
		"",
		"delete",
		userID,
		"delete",
		userID,
		"exit",
	)

	require.NoError(t, app.AdminLogin(context.Background()))

	assert.True(t, outputContains(out, "User Details:"))
	assert.True(t, outputContains(out, "User details successfully updated!"))
	assert.True(t, outputContains(out, "User deleted successfully!"))
	assert.True(t, outputContains(out, "User not found!"))

	_, err := app.registry.FindByID(context.Background(), userID)
	assert.ErrorIs(t, err, common.ErrorUserNotFound)
}
