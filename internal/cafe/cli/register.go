package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/cybercafe/internal/common"
)

// getSimpleText, getPassword, and getPageCount are indirections used to
// facilitate testing. They point to the interactive input helpers and can
// be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getPageCount = GetPageCount

// Register prompts for a name, email, and password and creates the user.
// A password failing the strength policy is re-prompted until it passes;
// any other failure is reported and ends the flow. On success the new
// user id and joining date are printed.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn("Password must be at least 8 characters, with uppercase, lowercase, a digit, and one of @$!%*?&")
	for {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}

		user, err := a.registry.Register(ctx, name, email, password)
		if err != nil {
			if errors.Is(err, common.ErrorWeakPassword) {
				printlnFn("Password is not strong enough. Please try again.")
				continue
			}
			printlnFn("Registration failed:", err.Error())
			return err
		}

		printlnFn("Registration successful!")
		printlnFn("Your User ID:", user.ID)
		printlnFn("Joining Date:", user.JoinedAt.Format(time.ANSIC))
		return nil
	}
}
