package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DisplayUsers lists every registered user in registration order.
func (a *App) DisplayUsers(ctx context.Context) error {
	list, err := a.registry.ListAll(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if len(list) == 0 {
		printlnFn("No users registered yet.")
		return nil
	}

	printlnFn("Registered Users:")
	for _, u := range list {
		printlnFn(fmt.Sprintf("Name: %s, Email: %s, User ID: %s, Joining Date: %s, Total Spent: %s",
			u.Name, u.Email, u.ID, u.JoinedAt.Format(time.ANSIC), u.TotalSpent))
	}
	return nil
}

// History prompts for a user id and shows that user's session history and
// running total.
func (a *App) History(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.registry.FindByID(ctx, userID)
	if err != nil {
		printlnFn("User not found!")
		return err
	}

	if len(user.Sessions) == 0 {
		printlnFn("No session history found for this user.")
		return nil
	}

	printlnFn(fmt.Sprintf("=== Session History for %s ===", user.Name))
	for _, s := range user.Sessions {
		printlnFn(s.Summary())
		printlnFn("-------------------")
	}
	printlnFn("Total Amount Spent:", user.TotalSpent.String())
	return nil
}
