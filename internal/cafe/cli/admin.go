package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/services"
)

// AdminLogin authenticates against the admin gate and, on success, drops
// into the admin menu. The AdminService returned by the gate is the
// capability that authorizes everything inside the menu.
func (a *App) AdminLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter admin email", os.Stdout)
	if err != nil {
		return err
	}

	admin, err := a.gate.Login(ctx, email)
	if err != nil {
		printlnFn("Admin login failed. Email not recognised.")
		return err
	}

	printlnFn("Admin login successful!")
	a.runAdminMenu(ctx, admin)
	return nil
}

// runAdminMenu dispatches administrative commands until "exit". Every
// failure is reported and the menu regains control.
func (a *App) runAdminMenu(ctx context.Context, admin *services.AdminService) {
	for {
		cmd, err := getSimpleText(a.reader, "Admin menu: view | edit | delete | names | minutes | revenue | exit", os.Stdout)
		if err != nil {
			return
		}

		switch cmd {
		case "view":
			a.adminViewUser(ctx, admin)
		case "edit":
			a.adminEditUser(ctx, admin)
		case "delete":
			a.adminDeleteUser(ctx, admin)
		case "names":
			a.adminListNames(ctx, admin)
		case "minutes":
			a.adminTotalMinutes(ctx, admin)
		case "revenue":
			a.adminTotalRevenue(ctx, admin)
		case "exit":
			printlnFn("Exiting admin menu.")
			return
		case "":
			continue
		default:
			printlnFn("Unknown choice:", cmd)
		}
	}
}

func (a *App) adminViewUser(ctx context.Context, admin *services.AdminService) {
	id, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return
	}

	user, err := admin.ViewUser(ctx, id)
	if err != nil {
		printlnFn("User not found!")
		return
	}

	printlnFn("User Details:")
	printlnFn("Name:", user.Name)
	printlnFn("Email:", user.Email)
	printlnFn("User ID:", user.ID)
	printlnFn("Joining Date:", user.JoinedAt.Format(time.ANSIC))
	printlnFn("Total Spent:", user.TotalSpent.String())
}

func (a *App) adminEditUser(ctx context.Context, admin *services.AdminService) {
	id, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return
	}
	newName, err := getSimpleText(a.reader, "Enter new name (leave blank to keep current)", os.Stdout)
	if err != nil {
		return
	}
	newEmail, err := getSimpleText(a.reader, "Enter new email (leave blank to keep current)", os.Stdout)
	if err != nil {
		return
	}

	if err := admin.Edit(ctx, id, newName, newEmail); err != nil {
		printlnFn("User not found!")
		return
	}
	printlnFn("User details successfully updated!")
}

func (a *App) adminDeleteUser(ctx context.Context, admin *services.AdminService) {
	id, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return
	}

	if err := admin.Delete(ctx, id); err != nil {
		printlnFn("User not found!")
		return
	}
	printlnFn("User deleted successfully!")
}

func (a *App) adminListNames(ctx context.Context, admin *services.AdminService) {
	names, err := admin.ListNames(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return
	}

	printlnFn("Usernames:")
	for _, name := range names {
		printlnFn(name)
	}
}

func (a *App) adminTotalMinutes(ctx context.Context, admin *services.AdminService) {
	minutes, err := admin.TotalSessionMinutes(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Total Duration of All Sessions: %d minutes", minutes))
}

func (a *App) adminTotalRevenue(ctx context.Context, admin *services.AdminService) {
	revenue, err := admin.TotalRevenue(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return
	}
	printlnFn("Total Revenue:", revenue.String())
}
