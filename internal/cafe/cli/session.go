package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/models"
	"github.com/dmitrijs2005/cybercafe/internal/common"
)

// StartSession opens a session for an existing user, runs the activity
// loop until the operator ends it, then closes the session and prints the
// bill. The same flow that opens a session always closes it.
func (a *App) StartSession(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user ID", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.registry.StartSession(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUserNotFound):
			printlnFn("User not found!")
		case errors.Is(err, common.ErrorSessionAlreadyActive):
			printlnFn("User already has an active session!")
		default:
			printlnFn("error:", err.Error())
		}
		return err
	}

	printlnFn("Session started successfully!")
	a.runActivityLoop(session)

	if err := a.registry.CloseSession(ctx, userID, session); err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn("=== Session Bill ===")
	printlnFn(session.Summary())
	return nil
}

// runActivityLoop feeds print and scan jobs into the open session until
// the operator types "end". Invalid input is reported and the loop keeps
// going.
func (a *App) runActivityLoop(session *models.Session) {
	for {
		cmd, err := getSimpleText(a.reader, "Session activities: print | scan | end", os.Stdout)
		if err != nil {
			return
		}

		switch cmd {
		case "print":
			pages, err := getPageCount(a.reader, "Enter number of pages to print", os.Stdout)
			if err != nil {
				printlnFn("error:", err.Error())
				continue
			}
			if err := session.AddPrintJob(pages); err != nil {
				printlnFn("error:", err.Error())
				continue
			}
			printlnFn("Print job added successfully!")

		case "scan":
			pages, err := getPageCount(a.reader, "Enter number of pages to scan", os.Stdout)
			if err != nil {
				printlnFn("error:", err.Error())
				continue
			}
			if err := session.AddScanJob(pages); err != nil {
				printlnFn("error:", err.Error())
				continue
			}
			printlnFn("Scan job added successfully!")

		case "end":
			printlnFn("Ending session...")
			return

		case "":
			continue

		default:
			printlnFn("Unknown choice:", cmd)
		}
	}
}
