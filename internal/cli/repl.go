package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Courses(ctx context.Context) error
	Search(ctx context.Context) error
	MyCourses(ctx context.Context) error
	Enroll(ctx context.Context) error
	Buy(ctx context.Context) error
	Redeem(ctx context.Context) error
	CompleteLesson(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	Users(ctx context.Context) error
	BlockUser(ctx context.Context) error
	UnblockUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	AddCourse(ctx context.Context) error
	AddLesson(ctx context.Context) error
	EditCourse(ctx context.Context) error
	TogglePublish(ctx context.Context) error
	DeleteCourse(ctx context.Context) error
	Stats(ctx context.Context) error
	Export(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the EduKit CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           — show available commands
//	  - courses        — list the published catalog
//	  - search         — search the catalog (interactive query prompt)
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - register       — create an account
//	  - login          — authenticate
//
//	Logged in:
//	  - my             — enrolled courses with progress
//	  - enroll         — enroll in a free course
//	  - buy            — purchase a paid course
//	  - redeem         — unlock a locked course with its entry code
//	  - complete       — mark a lesson done or not done
//	  - profile        — show the current user's profile
//	  - settings       — view or change app settings
//	  - logout         — log out
//
//	Admin only:
//	  - users, block, unblock, deluser
//	  - addcourse, addlesson, editcourse, publish, delcourse
//	  - stats, export, reset
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	needsLogin := func(run func(context.Context) error) {
		if !a.isLoggedIn() {
			printlnFn("Please login first.")
			return
		}
		_ = run(ctx)
	}
	needsAdmin := func(run func(context.Context) error) {
		if !a.isAdmin() {
			printlnFn("Admins only.")
			return
		}
		_ = run(ctx)
	}

	for {
		printlnFn(fmt.Sprintf("edukit %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: courses, search, exit")
			if a.isLoggedIn() {
				printlnFn("  my, enroll, buy, redeem, complete, profile, settings, logout")
			} else {
				printlnFn("  register, login")
			}
			if a.isAdmin() {
				printlnFn("  users, block, unblock, deluser, addcourse, addlesson, editcourse, publish, delcourse, stats, export, reset")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			needsLogin(a.Logout)

		case "courses":
			_ = a.Courses(ctx)

		case "search":
			_ = a.Search(ctx)

		case "my":
			needsLogin(a.MyCourses)

		case "enroll":
			needsLogin(a.Enroll)

		case "buy":
			needsLogin(a.Buy)

		case "redeem":
			needsLogin(a.Redeem)

		case "complete":
			needsLogin(a.CompleteLesson)

		case "profile":
			needsLogin(a.Profile)

		case "settings":
			needsLogin(a.Settings)

		case "users":
			needsAdmin(a.Users)

		case "block":
			needsAdmin(a.BlockUser)

		case "unblock":
			needsAdmin(a.UnblockUser)

		case "deluser":
			needsAdmin(a.DeleteUser)

		case "addcourse":
			needsAdmin(a.AddCourse)

		case "addlesson":
			needsAdmin(a.AddLesson)

		case "editcourse":
			needsAdmin(a.EditCourse)

		case "publish":
			needsAdmin(a.TogglePublish)

		case "delcourse":
			needsAdmin(a.DeleteCourse)

		case "stats":
			needsAdmin(a.Stats)

		case "export":
			needsAdmin(a.Export)

		case "reset":
			needsAdmin(a.Reset)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
