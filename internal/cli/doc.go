// Package cli provides the interactive EduKit command-line client.
//
// It wires configuration, local storage, domain services, and an interactive
// REPL. Typical flow: open the database, seed the demo catalog on first run,
// and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Browse and search the published catalog
//   - Enroll in free courses, buy paid ones, redeem locked-course codes
//   - Track lesson progress per enrollment
//   - Admin: user moderation, course editing, stats, export, reset
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
