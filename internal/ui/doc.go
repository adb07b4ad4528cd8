// Package ui renders the task list and applies user actions to the
// store.
//
// The view model follows the Elm loop Bubble Tea provides: Update
// receives one discrete user action at a time, applies it to the store
// synchronously, and refreshes the full in-memory snapshot before the
// next frame renders. There is no background work, so the snapshot the
// view reads is always consistent with the database.
//
// # Modes
//
//   - list: navigate the filtered snapshot, toggle, delete, restore
//   - add: capture title and optional description for a new task
//   - edit: rework title and description of one existing task
//   - confirm: answer a pending delete prompt
//
// Edit state is a tagged value (*editState) that exists only while one
// task is being edited. Its buffers are seeded from the task when edit
// starts and discarded on cancel, so mutual exclusivity of the edit
// target is structural rather than a convention.
//
// # Filters
//
// Exactly one filter is active: All, Active, Completed or Deleted.
// All hides soft-deleted tasks; only Deleted surfaces them. That
// asymmetry is deliberate — Deleted is the trash can.
package ui
