// Package native models the non-POSIX substrate the emulator runs on: its
// error codes, its path text in narrow or wide form, its file attributes and
// the backend interfaces that perform native filesystem calls.
package native
