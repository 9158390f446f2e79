// Package rcfile reads and rewrites the `export NAME=VALUE` lines a
// shell startup file holds.
//
// The file format is plain text, one export statement per line, with a
// trailing newline. All modifications are:
//   - Idempotent (appending an already-present line is a no-op)
//   - Atomic (temp file + rename in the same directory)
//   - Token-exact (removal only matches lines starting with
//     `export NAME=`, never other lines that mention NAME)
//
// No locking is performed: two processes rewriting the same file at
// once can lose one of the updates. Callers who need cross-process
// exclusion wrap these operations in a lock of their own.
package rcfile
