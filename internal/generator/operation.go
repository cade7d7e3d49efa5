package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating parent
// directories). force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after
// Validate succeeds.
//
// Description returns a human-readable description for output
// (e.g., "Create src/solutions/day05/mod.rs (312 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file with content.
//
// Validation behavior:
//   - Creates parent directories if they don't exist (via os.MkdirAll)
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// InsertLineOp patches an existing file by inserting Line before marker lines.
//
// The file is scanned top to bottom. Once a line whose trimmed form starts
// with Sentinel is seen, the scan is armed; every subsequent line whose
// trimmed form starts with Before receives one inserted copy of Line directly
// above it. The scan never disarms, so a file with several marker lines after
// the sentinel is patched at each of them. A file without the sentinel, or
// without a marker after it, is rewritten unchanged and no error is raised.
//
// The rewritten file always uses LF line endings.
type InsertLineOp struct {
	Path     string // File to patch
	Sentinel string // Prefix that arms the scan
	Before   string // Prefix of the line to insert above
	Line     string // Line to insert (without trailing newline)
}

func (op *InsertLineOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		return fmt.Errorf("cannot patch %s: %w", op.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot patch %s: is a directory", op.Path)
	}
	return nil
}

func (op *InsertLineOp) Execute(ctx context.Context) error {
	content, err := os.ReadFile(op.Path)
	if err != nil {
		return err
	}

	patched, _ := InsertBefore(string(content), op.Sentinel, op.Before, op.Line)

	info, err := os.Stat(op.Path)
	if err != nil {
		return err
	}

	return os.WriteFile(op.Path, []byte(patched), info.Mode().Perm())
}

func (op *InsertLineOp) Description() string {
	return fmt.Sprintf("Update %s", op.Path)
}

// AppendLineOp appends a single line to a file, creating it if missing.
//
// There is no duplicate check: appending the same declaration twice leaves
// two copies in the file.
type AppendLineOp struct {
	Path string // File to append to
	Line string // Line to append (without trailing newline)
}

func (op *AppendLineOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot append to %s: %w", op.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot append to %s: is a directory", op.Path)
	}
	return nil
}

func (op *AppendLineOp) Execute(ctx context.Context) error {
	f, err := os.OpenFile(op.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(op.Line + "\n"); err != nil {
		return fmt.Errorf("failed to append to %s: %w", op.Path, err)
	}
	return nil
}

func (op *AppendLineOp) Description() string {
	return fmt.Sprintf("Append to %s", op.Path)
}
