// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMoveRequest indicates a request that matches no legal move.
	ErrIllegalMoveRequest = errors.New("illegal move")

	// ErrAmbiguousMoveRequest indicates a request that matches several legal moves.
	ErrAmbiguousMoveRequest = errors.New("ambiguous move")

	// ErrInvalidPromotionChoice indicates a promotion piece that is not allowed
	// or a promotion piece given for a move that does not promote.
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")

	// ErrPromotionRequired indicates a promoting move requested without a piece.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrNoMoveToUndo indicates an undo with nothing to take back.
	ErrNoMoveToUndo = errors.New("no move to undo")

	// ErrNoMoveToRedo indicates a redo with no undone move available.
	ErrNoMoveToRedo = errors.New("no move to redo")

	// ErrInvalidMoveText indicates move text that cannot be decoded.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrGameOver indicates a move submitted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidLog indicates a move log that cannot be restored.
	ErrInvalidLog = errors.New("invalid move log")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply the request was made at,
// the text of the request and, for ambiguous requests, the candidate moves.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err        error    // The underlying error
	Ply        int      // 1-based ply the request was made for (0 if unknown)
	MoveText   string   // The move text that caused the error (if applicable)
	Candidates []string // Matching moves of an ambiguous request
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if len(e.Candidates) > 0 {
		parts = append(parts, "candidates "+strings.Join(e.Candidates, " "))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for move text and move log errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if e.Line > 0 {
			if loc != "" {
				loc += ":"
			} else {
				loc = "line "
			}
			loc += fmt.Sprintf("%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target and sets
// target to it.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
