// Package notify classifies command outcomes into the two levels a user
// can receive them at: transient informational notices and blocking
// errors that must be acknowledged.
package notify

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	slidekit "github.com/VantageDataChat/GoSlideKit"
)

// Severity is the acknowledgement level of a notification.
type Severity int

const (
	// SeverityNone means nothing to report.
	SeverityNone Severity = iota
	// SeverityInfo is a transient notice the user does not act on.
	SeverityInfo
	// SeverityBlocking is an error the user must acknowledge; commands
	// exit non-zero on it.
	SeverityBlocking
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityInfo:
		return "info"
	case SeverityBlocking:
		return "blocking"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Classify maps an error to its severity. Anything that stops a command
// from doing what was asked (bad selections, unknown shapes or slots,
// unreadable decks) blocks; nil means nothing to report.
func Classify(err error) Severity {
	if err == nil {
		return SeverityNone
	}
	// All command failures require acknowledgement; the distinction the
	// severity carries is between outcomes (info) and failures (blocking).
	return SeverityBlocking
}

// UserFacing reports whether the error is a precondition or lookup
// failure the user can fix, as opposed to a broken or unreadable deck.
func UserFacing(err error) bool {
	return errors.Is(err, slidekit.ErrSelectionCount) ||
		errors.Is(err, slidekit.ErrNotPositionable) ||
		errors.Is(err, slidekit.ErrShapeNotFound) ||
		errors.Is(err, slidekit.ErrShapeAmbiguous) ||
		errors.Is(err, slidekit.ErrSlideOutOfRange) ||
		errors.Is(err, slidekit.ErrUnknownThemeSlot) ||
		errors.Is(err, slidekit.ErrNoTheme)
}

// Notifier delivers notifications to the user.
type Notifier interface {
	// Infof reports a transient outcome notice.
	Infof(format string, args ...any)
	// Blockingf reports an error the user must acknowledge.
	Blockingf(format string, args ...any)
}

// LogNotifier delivers notifications through a zerolog logger.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier returns a Notifier backed by the given logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Infof logs at info level.
func (n *LogNotifier) Infof(format string, args ...any) {
	n.logger.Info().Msgf(format, args...)
}

// Blockingf logs at error level.
func (n *LogNotifier) Blockingf(format string, args ...any) {
	n.logger.Error().Msgf(format, args...)
}
