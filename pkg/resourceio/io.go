package resourceio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Load when path does not exist.
var ErrNotFound = errors.New("resourceio: file not found")

// Loader reads and writes JSON-encoded resource documents, logging each
// operation through an optional nil-safe logger.
type Loader struct {
	logger *logrus.Entry
}

// NewLoader returns a Loader that logs through logger, scoped with a
// "component":"resourceio" field. logger may be nil, in which case Loader
// logs nothing.
func NewLoader(logger *logrus.Logger) *Loader {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithField("component", "resourceio")
	}
	return &Loader{logger: entry}
}

// Load reads path and unmarshals it into dest, which must be a pointer.
// Returns ErrNotFound wrapped if path does not exist.
func (l *Loader) Load(path string, dest interface{}) error {
	l.logDebug("loading resource", logrus.Fields{"path": path})

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logWarn("resource file not found", err, logrus.Fields{"path": path})
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		l.logError("failed to read resource file", err, logrus.Fields{"path": path})
		return fmt.Errorf("resourceio: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		l.logError("failed to parse resource file", err, logrus.Fields{"path": path})
		return fmt.Errorf("resourceio: parse %s: %w", path, err)
	}

	l.logInfo("resource loaded", logrus.Fields{"path": path, "size": len(data)})
	return nil
}

// Save marshals src with 4-space indentation and writes it to path,
// creating or truncating the file.
func (l *Loader) Save(path string, src interface{}) error {
	l.logDebug("saving resource", logrus.Fields{"path": path})

	data, err := json.MarshalIndent(src, "", "    ")
	if err != nil {
		l.logError("failed to marshal resource", err, logrus.Fields{"path": path})
		return fmt.Errorf("resourceio: marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		l.logError("failed to write resource file", err, logrus.Fields{"path": path})
		return fmt.Errorf("resourceio: write %s: %w", path, err)
	}

	l.logInfo("resource saved", logrus.Fields{"path": path, "size": len(data)})
	return nil
}

func (l *Loader) logDebug(msg string, fields logrus.Fields) {
	if l.logger != nil {
		l.logger.WithFields(fields).Debug(msg)
	}
}

func (l *Loader) logInfo(msg string, fields logrus.Fields) {
	if l.logger != nil {
		l.logger.WithFields(fields).Info(msg)
	}
}

func (l *Loader) logWarn(msg string, err error, fields logrus.Fields) {
	if l.logger != nil {
		l.logger.WithFields(fields).WithError(err).Warn(msg)
	}
}

func (l *Loader) logError(msg string, err error, fields logrus.Fields) {
	if l.logger != nil {
		l.logger.WithFields(fields).WithError(err).Error(msg)
	}
}
