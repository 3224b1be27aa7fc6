package scores

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
)

// ErrorHandler observes persistence failures that FileStore downgraded
type ErrorHandler func(err *PersistenceError)

// FileStore reads and writes one score file on behalf of gameplay code.
// Persistence failures never escape its Load and Save methods: they are
// logged, passed to the optional ErrorHandler and reported as a boolean.
type FileStore struct {
	path    string
	log     zerolog.Logger
	onError ErrorHandler
}

// NewFileStore creates a store for the score file at path
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{
		path: path,
		log:  logger.With().Str("component", "scores").Str("path", path).Logger(),
	}
}

// OnError registers a handler for downgraded persistence failures
func (s *FileStore) OnError(handler ErrorHandler) {
	s.onError = handler
}

// Path returns the score file path
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored record, or an empty record when the file is
// missing or unusable
func (s *FileStore) Load() Record {
	record, err := ReadFile(s.path)
	if err != nil {
		var perr *PersistenceError
		if errors.As(err, &perr) && errors.Is(perr, fs.ErrNotExist) {
			s.log.Debug().Msg("no score file yet, starting with an empty record")
			return Record{}
		}
		s.downgrade(err)
		return Record{}
	}

	s.log.Debug().Int("entries", len(record)).Msg("loaded scores")
	return record
}

// Save writes record and reports whether it was persisted
func (s *FileStore) Save(record Record) bool {
	if err := WriteFile(s.path, record); err != nil {
		s.downgrade(err)
		return false
	}

	s.log.Debug().Int("entries", len(record)).Msg("saved scores")
	return true
}

// Reset deletes the score file. Unlike Save, the failure is returned so an
// explicit reset request can be reported to the player.
func (s *FileStore) Reset() error {
	if err := RemoveFile(s.path); err != nil {
		s.downgrade(err)
		return err
	}

	s.log.Info().Msg("scores reset")
	return nil
}

func (s *FileStore) downgrade(err error) {
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		perr = &PersistenceError{Path: s.path, Err: err}
	}

	s.log.Warn().Err(perr.Err).Str("op", perr.Op).Msg("score persistence failed, continuing without it")
	if s.onError != nil {
		s.onError(perr)
	}
}
