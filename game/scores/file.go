package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wricardo/perfect-guess/game/engine"
)

// FileName is the default score file name inside the user's home directory
const FileName = ".perfect_guess_highscores.json"

// Persistence operations reported in PersistenceError
const (
	OpLoad  = "load"
	OpSave  = "save"
	OpReset = "reset"
)

// legacyKeys maps the menu numbers older score files used as keys to preset names
var legacyKeys = map[string]string{
	"1": engine.DifficultyEasy,
	"2": engine.DifficultyMedium,
	"3": engine.DifficultyHard,
}

// ErrCorruptRecord is wrapped when the score file cannot be parsed
var ErrCorruptRecord = errors.New("corrupt score record")

// PersistenceError reports a failed score file operation
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s scores %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the score file in the user's home directory, or in
// the working directory when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// ReadFile loads a record from path. Failures are returned as
// *PersistenceError; entries with an empty key or a non-positive value are
// dropped. Legacy keys "1", "2" and "3" are read as easy, medium and hard,
// keeping the lower score when both forms are present.
func ReadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, &PersistenceError{Op: OpLoad, Path: path, Err: err}
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, &PersistenceError{Op: OpLoad, Path: path, Err: fmt.Errorf("%w: %v", ErrCorruptRecord, err)}
	}

	record := make(Record, len(raw))
	for key, attempts := range raw {
		if key == "" || attempts <= 0 {
			continue
		}
		if name, ok := legacyKeys[key]; ok {
			key = name
		}
		if best, ok := record[key]; ok && best <= attempts {
			continue
		}
		record[key] = attempts
	}
	return record, nil
}

// Load reads a record from path, returning an empty record when the file is
// missing, unreadable or corrupt
func Load(path string) Record {
	record, err := ReadFile(path)
	if err != nil {
		return Record{}
	}
	return record
}

// WriteFile saves record to path as indented JSON. The data is written to a
// temporary file in the same directory and renamed over path, so readers
// never observe a partial file.
func WriteFile(path string, record Record) (err error) {
	if record == nil {
		record = Record{}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: fmt.Errorf("failed to marshal scores: %w", err)}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}

	return nil
}

// Save is WriteFile with the record first, matching RecordResult call sites
func Save(record Record, path string) error {
	return WriteFile(path, record)
}

// RemoveFile deletes the score file. A file that is already absent is not
// an error.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: OpReset, Path: path, Err: err}
	}
	return nil
}

// Reset deletes the score file at path
func Reset(path string) error {
	return RemoveFile(path)
}
