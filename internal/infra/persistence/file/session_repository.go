// Package file persists client state on the local filesystem.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"fragments/config"
	"fragments/internal/domain/entity"
	"fragments/internal/domain/repository"

	"github.com/pkg/errors"
)

// sessionRepository stores the signed-in session as a JSON document readable only by the user.
type sessionRepository struct {
	path string
}

// NewSessionRepository is the constructor for the file-backed session store.
func NewSessionRepository(cfg *config.Config) repository.SessionRepository {
	return NewSessionRepositoryAt(cfg.Auth.SessionPath)
}

// NewSessionRepositoryAt stores the session at an explicit path.
func NewSessionRepositoryAt(path string) repository.SessionRepository {
	return &sessionRepository{path: path}
}

func (r *sessionRepository) SaveSession(_ context.Context, session *entity.Session) error {
	if session == nil {
		return errors.New("cannot persist a nil session")
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	// Write then rename; readers never see a partial file.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return errors.Wrap(err, "write session")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)

		return errors.Wrap(err, "replace session")
	}

	return nil
}

func (r *sessionRepository) LoadSession(_ context.Context) (*entity.Session, error) {
	payload, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "read session")
	}

	session := &entity.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	if session.Credential.Token == "" {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) ClearSession(_ context.Context) error {
	if err := os.Remove(r.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrap(err, "clear session")
	}

	return nil
}
