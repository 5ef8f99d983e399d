package editor

import (
	"bytes"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"gridmapper/internal/export"
	"gridmapper/internal/grid"
)

// Session persists the editor state between runs through gdata's
// per-platform app-data storage. A nil manager is the degraded mode: the
// editor still works, nothing is saved.
type Session struct {
	manager *gdata.Manager
}

const (
	sessionObject   = "session"
	sessionProperty = "autosave"
)

// OpenSession opens (or creates) the app-data store. Failure to open is
// logged and degrades to an in-memory session.
func OpenSession(appName string) *Session {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("session: storage unavailable: %v", err)
		return &Session{}
	}
	return &Session{manager: m}
}

// Save writes the state as its JSON document encoding.
func (s *Session) Save(st grid.State) error {
	if s.manager == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, st); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	if err := s.manager.SaveObjectProp(sessionObject, sessionProperty, buf.Bytes()); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Restore loads the previously saved state. ok is false when there is no
// saved session or it fails to parse; a broken autosave is dropped rather
// than blocking startup.
func (s *Session) Restore() (grid.State, bool) {
	if s.manager == nil || !s.manager.ObjectPropExists(sessionObject, sessionProperty) {
		return grid.State{}, false
	}
	data, err := s.manager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		log.Printf("session: load failed: %v", err)
		return grid.State{}, false
	}
	st, err := export.ReadJSON(bytes.NewReader(data))
	if err != nil {
		log.Printf("session: saved state unreadable: %v", err)
		return grid.State{}, false
	}
	return st, true
}
