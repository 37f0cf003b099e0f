package store

// AppendSession adds a record to the session log. The log is append-only and
// insertion-ordered; existing records are never edited.
func (s *Store) AppendSession(sess Session) {
	s.data.Sessions = append(s.data.Sessions, sess)
}

// Sessions returns a copy of the session log in insertion order.
func (s *Store) Sessions() []Session {
	out := make([]Session, len(s.data.Sessions))
	copy(out, s.data.Sessions)
	return out
}
