package domain

import "time"

// Session is the single persisted sign-in of this client.
type Session struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

func (s *Session) Present() bool {
	return s != nil && s.Token != ""
}
