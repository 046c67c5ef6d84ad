package domain

import "time"

// Entry is one line of a peer-scoped message or issue log. Entries have no
// id of their own: their position in the log is their identity.
type Entry struct {
	AuthorRole AuthorRole `json:"from"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"ts"`
}

// EntryAppended is emitted after an entry has been persisted to a log.
type EntryAppended struct {
	Namespace string
	PeerID    string
	AuthorID  string
	Entry     Entry
}
