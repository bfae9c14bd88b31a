// Package entity contains the core business objects of the project.
package entity

import "time"

// Fragment is a user-owned, typed content object held by the remote fragment store.
// The store assigns ID, OwnerID and the timestamps; the client never edits a fragment once created.
type Fragment struct {
	ID      string       // Opaque, server-assigned identifier.
	OwnerID string       // Owner as reported by the store; always the session's user.
	Type    FragmentType // Declared MIME type of Content.
	Size    int          // Content length in bytes as reported by the store.
	Created time.Time    // Creation time, zero when the store returned a bare id.
	Updated time.Time    // Last update time, zero when the store returned a bare id.
	Content []byte       // Raw payload; only populated by a detail fetch or at creation.
}

// Draft is the pending input for the next create: it survives failures and is cleared only on success.
type Draft struct {
	Content string
	Type    FragmentType
}

// IsEmpty reports whether nothing has been typed yet.
func (d Draft) IsEmpty() bool {
	return d.Content == ""
}

// FragmentIDs returns the ids of fragments in order.
func FragmentIDs(fragments []Fragment) []string {
	ids := make([]string, len(fragments))
	for i, f := range fragments {
		ids[i] = f.ID
	}

	return ids
}
