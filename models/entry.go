package models

// Visibility defines the access scope of a journal entry.
type Visibility string

const (
	// VisibilityPrivate marks an entry readable by its owner only.
	VisibilityPrivate Visibility = "private"
	// VisibilityPublic marks an entry shared with other users.
	VisibilityPublic Visibility = "public"
)

// JournalEntry is a single journal record as the remote store returns it.
// The store is authoritative: the client holds a transient, possibly stale
// copy and replaces its whole list after every write.
type JournalEntry struct {
	// ID is the opaque identifier assigned by the remote store.
	ID string `json:"id"`

	// UserID identifies the owner of the entry.
	UserID string `json:"userId"`

	// Text is the entry body.
	Text string `json:"text"`

	// Visibility is the access scope, private or public.
	Visibility Visibility `json:"visibility"`

	// UploadDate is the creation timestamp as an ISO-8601 string,
	// set by the client at create time.
	UploadDate string `json:"uploadDate"`

	// Filename, Filetype and FileURL describe the attached media blob.
	// All three are empty when the entry carries no attachment.
	Filename string `json:"filename,omitempty"`
	Filetype string `json:"filetype,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// HasMedia reports whether the entry carries an attached media descriptor.
func (e JournalEntry) HasMedia() bool {
	return e.FileURL != ""
}

// MediaAttachment describes a completed upload that a new entry should
// reference. It is built from the upload service response and the locally
// selected file.
type MediaAttachment struct {
	Filename string
	Filetype string
	FileURL  string
}

// EntryDraft is the client-side input for creating a new entry.
// Media is nil unless an upload has completed in the current session;
// a draft never references a partial or dangling upload.
type EntryDraft struct {
	UserID     string
	Text       string
	Visibility Visibility
	Media      *MediaAttachment
}
