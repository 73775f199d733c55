package models

// UploadRequest is the body sent to the upload endpoint. The file content
// travels base64-encoded inside the JSON body; the remote service stores the
// blob and returns an [UploadResult].
type UploadRequest struct {
	// UserID is the owner of the uploaded blob.
	UserID string `json:"userId"`

	// Filename is the original name of the selected file.
	Filename string `json:"filename"`

	// Filetype is the declared MIME type of the file.
	Filetype string `json:"filetype"`

	// FileBase64 is the base64 payload of the file content, without any
	// data-URL prefix.
	FileBase64 string `json:"fileBase64"`
}

// CreateEntryRequest is the body sent to the create endpoint.
// The media fields are included only when an upload completed in the current
// session; a request never carries a partial media reference.
type CreateEntryRequest struct {
	UserID     string     `json:"userId"`
	Text       string     `json:"text"`
	Visibility Visibility `json:"visibility"`

	// UploadDate is the client-side creation timestamp, UTC ISO-8601.
	UploadDate string `json:"uploadDate"`

	Filename string `json:"filename,omitempty"`
	Filetype string `json:"filetype,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// ListEntriesRequest is the body sent to the get endpoint.
type ListEntriesRequest struct {
	UserID string `json:"userId"`
}

// UpdateEntryRequest is the body sent to the update endpoint.
//
// The target identifier is deliberately carried under both the `id` and
// `entryId` keys: deployed journal stores disagree on the naming and the
// client does not infer which one the remote side consumes.
type UpdateEntryRequest struct {
	ID         string     `json:"id"`
	EntryID    string     `json:"entryId"`
	Text       string     `json:"text"`
	Visibility Visibility `json:"visibility"`
}

// DeleteEntryRequest is the body sent to the delete endpoint.
// Same dual-key identifier shim as [UpdateEntryRequest].
type DeleteEntryRequest struct {
	ID      string `json:"id"`
	EntryID string `json:"entryId"`
}
