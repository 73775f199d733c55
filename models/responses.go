package models

// UploadResult is the upload service response. The client holds it
// transiently until the next create operation consumes it, then discards it.
type UploadResult struct {
	// BlobName is the remote blob identifier.
	BlobName string `json:"blobName"`

	// FileURL is the resolved public URL of the stored blob.
	FileURL string `json:"fileUrl"`
}
