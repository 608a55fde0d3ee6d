package dto

// UploadResponse is returned after a file lands in object storage.
type UploadResponse struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}
