package models

// Image is a raw upload forwarded to the image host.
type Image struct {
	// OwnerID is the user the image belongs to; hosts may use it to build
	// object keys.
	OwnerID int64

	// Filename is the client-side file name, if any. Only its extension is
	// used.
	Filename string

	// ContentType is the declared MIME type of Data.
	ContentType string

	Data []byte
}

// AvatarResponse is returned by the avatar upload endpoint.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
