package media

import (
	"context"
	"strings"
)

// Kind is the declared resource kind of an upload
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// UploadResult describes a durably stored media object
type UploadResult struct {
	// URL is the durable, publicly reachable location of the object
	URL string
	// StorageID is the stable identifier the host can address the object by
	StorageID string
}

// Uploader is the external media-hosting collaborator. It accepts a raw
// byte buffer and a resource kind and stores it under the given folder
// namespace. Implementations must not persist anything on failure.
type Uploader interface {
	Upload(ctx context.Context, data []byte, kind Kind, folder string) (*UploadResult, error)
}

// Thumbnail frames are extracted at a fixed 400x400 fill crop
const thumbnailTransform = "w_400,h_400,c_fill"

// ThumbnailURL derives the thumbnail location for an uploaded video from
// its storage identifier. This is pure URL construction - the host
// extracts a frame on demand when the .jpg variant is requested; no
// second upload happens.
func ThumbnailURL(publicBase, storageID string) string {
	if publicBase == "" || storageID == "" {
		return ""
	}
	return strings.TrimSuffix(publicBase, "/") + "/video/upload/" + thumbnailTransform + "/" + storageID + ".jpg"
}
