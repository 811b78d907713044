package repository

import (
	"context"

	"my-videos/domain/dto"
	"my-videos/domain/model"
)

// IYouTube lists playlist entries from the external video platform on the
// user's behalf.
type IYouTube interface {
	// ListPlaylistItems fetches up to maxResults entries from the named
	// playlist. Empty parameters are dropped so the platform applies its own
	// defaults.
	ListPlaylistItems(ctx context.Context, creds *model.CredentialBundle, playlistID string, maxResults int64) (*dto.PlaylistItemsResult, error)
}
