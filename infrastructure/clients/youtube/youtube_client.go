package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"my-videos/domain/dto"
	"my-videos/domain/model"
	"my-videos/domain/repository"
)

// requestTimeout bounds every outbound platform call; the handling goroutine
// must never block indefinitely on upstream I/O.
const requestTimeout = 10 * time.Second

// Client calls the video platform's playlist-items listing endpoint with
// session-scoped credentials.
type Client struct {
	oauthConfig *oauth2.Config
	timeout     time.Duration
}

// NewClient creates a playlist-items client around the shared OAuth2 config.
func NewClient(oauthConfig *oauth2.Config) repository.IYouTube {
	return &Client{oauthConfig: oauthConfig, timeout: requestTimeout}
}

// ListPlaylistItems fetches up to maxResults snippet entries from the named
// playlist and normalizes them to {title, code, link}.
func (c *Client) ListPlaylistItems(ctx context.Context, creds *model.CredentialBundle, playlistID string, maxResults int64) (*dto.PlaylistItemsResult, error) {
	if creds == nil {
		return nil, fmt.Errorf("no credentials supplied")
	}

	token := &oauth2.Token{
		AccessToken:  creds.Token,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	}
	httpClient := c.oauthConfig.Client(ctx, token)
	httpClient.Timeout = c.timeout

	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	call := service.PlaylistItems.List([]string{"snippet"})
	// Empty parameters are dropped so the platform applies its own defaults.
	if playlistID != "" {
		call = call.PlaylistId(playlistID)
	}
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist items: %w", err)
	}
	if response == nil {
		// Some platform methods return no response object at all; surface it
		// as a structured no-data result rather than prose.
		return &dto.PlaylistItemsResult{NoData: true}, nil
	}

	items := make([]dto.PlaylistVideo, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		code := item.Snippet.ResourceId.VideoId
		items = append(items, dto.PlaylistVideo{
			Title: item.Snippet.Title,
			Code:  code,
			Link:  model.WatchURLPrefix + code,
		})
	}
	return &dto.PlaylistItemsResult{Items: items}, nil
}

// SummarizeAPIError reduces an upstream failure to a short description safe
// to return to the caller.
func SummarizeAPIError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("platform returned %d: %s", apiErr.Code, apiErr.Message)
	}
	return err.Error()
}
