package dto

import "my-videos/domain/model"

// VideoResponse is the wire form of a stored record. Link is derived from the
// code, never read from storage.
type VideoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Code  string `json:"code"`
	Link  string `json:"link"`
}

// ReqCreateVideo is the POST /videos/ body.
type ReqCreateVideo struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

// ReqUpdateVideo is the PUT /videos/:code body.
type ReqUpdateVideo struct {
	Title string `json:"title"`
}

// Res is the generic result body for mutating operations.
type Res struct {
	Result string `json:"result"`
}

func NewVideoResponse(v model.Video) VideoResponse {
	return VideoResponse{
		ID:    v.ID,
		Title: v.Title,
		Code:  v.Code,
		Link:  v.Link(),
	}
}

// NewVideoListResponse converts records preserving input order.
func NewVideoListResponse(videos []model.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, NewVideoResponse(v))
	}
	return out
}
