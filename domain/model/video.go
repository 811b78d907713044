package model

// WatchURLPrefix is the externally resolvable watch link prefix; the full link
// for a record is always WatchURLPrefix + Code and is never stored.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// Video is a stored favorite music video. Code is the platform's unique
// identifier for the video and is unique within the store.
type Video struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Code  string `json:"code"`
}

// Link derives the watch URL from the stored code.
func (v Video) Link() string {
	return WatchURLPrefix + v.Code
}
