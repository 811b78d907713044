package dto

// PlaylistVideo is one entry from the external platform normalized to the
// same shape the store serves.
type PlaylistVideo struct {
	Title string `json:"title"`
	Code  string `json:"code"`
	Link  string `json:"link"`
}

// PlaylistItemsResult is the tagged result of a playlist listing. NoData marks
// the platform's documented "no response object" case; an empty Items slice
// means the playlist simply had no entries.
type PlaylistItemsResult struct {
	Items  []PlaylistVideo `json:"items"`
	NoData bool            `json:"noData,omitempty"`
}

// ResImport reports a bulk import run.
type ResImport struct {
	Result   string `json:"result"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
