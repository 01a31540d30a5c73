package timestamps

// CreateTimestampRequest bookmarks a moment on a video's timeline. When no
// explicit time is given, the caller's current playback position is used.
type CreateTimestampRequest struct {
	Time            *float64 `json:"time"`
	CurrentPosition float64  `json:"currentPosition"`
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Color           string   `json:"color"`
}

// UpdateTimestampRequest edits a bookmark. Absent fields are left unchanged.
type UpdateTimestampRequest struct {
	Time        *float64 `json:"time"`
	Label       *string  `json:"label"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Color       *string  `json:"color"`
}
