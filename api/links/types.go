package links

// CreateLinkRequest creates a shareable link. A present endTime makes the
// link a highlight range; it must exceed startTime.
type CreateLinkRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartTime   float64  `json:"startTime"`
	EndTime     *float64 `json:"endTime"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"isPublic"`
}

// UpdateLinkRequest edits a link. Absent fields are left unchanged;
// clearEndTime turns a highlight range back into a point link.
type UpdateLinkRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	StartTime    *float64 `json:"startTime"`
	EndTime      *float64 `json:"endTime"`
	ClearEndTime bool     `json:"clearEndTime"`
	Tags         []string `json:"tags"`
	IsPublic     *bool    `json:"isPublic"`
}
