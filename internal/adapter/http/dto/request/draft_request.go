package request

// UpdateDraftRequest merges field edits into a wizard draft. Fields not
// present in the map keep their values; a nil Features slice leaves the
// feature selection untouched, an empty one clears it.
type UpdateDraftRequest struct {
	Fields   map[string]string `json:"fields"`
	Features []string          `json:"features"`
}

type AddPhotoRequest struct {
	URL string `json:"url" binding:"required"`
}
