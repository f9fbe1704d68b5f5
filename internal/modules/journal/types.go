package journal

// CreateEntryDTO is the POST /journal payload. Content may be empty: the
// editor creates the row first and fills it in as the user types.
type CreateEntryDTO struct {
	Content string `json:"content"`
}

// UpdateEntryDTO is the PATCH /journal/:id payload.
type UpdateEntryDTO struct {
	Content string `json:"content"`
}
