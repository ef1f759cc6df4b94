package transport

// TaskRequest is the body of create and replace requests. A missing title decodes to ""
// and is rejected by task validation; a missing isCompleted means false.
type TaskRequest struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}
