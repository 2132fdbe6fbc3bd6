package models

// Message is a single role-tagged conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Messages         []Message `json:"messages"`
	RetrievedContext string    `json:"retrievedContext"`
}

// UsageSummary reports post-increment quota state to the client.
type UsageSummary struct {
	Count     int  `json:"count"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	IsMember  bool `json:"isMember"`
}

// ChatResponse is the successful POST /api/chat body.
type ChatResponse struct {
	Message string       `json:"message"`
	Usage   UsageSummary `json:"usage"`
}
