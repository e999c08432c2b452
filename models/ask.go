package models

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AnswerResult is the body of every /api/ask response. Exactly one of the
// fields is set.
type AnswerResult struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}
