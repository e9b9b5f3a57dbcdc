package billtext

import "errors"

var (
	ErrBillNotFound   = errors.New("bill not found")
	ErrTextNotFound   = errors.New("text not available")
	ErrSummarizerDown = errors.New("summarizer unavailable")
)

type textResponse struct {
	Bill string `json:"bill"`
	Text string `json:"text"`
}

type summaryResponse struct {
	Bill       string `json:"bill"`
	Summary    string `json:"summary"`
	TokenCount int    `json:"token_count"`
}
