package comment

import "errors"

var (
	errCommentNotFound = errors.New("comment not found")
	errBillNotFound    = errors.New("bill not found")
	errNotAuthor       = errors.New("not the comment author")
)

type CreateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}
