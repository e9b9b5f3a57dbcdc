package activity

import (
	"errors"
	"time"
)

var (
	errBillNotFound = errors.New("bill not found")
	errNotLiked     = errors.New("not liked")
)

// ViewHistoryItem is one entry of the view history, newest first.
type ViewHistoryItem struct {
	BillID   string    `json:"bill"`
	Title    string    `json:"title"`
	ViewedAt time.Time `json:"viewed_at"`
}

// Stats is the on-demand activity aggregate for a user.
type Stats struct {
	BillViews int64 `json:"bill_views"`
	Comments  int64 `json:"comments"`
}
