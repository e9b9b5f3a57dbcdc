package social

import "errors"

var (
	errUserNotFound   = errors.New("user not found")
	errMemberNotFound = errors.New("member not found")
	errSelfFollow     = errors.New("cannot follow yourself")
	errSelfBlock      = errors.New("cannot block yourself")
	errNotFollowing   = errors.New("not following")
	errNotBlocked     = errors.New("not blocked")
	errBlocked        = errors.New("blocked by this user")
)

// FeedEntry is one slice of the following feed: a followee's recent
// commented or liked bills.
type FeedEntry struct {
	UserName string     `json:"user_name"`
	Kind     string     `json:"kind"` // "commented" | "liked"
	Bills    []FeedBill `json:"bills"`
}

// FeedBill is the compact bill payload inside a feed entry.
type FeedBill struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
