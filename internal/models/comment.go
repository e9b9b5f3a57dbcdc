package models

// InteractionKind discriminates comment like/dislike records.
type InteractionKind string

const (
	InteractionLike    InteractionKind = "like"
	InteractionDislike InteractionKind = "dislike"
)

// CommentModel is a user comment on a bill. Author identity is recorded by
// identity-provider subject; UserName is denormalized for display and falls
// back to "Anonymous" for callers without a profile name.
type CommentModel struct {
	Base
	BillID        string   `json:"bill"           gorm:"type:char(36);index;not null"`
	Subject       string   `json:"subject"        gorm:"column:subject;type:varchar(255);index"`
	UserName      string   `json:"user_name"      gorm:"type:varchar(100)"`
	Text          string   `json:"text"           gorm:"type:text;not null"`
	ExpertiseTags []string `json:"expertise_tags" gorm:"type:longtext;serializer:json"`
	Likes         int      `json:"likes"          gorm:"default:0"`
	Dislikes      int      `json:"dislikes"       gorm:"default:0"`
}

func (CommentModel) TableName() string { return "comments" }

// CommentInteraction records one user's like or dislike of a comment,
// unique per (comment, subject) so the counters stay consistent.
type CommentInteraction struct {
	Base
	CommentID string          `gorm:"type:char(36);not null;uniqueIndex:idx_comment_interaction"`
	Subject   string          `gorm:"column:subject;type:varchar(255);not null;uniqueIndex:idx_comment_interaction"`
	Kind      InteractionKind `gorm:"type:varchar(10);not null"`
}

func (CommentInteraction) TableName() string { return "comment_interactions" }
