package models

// UserModel is a local profile backing an identity-provider account.
// Rows are created lazily on the first authenticated request.
type UserModel struct {
	Base
	Subject       string   `json:"-"              gorm:"column:subject;type:varchar(255);uniqueIndex;not null"`
	Name          string   `json:"name"           gorm:"type:varchar(100);uniqueIndex"`
	Email         string   `json:"email"          gorm:"type:varchar(255)"`
	Avatar        string   `json:"avatar"         gorm:"type:text"`
	ExpertiseTags []string `json:"expertise_tags" gorm:"type:longtext;serializer:json"`
}

func (UserModel) TableName() string { return "users" }

// FollowModel is a directed follower→following edge, unique per pair.
type FollowModel struct {
	Base
	FollowerID  string `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`
	FollowingID string `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`
}

func (FollowModel) TableName() string { return "follows" }

// UserBlock is a directed blocker→blocked edge. Blocking is not symmetric:
// filtering is always applied from the side that created the edge.
type UserBlock struct {
	Base
	BlockerID string `gorm:"type:char(36);not null;uniqueIndex:idx_block_pair"`
	BlockedID string `gorm:"type:char(36);not null;uniqueIndex:idx_block_pair"`
}

func (UserBlock) TableName() string { return "user_blocks" }

// FollowedRep links a user to a congressional member they follow.
type FollowedRep struct {
	Base
	UserID      string `gorm:"type:char(36);not null;uniqueIndex:idx_followed_rep_pair"`
	CosponsorID string `gorm:"type:char(36);not null;uniqueIndex:idx_followed_rep_pair"`
}

func (FollowedRep) TableName() string { return "followed_reps" }

// NotificationModel is a short user-facing message, deleted once read.
type NotificationModel struct {
	Base
	UserID  string `json:"-"       gorm:"type:char(36);index;not null"`
	Message string `json:"message" gorm:"type:varchar(500);not null"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}

func (NotificationModel) TableName() string { return "notifications" }
