package models

import "time"

// BillView records that a user viewed a bill. One row per (user, bill);
// repeat views refresh ViewedAt instead of inserting.
type BillView struct {
	Base
	UserID   string    `gorm:"type:char(36);not null;uniqueIndex:idx_bill_view_pair"`
	BillID   string    `gorm:"type:char(36);not null;uniqueIndex:idx_bill_view_pair"`
	ViewedAt time.Time `gorm:"index"`
}

func (BillView) TableName() string { return "bill_views" }

// BillLike records that a user liked a bill, unique per (user, bill).
// Repeat likes are treated as an idempotent upsert, same as BillView.
type BillLike struct {
	Base
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_bill_like_pair"`
	BillID string `gorm:"type:char(36);not null;uniqueIndex:idx_bill_like_pair"`
}

func (BillLike) TableName() string { return "bill_likes" }
