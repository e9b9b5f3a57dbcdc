package activity

import (
	"time"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/pkg/pagination"
	"github.com/billboard-app/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ensureBill(billID string) error {
	var count int64
	if err := s.db.Model(&models.BillModel{}).Where("id = ?", billID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errBillNotFound
	}
	return nil
}

// RecordView upserts the (user, bill) view row, refreshing ViewedAt on
// repeat views. The unique pair index resolves insert races: a conflicting
// insert falls through to the update path.
func (s *Service) RecordView(userID, billID string) error {
	if err := s.ensureBill(billID); err != nil {
		return err
	}

	now := time.Now()
	res := s.db.Model(&models.BillView{}).
		Where("user_id = ? AND bill_id = ?", userID, billID).
		Update("viewed_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	view := models.BillView{UserID: userID, BillID: billID, ViewedAt: now}
	if err := s.db.Create(&view).Error; err != nil {
		// Lost an insert race; the row exists, so refresh it. When the
		// update matches nothing the create failed for a real reason.
		res := s.db.Model(&models.BillView{}).
			Where("user_id = ? AND bill_id = ?", userID, billID).
			Update("viewed_at", now)
		if res.Error == nil && res.RowsAffected > 0 {
			return nil
		}
		return err
	}
	return nil
}

// ViewHistory lists the user's viewed bills, most recent first.
func (s *Service) ViewHistory(userID string, q pagination.Query) ([]ViewHistoryItem, response.Pagination, error) {
	tx := s.db.Model(&models.BillView{}).
		Select("bill_views.bill_id, bills.title, bill_views.viewed_at").
		Joins("JOIN bills ON bills.id = bill_views.bill_id").
		Where("bill_views.user_id = ?", userID).
		Order("bill_views.viewed_at DESC")

	var out []ViewHistoryItem
	pag, err := pagination.Paginate(tx, q, &out)
	return out, pag, err
}

// Like records that the user likes a bill. Idempotent: liking twice
// leaves a single row and succeeds.
func (s *Service) Like(userID, billID string) error {
	if err := s.ensureBill(billID); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.BillLike{}).
		Where("user_id = ? AND bill_id = ?", userID, billID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	like := models.BillLike{UserID: userID, BillID: billID}
	if err := s.db.Create(&like).Error; err != nil {
		// Lost an insert race; the row exists, which is what we wanted.
		var recheck int64
		if countErr := s.db.Model(&models.BillLike{}).
			Where("user_id = ? AND bill_id = ?", userID, billID).
			Count(&recheck).Error; countErr == nil && recheck > 0 {
			return nil
		}
		return err
	}
	return nil
}

// Unlike removes the like; absent like yields errNotLiked.
func (s *Service) Unlike(userID, billID string) error {
	if err := s.ensureBill(billID); err != nil {
		return err
	}
	res := s.db.Unscoped().
		Where("user_id = ? AND bill_id = ?", userID, billID).
		Delete(&models.BillLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotLiked
	}
	return nil
}

// Liked reports whether the user liked the bill.
func (s *Service) Liked(userID, billID string) (bool, error) {
	if err := s.ensureBill(billID); err != nil {
		return false, err
	}
	var count int64
	err := s.db.Model(&models.BillLike{}).
		Where("user_id = ? AND bill_id = ?", userID, billID).
		Count(&count).Error
	return count > 0, err
}

// StatsFor computes view and comment counts on demand.
func (s *Service) StatsFor(userID, subject string) (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&models.BillView{}).
		Where("user_id = ?", userID).
		Count(&stats.BillViews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CommentModel{}).
		Where("subject = ?", subject).
		Count(&stats.Comments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
