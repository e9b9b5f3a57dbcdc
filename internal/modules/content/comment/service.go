package comment

import (
	"errors"
	"strings"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/pkg/auth0"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListByBill returns a bill's comments, newest first, excluding comments by
// authors the viewer has blocked. viewerID may be empty for anonymous reads.
func (s *Service) ListByBill(billID, viewerID string) ([]models.CommentModel, error) {
	var count int64
	if err := s.db.Model(&models.BillModel{}).Where("id = ?", billID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errBillNotFound
	}

	tx := s.db.Model(&models.CommentModel{}).
		Where("bill_id = ?", billID).
		Order("created_at DESC")

	if viewerID != "" {
		blocked := s.db.Model(&models.UserBlock{}).
			Select("users.subject").
			Joins("JOIN users ON users.id = user_blocks.blocked_id").
			Where("user_blocks.blocker_id = ?", viewerID)
		tx = tx.Where("subject NOT IN (?)", blocked)
	}

	var out []models.CommentModel
	err := tx.Find(&out).Error
	return out, err
}

// ResolveViewer maps an identity subject to a local user id. Unknown
// subjects return "" and get unfiltered lists.
func (s *Service) ResolveViewer(subject string) string {
	var user models.UserModel
	if err := s.db.Select("id").First(&user, "subject = ?", subject).Error; err != nil {
		return ""
	}
	return user.ID
}

// Create adds a comment to a bill. The display name prefers the profile
// name, then the identity's email, then "Anonymous". Expertise tags are
// copied from the author's profile at write time.
func (s *Service) Create(billID string, identity *auth0.Identity, text string) (*models.CommentModel, error) {
	var count int64
	if err := s.db.Model(&models.BillModel{}).Where("id = ?", billID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errBillNotFound
	}

	userName := "Anonymous"
	var tags []string
	var user models.UserModel
	err := s.db.First(&user, "subject = ?", identity.Subject).Error
	switch {
	case err == nil:
		if name := strings.TrimSpace(user.Name); name != "" {
			userName = name
		} else if user.Email != "" {
			userName = user.Email
		}
		tags = user.ExpertiseTags
	case errors.Is(err, gorm.ErrRecordNotFound):
		if identity.Email != "" {
			userName = identity.Email
		}
	default:
		return nil, err
	}

	cm := models.CommentModel{
		BillID:        billID,
		Subject:       identity.Subject,
		UserName:      userName,
		Text:          text,
		ExpertiseTags: tags,
	}
	if err := s.db.Create(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

// Update edits a comment's text. Only the author may edit.
func (s *Service) Update(id, subject, text string) (*models.CommentModel, error) {
	cm, err := s.getOwned(id, subject)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(cm).Update("text", text).Error; err != nil {
		return nil, err
	}
	cm.Text = text
	return cm, nil
}

// Delete removes a comment and its interactions. Only the author may delete.
func (s *Service) Delete(id, subject string) error {
	cm, err := s.getOwned(id, subject)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("comment_id = ?", cm.ID).Delete(&models.CommentInteraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(cm).Error
	})
}

func (s *Service) getOwned(id, subject string) (*models.CommentModel, error) {
	var cm models.CommentModel
	if err := s.db.First(&cm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCommentNotFound
		}
		return nil, err
	}
	if cm.Subject != subject {
		return nil, errNotAuthor
	}
	return &cm, nil
}

// Interact toggles a like or dislike. Repeating the same interaction
// removes it; the opposite interaction switches kind and adjusts both
// counters. Counter updates run in the same transaction as the
// interaction row so they cannot drift.
func (s *Service) Interact(id, subject string, kind models.InteractionKind) (*models.CommentModel, error) {
	var cm models.CommentModel
	if err := s.db.First(&cm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCommentNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentInteraction
		err := tx.First(&existing, "comment_id = ? AND subject = ?", cm.ID, subject).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record := models.CommentInteraction{CommentID: cm.ID, Subject: subject, Kind: kind}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			return adjustCounter(tx, cm.ID, kind, +1)
		case err != nil:
			return err
		case existing.Kind == kind:
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
			return adjustCounter(tx, cm.ID, kind, -1)
		default:
			if err := tx.Model(&existing).Update("kind", kind).Error; err != nil {
				return err
			}
			if err := adjustCounter(tx, cm.ID, existing.Kind, -1); err != nil {
				return err
			}
			return adjustCounter(tx, cm.ID, kind, +1)
		}
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&cm, "id = ?", cm.ID).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func adjustCounter(tx *gorm.DB, commentID string, kind models.InteractionKind, delta int) error {
	column := "likes"
	if kind == models.InteractionDislike {
		column = "dislikes"
	}
	return tx.Model(&models.CommentModel{}).
		Where("id = ?", commentID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
