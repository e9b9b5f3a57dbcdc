package account

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/pkg/auth0"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db   *gorm.DB
	mgmt *auth0.Management
}

func NewService(db *gorm.DB, mgmt *auth0.Management) *Service {
	return &Service{db: db, mgmt: mgmt}
}

// GetOrCreate resolves the local profile for an identity, creating it on
// first contact. A missing or already-taken name claim gets a placeholder
// derived from the subject, which the user can change later; names carry a
// unique index, so the row must never be created with an empty name.
func (s *Service) GetOrCreate(identity *auth0.Identity) (*models.UserModel, error) {
	var user models.UserModel
	err := s.db.First(&user, "subject = ?", identity.Subject).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name, err := s.resolveNewName(identity)
	if err != nil {
		return nil, err
	}

	user = models.UserModel{
		Subject: identity.Subject,
		Name:    name,
		Email:   identity.Email,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Raced with a concurrent first request for the same subject.
		if fetchErr := s.db.First(&user, "subject = ?", identity.Subject).Error; fetchErr == nil {
			return &user, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) resolveNewName(identity *auth0.Identity) (string, error) {
	if name := strings.TrimSpace(identity.Name); name != "" {
		taken, err := s.nameTaken(name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
	}

	name := placeholderName(identity.Subject)
	taken, err := s.nameTaken(name)
	if err != nil {
		return "", err
	}
	if taken {
		name = "user-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	}
	return name, nil
}

func (s *Service) nameTaken(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserModel{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// placeholderName derives a stable fallback display name from the identity
// subject for profiles created without a usable name claim.
func placeholderName(subject string) string {
	sum := sha256.Sum256([]byte(subject))
	return "user-" + hex.EncodeToString(sum[:5])
}

// UpdateProfile changes name and/or email. A name held by another profile
// yields ErrNameTaken.
func (s *Service) UpdateProfile(subject string, dto *UpdateProfileDTO) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "subject = ?", subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(dto.Name); name != "" && name != user.Name {
		var count int64
		if err := s.db.Model(&models.UserModel{}).
			Where("name = ? AND id <> ?", name, user.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameTaken
		}
		updates["name"] = name
		user.Name = name
	}
	if email := strings.TrimSpace(dto.Email); email != "" && email != user.Email {
		updates["email"] = email
		user.Email = email
	}
	if len(updates) == 0 {
		return &user, nil
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	// Comments carry the denormalized author name.
	if name, ok := updates["name"]; ok {
		if err := s.db.Model(&models.CommentModel{}).
			Where("subject = ?", subject).
			Update("user_name", name).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// SetExpertiseTags replaces the user's tag list and propagates it onto
// their existing comments.
func (s *Service) SetExpertiseTags(subject string, tags []string) (*models.UserModel, error) {
	for _, tag := range tags {
		if !slices.Contains(ExpertiseTags, tag) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
	}

	var user models.UserModel
	if err := s.db.First(&user, "subject = ?", subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.ExpertiseTags = tags
	if err := s.db.Model(&user).Update("expertise_tags", user.ExpertiseTags).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CommentModel{}).
		Where("subject = ?", subject).
		Update("expertise_tags", user.ExpertiseTags).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Search finds users by name substring, capped at 10 results.
func (s *Service) Search(query string) ([]models.UserModel, error) {
	var users []models.UserModel
	err := s.db.
		Where("name LIKE ?", "%"+strings.TrimSpace(query)+"%").
		Order("name ASC").
		Limit(10).
		Find(&users).Error
	return users, err
}

// DeleteAccount removes the identity-provider account first, then the
// local rows. If the upstream delete fails, the local profile stays.
func (s *Service) DeleteAccount(ctx context.Context, subject string) error {
	var user models.UserModel
	if err := s.db.First(&user, "subject = ?", subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if s.mgmt != nil {
		if err := s.mgmt.DeleteUser(ctx, subject); err != nil {
			return fmt.Errorf("identity provider delete: %w", err)
		}
	}
	return s.deleteLocal(&user)
}

// DeleteBySubject removes only local state, used by the log-stream webhook
// after the identity provider already deleted the account.
func (s *Service) DeleteBySubject(subject string) (bool, error) {
	var user models.UserModel
	if err := s.db.First(&user, "subject = ?", subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.deleteLocal(&user); err != nil {
		return false, err
	}
	return true, nil
}

// deleteLocal purges the user's rows for real. Soft deletes would keep
// unique indexes (subject, follow pairs) occupied and block re-signup.
func (s *Service) deleteLocal(user *models.UserModel) error {
	return s.db.Transaction(func(outer *gorm.DB) error {
		tx := outer.Unscoped()
		for _, del := range []struct {
			model interface{}
			where string
		}{
			{&models.FollowModel{}, "follower_id = ? OR following_id = ?"},
			{&models.UserBlock{}, "blocker_id = ? OR blocked_id = ?"},
		} {
			if err := tx.Where(del.where, user.ID, user.ID).Delete(del.model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FollowedRep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.NotificationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.BillView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.BillLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject = ?", user.Subject).Delete(&models.CommentInteraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

// Notifications returns the user's unread notifications, newest first.
func (s *Service) Notifications(userID string) ([]models.NotificationModel, error) {
	var out []models.NotificationModel
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// MarkNotificationRead deletes the notification (read-once semantics).
func (s *Service) MarkNotificationRead(userID, notificationID string) error {
	res := s.db.Unscoped().
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.NotificationModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Notify inserts a notification for a user. Best effort; callers may
// ignore the error.
func Notify(db *gorm.DB, userID, message string) error {
	n := models.NotificationModel{UserID: userID, Message: message}
	return db.Create(&n).Error
}
