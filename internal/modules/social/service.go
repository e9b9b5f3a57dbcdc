package social

import (
	"errors"
	"fmt"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/modules/account"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) userByName(name string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Follow creates a follower→followee edge. Idempotent: re-following is a
// no-op. The followee is notified on first follow.
func (s *Service) Follow(follower *models.UserModel, followeeName string) error {
	followee, err := s.userByName(followeeName)
	if err != nil {
		return err
	}
	if followee.ID == follower.ID {
		return errSelfFollow
	}

	var existing models.FollowModel
	err = s.db.First(&existing,
		"follower_id = ? AND following_id = ?", follower.ID, followee.ID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	edge := models.FollowModel{FollowerID: follower.ID, FollowingID: followee.ID}
	if err := s.db.Create(&edge).Error; err != nil {
		return err
	}
	_ = account.Notify(s.db, followee.ID, fmt.Sprintf("%s started following you", follower.Name))
	return nil
}

// Unfollow removes the edge; absent edge yields errNotFollowing.
func (s *Service) Unfollow(follower *models.UserModel, followeeName string) error {
	followee, err := s.userByName(followeeName)
	if err != nil {
		return err
	}
	res := s.db.Unscoped().
		Where("follower_id = ? AND following_id = ?", follower.ID, followee.ID).
		Delete(&models.FollowModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFollowing
	}
	return nil
}

// IsFollowing reports whether the caller follows the named user.
func (s *Service) IsFollowing(follower *models.UserModel, followeeName string) (bool, error) {
	followee, err := s.userByName(followeeName)
	if err != nil {
		return false, err
	}
	var count int64
	err = s.db.Model(&models.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", follower.ID, followee.ID).
		Count(&count).Error
	return count > 0, err
}

// Following lists users the caller follows, in follow-creation order.
func (s *Service) Following(userID string) ([]models.UserModel, error) {
	var out []models.UserModel
	err := s.db.Model(&models.UserModel{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at ASC").
		Find(&out).Error
	return out, err
}

// Followers lists users following the caller.
func (s *Service) Followers(userID string) ([]models.UserModel, error) {
	var out []models.UserModel
	err := s.db.Model(&models.UserModel{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at ASC").
		Find(&out).Error
	return out, err
}

// Block adds a directional blocker→blocked edge and removes any follow
// edges between the pair. Duplicate blocks are a no-op.
func (s *Service) Block(blocker *models.UserModel, blockedName string) error {
	blocked, err := s.userByName(blockedName)
	if err != nil {
		return err
	}
	if blocked.ID == blocker.ID {
		return errSelfBlock
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.UserBlock
		err := tx.First(&existing,
			"blocker_id = ? AND blocked_id = ?", blocker.ID, blocked.ID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		edge := models.UserBlock{BlockerID: blocker.ID, BlockedID: blocked.ID}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where(
			"(follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)",
			blocker.ID, blocked.ID, blocked.ID, blocker.ID,
		).Delete(&models.FollowModel{}).Error
	})
}

// Unblock removes the block edge; absent edge yields errNotBlocked.
func (s *Service) Unblock(blocker *models.UserModel, blockedName string) error {
	blocked, err := s.userByName(blockedName)
	if err != nil {
		return err
	}
	res := s.db.Unscoped().
		Where("blocker_id = ? AND blocked_id = ?", blocker.ID, blocked.ID).
		Delete(&models.UserBlock{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotBlocked
	}
	return nil
}

// Profile returns the named user's public profile. A user who has blocked
// the viewer is invisible to them.
func (s *Service) Profile(viewerID, name string) (*models.UserModel, error) {
	user, err := s.userByName(name)
	if err != nil {
		return nil, err
	}
	if viewerID != "" {
		var count int64
		err := s.db.Model(&models.UserBlock{}).
			Where("blocker_id = ? AND blocked_id = ?", user.ID, viewerID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errBlocked
		}
	}
	return user, nil
}

// Feed builds the following feed for a user.
func (s *Service) Feed(userID string) ([]FeedEntry, error) {
	followees, err := s.Following(userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(followees))
	commented := make(map[string][]FeedBill, len(followees))
	liked := make(map[string][]FeedBill, len(followees))

	for _, followee := range followees {
		names = append(names, followee.Name)

		var commentedBills []FeedBill
		err := s.db.Model(&models.CommentModel{}).
			Select("bills.id, bills.title").
			Joins("JOIN bills ON bills.id = comments.bill_id").
			Where("comments.subject = ?", followee.Subject).
			Order("comments.created_at DESC").
			Scan(&commentedBills).Error
		if err != nil {
			return nil, err
		}
		commented[followee.Name] = commentedBills

		var likedBills []FeedBill
		err = s.db.Model(&models.BillLike{}).
			Select("bills.id, bills.title").
			Joins("JOIN bills ON bills.id = bill_likes.bill_id").
			Where("bill_likes.user_id = ?", followee.ID).
			Order("bill_likes.created_at DESC").
			Scan(&likedBills).Error
		if err != nil {
			return nil, err
		}
		liked[followee.Name] = likedBills
	}

	return BuildFeed(names, commented, liked), nil
}

// FollowMember records interest in a congressional member. Idempotent.
func (s *Service) FollowMember(userID, bioguideID string) error {
	member, err := s.memberByBioguide(bioguideID)
	if err != nil {
		return err
	}
	var existing models.FollowedRep
	err = s.db.First(&existing,
		"user_id = ? AND cosponsor_id = ?", userID, member.ID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	edge := models.FollowedRep{UserID: userID, CosponsorID: member.ID}
	return s.db.Create(&edge).Error
}

// UnfollowMember removes the member follow; absent yields errNotFollowing.
func (s *Service) UnfollowMember(userID, bioguideID string) error {
	member, err := s.memberByBioguide(bioguideID)
	if err != nil {
		return err
	}
	res := s.db.Unscoped().
		Where("user_id = ? AND cosponsor_id = ?", userID, member.ID).
		Delete(&models.FollowedRep{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFollowing
	}
	return nil
}

// FollowedBills lists bills cosponsored by members the user follows,
// newest action first.
func (s *Service) FollowedBills(userID string) ([]models.BillModel, error) {
	var out []models.BillModel
	err := s.db.Model(&models.BillModel{}).
		Distinct("bills.*").
		Joins("JOIN bill_cosponsors ON bill_cosponsors.bill_model_id = bills.id").
		Joins("JOIN followed_reps ON followed_reps.cosponsor_id = bill_cosponsors.cosponsor_id").
		Where("followed_reps.user_id = ?", userID).
		Order("bills.action_date DESC").
		Find(&out).Error
	return out, err
}

func (s *Service) memberByBioguide(bioguideID string) (*models.Cosponsor, error) {
	var member models.Cosponsor
	if err := s.db.First(&member, "bioguide_id = ?", bioguideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}
