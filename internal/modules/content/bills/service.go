package bills

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/pkg/congress"
	"github.com/billboard-app/core/internal/pkg/recommend"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	congress *congress.Client
}

func NewService(db *gorm.DB, cg *congress.Client) *Service {
	return &Service{db: db, congress: cg}
}

// Trending returns the latest bills by action date, optionally filtered by
// category keywords matched against the title. Categories form a union: a
// bill matching any one of them qualifies.
func (s *Service) Trending(categories []string) ([]models.BillModel, error) {
	tx := s.db.Model(&models.BillModel{})
	if patterns := likePatterns(categories); len(patterns) > 0 {
		conds := s.db
		for _, p := range patterns {
			conds = conds.Or("title LIKE ?", p)
		}
		tx = tx.Where(conds)
	}
	var out []models.BillModel
	err := tx.Order("action_date DESC").Limit(trendingLimit).Find(&out).Error
	return out, err
}

// likePatterns turns search terms into LIKE patterns, dropping blanks.
func likePatterns(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, "%"+t+"%")
	}
	return out
}

// Recommended picks bills whose titles match keywords sampled from the
// user's view history. Users without history, or keyword draws with no
// matches, fall back to the newest bills.
func (s *Service) Recommended(userID string) ([]models.BillModel, error) {
	var titles []string
	err := s.db.Model(&models.BillView{}).
		Select("bills.title").
		Joins("JOIN bills ON bills.id = bill_views.bill_id").
		Where("bill_views.user_id = ?", userID).
		Order("bill_views.viewed_at DESC").
		Limit(50).
		Scan(&titles).Error
	if err != nil {
		return nil, err
	}

	keywords := recommend.Sample(recommend.Keywords(titles), keywordSamples)
	if len(keywords) > 0 {
		tx := s.db.Model(&models.BillModel{})
		conds := s.db
		for _, kw := range keywords {
			conds = conds.Or("title LIKE ?", "%"+kw+"%")
		}
		var out []models.BillModel
		if err := tx.Where(conds).Order("action_date DESC").Limit(recommendedLimit).Find(&out).Error; err != nil {
			return nil, err
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	var out []models.BillModel
	err = s.db.Order("action_date DESC").Limit(recommendedLimit).Find(&out).Error
	return out, err
}

// Detail loads a bill with its cosponsors.
func (s *Service) Detail(id string) (*models.BillModel, error) {
	var bill models.BillModel
	if err := s.db.Preload("Cosponsors").First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// Member loads a congressional member and the stored bills they cosponsor.
func (s *Service) Member(bioguideID string) (*models.Cosponsor, []models.BillModel, error) {
	var member models.Cosponsor
	if err := s.db.First(&member, "bioguide_id = ?", bioguideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMemberNotFound
		}
		return nil, nil, err
	}

	var sponsored []models.BillModel
	err := s.db.Model(&models.BillModel{}).
		Joins("JOIN bill_cosponsors ON bill_cosponsors.bill_model_id = bills.id").
		Where("bill_cosponsors.cosponsor_id = ?", member.ID).
		Order("bills.action_date DESC").
		Find(&sponsored).Error
	if err != nil {
		return nil, nil, err
	}
	return &member, sponsored, nil
}

// Refresh pulls the latest bills from congress.gov and upserts them by
// (congress, bill_type, bill_number), then syncs cosponsors for new rows.
func (s *Service) Refresh(ctx context.Context) error {
	infos, err := s.congress.FetchRecentBills(ctx, refreshBatch)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.upsertBill(ctx, info); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) upsertBill(ctx context.Context, info congress.BillInfo) error {
	actionDate, _ := time.Parse("2006-01-02", info.LatestAction.ActionDate)
	billType := strings.ToLower(info.Type)

	var bill models.BillModel
	err := s.db.First(&bill,
		"congress = ? AND bill_type = ? AND bill_number = ?",
		info.Congress, billType, info.Number).Error
	switch {
	case err == nil:
		return s.db.Model(&bill).Updates(map[string]interface{}{
			"action":      info.LatestAction.Text,
			"action_date": actionDate,
			"title":       info.Title,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		bill = models.BillModel{
			Title:      info.Title,
			Action:     info.LatestAction.Text,
			ActionDate: actionDate,
			Congress:   info.Congress,
			BillType:   billType,
			BillNumber: info.Number,
			URL:        info.URL,
		}
		if err := s.db.Create(&bill).Error; err != nil {
			return err
		}
		return s.syncCosponsors(ctx, &bill)
	default:
		return err
	}
}

// syncCosponsors fetches and links cosponsors for a bill. Member fetch
// failures skip the bill's cosponsor sync rather than failing the refresh.
func (s *Service) syncCosponsors(ctx context.Context, bill *models.BillModel) error {
	infos, err := s.congress.FetchCosponsors(ctx, bill.Congress, bill.BillType, bill.BillNumber)
	if err != nil {
		return nil
	}

	members := make([]models.Cosponsor, 0, len(infos))
	for _, info := range infos {
		var member models.Cosponsor
		err := s.db.First(&member, "bioguide_id = ?", info.BioguideID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sponsorshipDate, _ := time.Parse("2006-01-02", info.SponsorshipDate)
			member = models.Cosponsor{
				BioguideID:          info.BioguideID,
				FirstName:           info.FirstName,
				MiddleName:          info.MiddleName,
				LastName:            info.LastName,
				FullName:            info.FullName,
				Party:               info.Party,
				State:               info.State,
				District:            info.District,
				IsOriginalCosponsor: info.IsOriginalCosponsor,
				SponsorshipDate:     sponsorshipDate,
				URL:                 info.URL,
				ImageURL:            info.ImageURL,
			}
			if err := s.db.Create(&member).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		members = append(members, member)
	}
	if len(members) == 0 {
		return nil
	}
	return s.db.Model(bill).Association("Cosponsors").Replace(members)
}
