package billtext

import (
	"context"
	"errors"
	"fmt"

	"github.com/billboard-app/core/internal/models"
	"github.com/billboard-app/core/internal/modules/processing/summary"
	"github.com/billboard-app/core/internal/pkg/congress"
	"github.com/billboard-app/core/internal/pkg/textnorm"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	congress *congress.Client
	engine   *summary.Engine
}

func NewService(db *gorm.DB, cg *congress.Client, engine *summary.Engine) *Service {
	return &Service{db: db, congress: cg, engine: engine}
}

func (s *Service) lookupBill(id string) (*models.BillModel, error) {
	var bill models.BillModel
	if err := s.db.First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// Text returns the normalized full text of a bill, fetching and caching it
// on first request.
func (s *Service) Text(ctx context.Context, billID string) (*models.BillModel, string, error) {
	bill, err := s.lookupBill(billID)
	if err != nil {
		return nil, "", err
	}
	if bill.OriginalText != nil && *bill.OriginalText != "" {
		return bill, *bill.OriginalText, nil
	}

	html, err := s.congress.FetchTextHTML(ctx, bill.Congress, bill.BillType, bill.BillNumber)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrTextNotFound, err)
	}
	text := textnorm.Normalize(html)
	if text == "" {
		return nil, "", ErrTextNotFound
	}

	if err := s.db.Model(bill).Update("original_text", text).Error; err != nil {
		return nil, "", err
	}
	return bill, text, nil
}

// Summarized returns the cached summary or runs the summarization pipeline.
// The cached path reports a zero token count since no tokens were spent.
func (s *Service) Summarized(ctx context.Context, billID string) (*models.BillModel, *summary.Result, error) {
	bill, text, err := s.Text(ctx, billID)
	if err != nil {
		return nil, nil, err
	}
	if bill.Summary != nil && *bill.Summary != "" {
		return bill, &summary.Result{Summary: *bill.Summary}, nil
	}

	result, err := s.engine.Summarize(ctx, text)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSummarizerDown, err)
	}
	if err := s.db.Model(bill).Update("summary", result.Summary).Error; err != nil {
		return nil, nil, err
	}
	return bill, result, nil
}

// Sources returns the latest published text version for a bill.
func (s *Service) Sources(ctx context.Context, billID string) (*congress.TextVersion, error) {
	bill, err := s.lookupBill(billID)
	if err != nil {
		return nil, err
	}
	src, err := s.congress.FetchTextSources(ctx, bill.Congress, bill.BillType, bill.BillNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTextNotFound, err)
	}
	return src, nil
}
