package bills

import "errors"

var ErrBillNotFound = errors.New("bill not found")
var ErrMemberNotFound = errors.New("member not found")

const (
	trendingLimit    = 10
	recommendedLimit = 5
	keywordSamples   = 3
	refreshBatch     = 50
)
