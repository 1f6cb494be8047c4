package funds

import (
	"time"

	"sampark/models"
)

// SlipData is what a fund release slip prints.
type SlipData struct {
	Transaction models.FundTransaction
	PrintedAt   time.Time
	PrintedBy   string
}
