package expense

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a normalized expense record. Amount is stored in cents and is
// always positive; direction is not tracked, only spending is.
type Expense struct {
	ID          uuid.UUID
	Amount      int64 // cents
	Description string
	Notes       string
	CategoryID  uuid.UUID
	Date        time.Time
	CreatedAt   time.Time
}
