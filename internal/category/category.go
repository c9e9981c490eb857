package category

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Category represents a spending category an expense can be tagged with.
// Identity is the ID; name uniqueness is not enforced here.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	IsCustom  bool
	CreatedAt time.Time
}

// Palette is the fixed set of colors assigned to categories minted during
// an import. Picks are uniformly random.
var Palette = [...]string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16",
	"#22c55e", "#14b8a6", "#06b6d4", "#3b82f6",
	"#8b5cf6", "#a855f7", "#ec4899", "#f43f5e",
}

// RandomColor returns a random palette color.
func RandomColor() string {
	return Palette[rand.IntN(len(Palette))]
}
