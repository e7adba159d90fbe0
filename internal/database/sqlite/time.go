package sqlite

import (
	"time"

	"github.com/special-brownies/booster-pack/internal/domain"
)

func nowTimestamp() string {
	return domain.FormatTimestamp(time.Now())
}
