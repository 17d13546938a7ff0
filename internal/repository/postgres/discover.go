package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// Discover inserts the batch as UNPROCESSED unless the tag is already known.
// It reports whether this call inserted the row.
func (r *Repository) Discover(ctx context.Context, tag string, date time.Time, source model.FederationBatchSourceSystem) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("discover", err, start)
	}()

	row := newBatchInfoRow(tag, date, source, model.BatchUnprocessed)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "batch_tag"}},
		DoNothing: true,
	}).Create(&row)
	if err = result.Error; err != nil {
		return false, fmt.Errorf("insert federation batch %s: %w", tag, err)
	}
	return result.RowsAffected > 0, nil
}
