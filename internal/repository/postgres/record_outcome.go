package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// RecordOutcome upserts the batch with the given status.
func (r *Repository) RecordOutcome(
	ctx context.Context,
	tag string,
	date time.Time,
	source model.FederationBatchSourceSystem,
	status model.FederationBatchStatus,
) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("record_outcome", err, start)
	}()

	row := newBatchInfoRow(tag, date, source, status)
	if err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "batch_tag"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("upsert federation batch %s status %s: %w", tag, status, err)
	}
	return nil
}
