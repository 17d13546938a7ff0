package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

// FindByStatus returns every batch in the given status, in no particular order.
func (r *Repository) FindByStatus(ctx context.Context, status model.FederationBatchStatus) ([]model.FederationBatchInfo, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_by_status", err, start)
	}()

	var rows []batchInfoRow
	if err = r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("select federation batches with status %s: %w", status, err)
	}

	infos := make([]model.FederationBatchInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, row.toModel())
	}
	return infos, nil
}
