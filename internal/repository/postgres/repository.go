// Package postgres tracks federation batches in Postgres. Every statement is a
// single conflict-tolerant query; the primary key on batch_tag is the only
// concurrency control.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const pingTimeout = 5 * time.Second

type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("postgres metrics is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve postgres sql db handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Repository{db: db, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type batchInfoRow struct {
	BatchTag     string    `gorm:"column:batch_tag;primaryKey;size:20"`
	Date         time.Time `gorm:"column:date;type:date;not null"`
	Status       string    `gorm:"column:status;size:20;not null"`
	SourceSystem string    `gorm:"column:source_system;size:20;not null"`
}

func (batchInfoRow) TableName() string {
	return "federation_batch_info"
}

func newBatchInfoRow(tag string, date time.Time, source model.FederationBatchSourceSystem, status model.FederationBatchStatus) batchInfoRow {
	return batchInfoRow{
		BatchTag:     tag,
		Date:         model.Day(date),
		Status:       string(status),
		SourceSystem: string(source),
	}
}

func (row batchInfoRow) toModel() model.FederationBatchInfo {
	return model.FederationBatchInfo{
		BatchTag:     row.BatchTag,
		Date:         model.Day(row.Date),
		Status:       model.FederationBatchStatus(row.Status),
		SourceSystem: model.FederationBatchSourceSystem(row.SourceSystem),
	}
}
