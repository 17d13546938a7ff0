package distribution

import (
	"context"
	"fmt"
)

// HourDirectory writes one package per hour between the oldest and latest
// record and the index document of the directory.
type HourDirectory[T HourMarked] struct {
	path   string
	writer Writer
}

func NewHourDirectory[T HourMarked](path string, writer Writer) *HourDirectory[T] {
	return &HourDirectory[T]{
		path:   path,
		writer: writer,
	}
}

// Write returns the number of hour packages written. Hours without records
// inside the range get empty packages.
func (d *HourDirectory[T]) Write(ctx context.Context, records []T) (int, error) {
	index := Index(records)
	if index.Oldest == nil {
		if err := d.writer.WriteIndex(ctx, d.path, index); err != nil {
			return 0, fmt.Errorf("write index of %s: %w", d.path, err)
		}
		return 0, nil
	}

	grouped := groupByHour(records)
	written := 0
	for hour := *index.Oldest; hour <= *index.Latest; hour++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		bucket := grouped[hour]
		if bucket == nil {
			bucket = []T{}
		}
		if err := d.writer.WritePackage(ctx, d.path, hour, bucket); err != nil {
			return written, fmt.Errorf("write package %s/%d: %w", d.path, hour, err)
		}
		written++
	}

	if err := d.writer.WriteIndex(ctx, d.path, index); err != nil {
		return written, fmt.Errorf("write index of %s: %w", d.path, err)
	}
	return written, nil
}
