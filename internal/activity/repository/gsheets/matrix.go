package gsheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"sppd-activity/internal/activity/repository"
	pkgSheets "sppd-activity/pkg/gsheets"
)

func (r *implRepository) ReadHeader(ctx context.Context, opt repository.ReadHeaderOptions) ([]any, error) {
	rng := r.layout.HeaderRange(opt.Sheet)
	values, err := r.client.GetVector(ctx, r.spreadsheetID, rng, pkgSheets.Rows)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("ReadHeader"), rng, err)
		return nil, mapError(err, repository.ErrFailedToRead)
	}
	return values, nil
}

func (r *implRepository) ReadColumn(ctx context.Context, opt repository.ReadColumnOptions) ([]any, error) {
	rng := r.layout.ColumnRange(opt.Sheet, opt.Column)
	values, err := r.client.GetVector(ctx, r.spreadsheetID, rng, pkgSheets.Columns)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("ReadColumn"), rng, err)
		return nil, mapError(err, repository.ErrFailedToRead)
	}
	return values, nil
}

// ReadCell returns the cell as text; numbers are formatted without exponent.
func (r *implRepository) ReadCell(ctx context.Context, opt repository.CellOptions) (string, error) {
	rng := r.layout.CellRange(opt.Sheet, opt.Column, opt.Row)
	values, err := r.client.GetVector(ctx, r.spreadsheetID, rng, pkgSheets.Rows)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("ReadCell"), rng, err)
		return "", mapError(err, repository.ErrFailedToRead)
	}
	if len(values) == 0 || values[0] == nil {
		return "", nil
	}
	switch v := values[0].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func (r *implRepository) WriteCell(ctx context.Context, opt repository.WriteCellOptions) error {
	rng := r.layout.CellRange(opt.Sheet, opt.Column, opt.Row)
	if err := r.client.UpdateValue(ctx, r.spreadsheetID, rng, opt.Value); err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("WriteCell"), rng, err)
		return mapError(err, repository.ErrFailedToWrite)
	}
	r.l.Debugf(ctx, "%s: wrote %s", r.dsn("WriteCell"), rng)
	return nil
}

func mapError(err, fallback error) error {
	if errors.Is(err, pkgSheets.ErrSheetNotFound) {
		return repository.ErrSheetNotFound
	}
	return fmt.Errorf("%w: %v", fallback, err)
}
