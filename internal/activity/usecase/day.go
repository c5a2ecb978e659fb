package usecase

import (
	"context"
	"strings"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/matrix"
)

// DayCells lists the populated cells of a date's column, top to bottom.
func (uc *implUseCase) DayCells(ctx context.Context, input activity.DayCellsInput) (activity.DayCellsOutput, error) {
	date := uc.dateMath.StartOfDay(input.Date)
	sheet := uc.sheetName(date)
	layout := uc.cfg.Layout

	header, err := uc.matrixRepo.ReadHeader(ctx, repository.ReadHeaderOptions{Sheet: sheet})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DayCells ReadHeader: %v", err)
		return activity.DayCellsOutput{}, uc.mapRepoError(sheet, err)
	}

	col, err := matrix.ResolveColumn(layout, header, date)
	if err != nil {
		return activity.DayCellsOutput{}, &matrix.SlotError{Sheet: sheet, Date: date, Err: err}
	}

	values, err := uc.matrixRepo.ReadColumn(ctx, repository.ReadColumnOptions{Sheet: sheet, Column: col})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DayCells ReadColumn: %v", err)
		return activity.DayCellsOutput{}, uc.mapRepoError(sheet, err)
	}

	out := activity.DayCellsOutput{
		Sheet:  sheet,
		Column: matrix.ColumnLetters(col),
		Cells:  []activity.DayCell{},
	}
	for i, v := range values {
		if i >= layout.Window() {
			break
		}
		raw, ok := v.(string)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		row := layout.FirstDataRow + i
		out.Cells = append(out.Cells, activity.DayCell{
			Row:    row,
			Cell:   matrix.CellName(col, row),
			Raw:    raw,
			Fields: matrix.DecodeCell(raw),
		})
	}

	if next, err := matrix.AllocateRow(layout, values); err == nil {
		out.Free = layout.Window() - next
	}
	return out, nil
}
