package usecase

import (
	"context"
	"strings"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/activity/repository"
	"sppd-activity/internal/matrix"
)

// PlanAppend resolves the sheet for the date, its date column and the next free
// row. The returned slot is not held; see CommitAppend.
func (uc *implUseCase) PlanAppend(ctx context.Context, input activity.PlanAppendInput) (activity.PlanAppendOutput, error) {
	date := uc.dateMath.StartOfDay(input.Date)
	sheet := uc.sheetName(date)

	header, err := uc.matrixRepo.ReadHeader(ctx, repository.ReadHeaderOptions{Sheet: sheet})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanAppend ReadHeader: %v", err)
		return activity.PlanAppendOutput{}, uc.mapRepoError(sheet, err)
	}

	readColumn := func(col int) ([]any, error) {
		values, err := uc.matrixRepo.ReadColumn(ctx, repository.ReadColumnOptions{Sheet: sheet, Column: col})
		if err != nil {
			return nil, uc.mapRepoError(sheet, err)
		}
		return values, nil
	}

	slot, err := matrix.Plan(uc.cfg.Layout, sheet, header, readColumn, date)
	if err != nil {
		uc.l.Warnf(ctx, "uc.PlanAppend Plan: %v", err)
		return activity.PlanAppendOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.PlanAppend: %s!%s for %s", slot.Sheet, slot.Cell, date.Format("2006-01-02"))
	return activity.PlanAppendOutput{Slot: slot}, nil
}

// CommitAppend writes value into a slot returned by PlanAppend. Concurrent
// writers planning from the same snapshot get the same slot; with
// VerifyBeforeCommit the second one fails with matrix.ErrSlotTaken.
func (uc *implUseCase) CommitAppend(ctx context.Context, input activity.CommitAppendInput) (activity.CommitAppendOutput, error) {
	slot := input.Slot
	if err := slot.Validate(uc.cfg.Layout); err != nil {
		return activity.CommitAppendOutput{}, err
	}
	if strings.TrimSpace(input.Value) == "" {
		return activity.CommitAppendOutput{}, activity.ErrEmptyValue
	}

	cell := repository.CellOptions{Sheet: slot.Sheet, Column: slot.Column, Row: slot.Row}

	if uc.cfg.VerifyBeforeCommit {
		current, err := uc.matrixRepo.ReadCell(ctx, cell)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CommitAppend ReadCell: %v", err)
			return activity.CommitAppendOutput{}, uc.mapRepoError(slot.Sheet, err)
		}
		if strings.TrimSpace(current) != "" {
			uc.l.Warnf(ctx, "uc.CommitAppend: %s!%s already holds %q", slot.Sheet, slot.Cell, current)
			return activity.CommitAppendOutput{}, &matrix.SlotError{Sheet: slot.Sheet, Date: slot.Date, Err: matrix.ErrSlotTaken}
		}
	}

	if err := uc.matrixRepo.WriteCell(ctx, repository.WriteCellOptions{CellOptions: cell, Value: input.Value}); err != nil {
		uc.l.Errorf(ctx, "uc.CommitAppend WriteCell: %v", err)
		return activity.CommitAppendOutput{}, uc.mapRepoError(slot.Sheet, err)
	}

	uc.l.Infof(ctx, "uc.CommitAppend: wrote %s!%s", slot.Sheet, slot.Cell)
	return activity.CommitAppendOutput{Slot: slot, Value: input.Value}, nil
}

// RecordEvent appends the matrix entry for a calendar event on its start date.
// A failed plan or commit is not retried.
func (uc *implUseCase) RecordEvent(ctx context.Context, input activity.RecordEventInput) (activity.RecordEventOutput, error) {
	ev, err := uc.eventRepo.GetEvent(ctx, input.EventID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordEvent GetEvent: %v", err)
		return activity.RecordEventOutput{}, uc.mapRepoError("", err)
	}
	if ev.Start.IsZero() {
		return activity.RecordEventOutput{}, activity.ErrEventUnscheduled
	}

	planned, err := uc.PlanAppend(ctx, activity.PlanAppendInput{Date: ev.Start})
	if err != nil {
		return activity.RecordEventOutput{}, err
	}

	ann := uc.parser.Parse(ev.Description)
	value := matrix.EncodeCell(matrix.CellFields{
		Summary:     ev.Summary,
		Location:    ev.Location,
		Time:        uc.dateMath.TimeLabel(ev.Start, ev.IsAllDay),
		Disposition: deref(ann.Disposition),
	})

	committed, err := uc.CommitAppend(ctx, activity.CommitAppendInput{Slot: planned.Slot, Value: value})
	if err != nil {
		return activity.RecordEventOutput{}, err
	}

	return activity.RecordEventOutput{
		EventID: ev.ID,
		Slot:    committed.Slot,
		Value:   committed.Value,
	}, nil
}
