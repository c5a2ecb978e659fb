package http

import (
	"strings"
	"time"

	"sppd-activity/internal/activity"
	"sppd-activity/internal/matrix"
	"sppd-activity/internal/model"
	"sppd-activity/pkg/response"
)

const maxListLimit = 2500

// --- Request DTOs ---

type listReq struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit int    `form:"limit"`

	from time.Time
	to   time.Time
}

func (r listReq) validate() error {
	if r.Limit < 0 || r.Limit > maxListLimit {
		return errInvalidLimit
	}
	return nil
}

func (r listReq) toInput() activity.ListEventsInput {
	return activity.ListEventsInput{From: r.from, To: r.to, Limit: r.Limit}
}

// ---

type updateDispositionReq struct {
	ID          string `json:"-"` // populated from URI param
	Disposition string `json:"disposition" binding:"max=500"`
}

func (r updateDispositionReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateDispositionReq) toInput() activity.UpdateDispositionInput {
	return activity.UpdateDispositionInput{
		EventID:     r.ID,
		Disposition: strings.TrimSpace(r.Disposition),
	}
}

// ---

type planReq struct {
	Date string `json:"date" binding:"required"`

	date time.Time
}

func (r planReq) toInput() activity.PlanAppendInput {
	return activity.PlanAppendInput{Date: r.date}
}

// ---

type slotReq struct {
	Token  string `json:"token"  binding:"required"`
	Sheet  string `json:"sheet"  binding:"required"`
	Date   string `json:"date"`
	Column int    `json:"column" binding:"required"`
	Row    int    `json:"row"    binding:"required"`
}

type commitReq struct {
	Slot  slotReq `json:"slot"  binding:"required"`
	Value string  `json:"value" binding:"required"`

	date time.Time
}

func (r commitReq) toInput() activity.CommitAppendInput {
	return activity.CommitAppendInput{
		Slot: matrix.ReservedSlot{
			Token:  r.Slot.Token,
			Sheet:  r.Slot.Sheet,
			Date:   r.date,
			Column: r.Slot.Column,
			Row:    r.Slot.Row,
			Cell:   matrix.CellName(r.Slot.Column, r.Slot.Row),
		},
		Value: r.Value,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string             `json:"id"`
	Summary     string             `json:"summary"`
	Location    string             `json:"location"`
	Start       response.DateTime  `json:"start"`
	End         response.DateTime  `json:"end"`
	IsAllDay    bool               `json:"is_all_day"`
	HtmlLink    string             `json:"html_link,omitempty"`
	Disposition *string            `json:"disposition"`
	SavedAtText *string            `json:"saved_at_text"`
	ActivityID  *string            `json:"activity_id"`
	Body        string             `json:"body"`
	Description string             `json:"description"`
	Attachments []model.Attachment `json:"attachments"`
}

func newEventResp(ev activity.AnnotatedEvent) eventResp {
	attachments := ev.Event.Attachments
	if attachments == nil {
		attachments = []model.Attachment{}
	}
	return eventResp{
		ID:          ev.Event.ID,
		Summary:     ev.Event.Summary,
		Location:    ev.Event.Location,
		Start:       response.DateTime(ev.Event.Start),
		End:         response.DateTime(ev.Event.End),
		IsAllDay:    ev.Event.IsAllDay,
		HtmlLink:    ev.Event.HtmlLink,
		Disposition: ev.Disposition,
		SavedAtText: ev.SavedAtText,
		ActivityID:  ev.ActivityID,
		Body:        ev.Body,
		Description: ev.Event.Description,
		Attachments: attachments,
	}
}

type listResp struct {
	Events []eventResp   `json:"events"`
	Count  int           `json:"count"`
	From   response.Date `json:"from"`
	To     response.Date `json:"to"`
}

func (h *handler) newListResp(out activity.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{
		Events: events,
		Count:  len(events),
		From:   response.Date(out.From),
		To:     response.Date(out.To),
	}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(ev activity.AnnotatedEvent) detailResp {
	return detailResp{Event: newEventResp(ev)}
}

type slotResp struct {
	Token         string            `json:"token"`
	Sheet         string            `json:"sheet"`
	Date          response.Date     `json:"date"`
	Column        int               `json:"column"`
	ColumnLetters string            `json:"column_letters"`
	Row           int               `json:"row"`
	Cell          string            `json:"cell"`
	PlannedAt     response.DateTime `json:"planned_at"`
}

func newSlotResp(s matrix.ReservedSlot) slotResp {
	return slotResp{
		Token:         s.Token,
		Sheet:         s.Sheet,
		Date:          response.Date(s.Date),
		Column:        s.Column,
		ColumnLetters: matrix.ColumnLetters(s.Column),
		Row:           s.Row,
		Cell:          s.Cell,
		PlannedAt:     response.DateTime(s.PlannedAt),
	}
}

type planResp struct {
	Slot slotResp `json:"slot"`
}

type commitResp struct {
	Slot  slotResp `json:"slot"`
	Value string   `json:"value"`
}

type recordResp struct {
	EventID string   `json:"event_id"`
	Slot    slotResp `json:"slot"`
	Value   string   `json:"value"`
}

func (h *handler) newRecordResp(out activity.RecordEventOutput) recordResp {
	return recordResp{EventID: out.EventID, Slot: newSlotResp(out.Slot), Value: out.Value}
}

type dayCellResp struct {
	Row         int    `json:"row"`
	Cell        string `json:"cell"`
	Raw         string `json:"raw"`
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Time        string `json:"time"`
	Disposition string `json:"disposition"`
}

type dayCellsResp struct {
	Sheet  string        `json:"sheet"`
	Column string        `json:"column"`
	Cells  []dayCellResp `json:"cells"`
	Free   int           `json:"free"`
}

func (h *handler) newDayCellsResp(out activity.DayCellsOutput) dayCellsResp {
	cells := make([]dayCellResp, len(out.Cells))
	for i, c := range out.Cells {
		cells[i] = dayCellResp{
			Row:         c.Row,
			Cell:        c.Cell,
			Raw:         c.Raw,
			Summary:     c.Fields.Summary,
			Location:    c.Fields.Location,
			Time:        c.Fields.Time,
			Disposition: c.Fields.Disposition,
		}
	}
	return dayCellsResp{Sheet: out.Sheet, Column: out.Column, Cells: cells, Free: out.Free}
}
