package http

import (
	"github.com/gin-gonic/gin"

	"sppd-activity/internal/activity"
	"sppd-activity/pkg/response"
)

// ListEvents godoc
// @Summary     List annotated events
// @Description Returns calendar events in a date range with disposition, saved-at and reconciled attachments.
// @Tags        Events
// @Produce     json
// @Param       from  query string false "Start date (YYYY-MM-DD, today, besok, ...). Default: today"
// @Param       to    query string false "End date, inclusive. Default: end of the start day"
// @Param       limit query int    false "Max events (default 250)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// DetailEvent godoc
// @Summary     Get an annotated event
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) DetailEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.DetailEvent(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Event))
}

// UpdateDisposition godoc
// @Summary     Set the disposition of an event
// @Description Rewrites the event description with the new disposition and a fresh saved-at stamp. An empty disposition removes it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Event ID"
// @Param       body body updateDispositionReq true "Disposition"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/events/{id}/disposition [PUT]
func (h *handler) UpdateDisposition(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateDispositionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateDisposition(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateDisposition: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Event))
}

// RecordEvent godoc
// @Summary     Record an event in the activity matrix
// @Description Plans the next free cell of the event's date column and writes summary|location|time|disposition into it.
// @Tags        Matrix
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} recordResp
// @Failure     404 {object} response.Resp "Event, sheet or date column not found"
// @Failure     409 {object} response.Resp "Column full or slot taken"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/events/{id}/record [POST]
func (h *handler) RecordEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.RecordEvent(ctx, activity.RecordEventInput{EventID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordEvent: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newRecordResp(output))
}

// PlanAppend godoc
// @Summary     Plan a matrix append
// @Description Returns the cell the next entry for a date would go to. Nothing is reserved.
// @Tags        Matrix
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Date"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Sheet or date column not found"
// @Failure     409 {object} response.Resp "Column full"
// @Router      /api/v1/matrix/slots [POST]
func (h *handler) PlanAppend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanAppend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanAppend: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, planResp{Slot: newSlotResp(output.Slot)})
}

// CommitAppend godoc
// @Summary     Commit a planned matrix append
// @Tags        Matrix
// @Accept      json
// @Produce     json
// @Param       body body commitReq true "Slot and value"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Invalid slot or value"
// @Failure     409 {object} response.Resp "Slot taken"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/matrix/slots/commit [POST]
func (h *handler) CommitAppend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CommitAppend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CommitAppend: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, commitResp{Slot: newSlotResp(output.Slot), Value: output.Value})
}

// DayCells godoc
// @Summary     List the cells of a day
// @Tags        Matrix
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayCellsResp
// @Failure     404 {object} response.Resp "Sheet or date column not found"
// @Router      /api/v1/matrix/days/{date} [GET]
func (h *handler) DayCells(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDayCellsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DayCells(ctx, activity.DayCellsInput{Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.DayCells: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OK(c, h.newDayCellsResp(output))
}
