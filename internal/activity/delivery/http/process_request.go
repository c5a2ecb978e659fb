package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate accepts YYYY-MM-DD or a relative day word in the office timezone.
func (h *handler) parseDate(s string) (time.Time, error) {
	t, err := h.dateMath.ParseDate(s, time.Now())
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// processListReq binds the list query. from defaults to today; to is optional.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	from := req.From
	if from == "" {
		from = "today"
	}
	var err error
	if req.from, err = h.parseDate(from); err != nil {
		return req, err
	}
	if req.To != "" {
		if req.to, err = h.parseDate(req.To); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}

func (h *handler) processUpdateDispositionReq(c *gin.Context) (updateDispositionReq, error) {
	var req updateDispositionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	var err error
	req.date, err = h.parseDate(req.Date)
	return req, err
}

func (h *handler) processCommitReq(c *gin.Context) (commitReq, error) {
	var req commitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Slot.Date != "" {
		var err error
		if req.date, err = h.parseDate(req.Slot.Date); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (h *handler) processDayCellsReq(c *gin.Context) (time.Time, error) {
	return h.parseDate(c.Param("date"))
}
