package schedule

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NisithAkalanka/SportNest-sub001/internal/api"
	"github.com/NisithAkalanka/SportNest-sub001/internal/auth"
	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateSession godoc
// @Summary      Book a training session
// @Description  Validates the time interval, booking window and venue availability, then persists the session.
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SessionRequest  true  "Session payload"
// @Success      201      {object}  Session
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ConflictResponse
// @Failure      503      {object}  api.ErrorResponse
// @Router       /sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.CreateSession(c.Request.Context(), ownerID, auth.GetUserRole(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateSession godoc
// @Summary      Edit a training session
// @Description  Replaces all mutable fields, re-validated as if newly created. The session never conflicts with its own prior slot.
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sessionID  path      int             true  "Session ID"
// @Param        request    body      SessionRequest  true  "Session payload"
// @Success      200        {object}  Session
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ConflictResponse
// @Failure      503        {object}  api.ErrorResponse
// @Router       /sessions/{sessionID} [put]
func (h *Handler) UpdateSession(c *gin.Context) {
	callerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.UpdateSession(c.Request.Context(), id, callerID, auth.GetUserRole(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSession godoc
// @Summary      Delete a training session
// @Description  Unconditional removal; no window or conflict re-validation.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      503        {object}  api.ErrorResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	callerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), id, callerID, auth.GetUserRole(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Session deleted"})
}

// GetSession godoc
// @Summary      Fetch one session
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  Session
// @Failure      404        {object}  api.ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) GetSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	sess, err := h.service.GetSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// ListMySessions godoc
// @Summary      List my sessions
// @Description  Sessions created by the authenticated coach, newest first.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Session
// @Failure      503  {object}  api.ErrorResponse
// @Router       /sessions [get]
func (h *Handler) ListMySessions(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	sessions, err := h.service.ListSessionsForOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Calendar godoc
// @Summary      Calendar events
// @Description  Every stored session projected into display events with full start/end instants.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Event
// @Failure      503  {object}  api.ErrorResponse
// @Router       /calendar [get]
func (h *Handler) Calendar(c *gin.Context) {
	sessions, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Project(sessions))
}

// SessionReport godoc
// @Summary      Session report
// @Description  Sessions filtered by calendar month and/or venue for export.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        month  query     string  false  "Calendar month (YYYY-MM)"
// @Param        venue  query     string  false  "Venue name"
// @Success      200    {array}   Session
// @Failure      400    {object}  api.ErrorResponse
// @Failure      503    {object}  api.ErrorResponse
// @Router       /reports/sessions [get]
func (h *Handler) SessionReport(c *gin.Context) {
	query, ok := h.reportQuery(c)
	if !ok {
		return
	}

	sessions, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FilterSessions(sessions, query))
}

// SessionReportCSV godoc
// @Summary      Session report as CSV
// @Tags         reports
// @Security     BearerAuth
// @Produce      text/csv
// @Param        month  query  string  false  "Calendar month (YYYY-MM)"
// @Param        venue  query  string  false  "Venue name"
// @Success      200    {string}  string
// @Failure      400    {object}  api.ErrorResponse
// @Failure      503    {object}  api.ErrorResponse
// @Router       /reports/sessions.csv [get]
func (h *Handler) SessionReportCSV(c *gin.Context) {
	query, ok := h.reportQuery(c)
	if !ok {
		return
	}

	sessions, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="sessions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "title", "venue", "date", "start_time", "end_time"})
	for _, s := range FilterSessions(sessions, query) {
		_ = w.Write([]string{
			strconv.Itoa(s.ID),
			s.Title,
			s.Venue.String(),
			s.Date.Format("2006-01-02"),
			s.StartTime.String(),
			s.EndTime.String(),
		})
	}
	w.Flush()
}

func (h *Handler) reportQuery(c *gin.Context) (ReportQuery, bool) {
	var query ReportQuery

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := ParseMonth(monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return ReportQuery{}, false
		}
		query.Month = &month
	}

	if venueStr := c.Query("venue"); venueStr != "" {
		v, err := venue.Parse(venueStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return ReportQuery{}, false
		}
		query.Venue = &v
	}

	return query, true
}

// respondError maps domain rejections onto HTTP statuses. Every rejection
// carries enough detail for the UI to render an actionable message.
func respondError(c *gin.Context, err error) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, api.ConflictResponse{
			Error:       conflict.Error(),
			Conflicting: conflict.Conflicting,
		})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only modify your own sessions"})
	case errors.Is(err, ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Session store unavailable, try again"})
	case errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrInvalidTimeOfDay),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrBeyondHorizon),
		errors.Is(err, venue.ErrUnknownVenue):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unexpected error"})
	}
}
