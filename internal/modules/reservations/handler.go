package reservations

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/middleware"
	"github.com/nfrund/farays/internal/reservation"
)

const (
	sessionName = "farays-session"
	panelIDKey  = "panel_id"
)

// FieldRequest is the form posted by every picker control and text input.
type FieldRequest struct {
	Field string `form:"field" validate:"required"`
	Value string `form:"value"`
}

// Handler serves the reservation panel fragments.
type Handler struct {
	store *Store
	cal   reservation.Calendar
}

// NewHandler creates a new Handler.
func NewHandler(store *Store, cal reservation.Calendar) *Handler {
	return &Handler{store: store, cal: cal}
}

// Panel opens the visitor's panel and renders it.
func (h *Handler) Panel(c echo.Context) error {
	p, err := h.panel(c)
	if err != nil {
		return err
	}
	if err := p.Open(); err != nil {
		return err
	}
	return h.render(c, p)
}

// Close hides the panel. The draft is emptied once the closing transition is over.
func (h *Handler) Close(c echo.Context) error {
	p, ok := h.existing(c)
	if !ok {
		return c.NoContent(http.StatusOK)
	}
	if err := p.Close(); err != nil {
		return err
	}
	return h.render(c, p)
}

// Field applies one field change. Rejected values leave the panel as it was.
func (h *Handler) Field(c echo.Context) error {
	var req FieldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing field name").SetInternal(err)
	}

	p, err := h.panel(c)
	if err != nil {
		return err
	}
	field, err := reservation.ParseField(req.Field)
	if err == nil {
		err = p.Update(field, req.Value)
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Debug("Reservation input rejected",
			"field", req.Field, "error", err)
	}
	return h.render(c, p)
}

// Next advances the wizard when the current step is complete.
func (h *Handler) Next(c echo.Context) error {
	p, err := h.panel(c)
	if err != nil {
		return err
	}
	if !p.Advance() {
		middleware.FromContext(c.Request().Context()).Debug("Reservation step blocked",
			"step", p.Snapshot().Step.String())
	}
	return h.render(c, p)
}

// Back returns to the previous step, keeping what was entered.
func (h *Handler) Back(c echo.Context) error {
	p, err := h.panel(c)
	if err != nil {
		return err
	}
	p.Back()
	return h.render(c, p)
}

// Calendar renders the date picker for another month.
func (h *Handler) Calendar(c echo.Context) error {
	month := h.currentMonth(nil)
	if raw := c.QueryParam("month"); raw != "" {
		m, err := time.ParseInLocation(reservation.MonthLayout, raw, h.cal.Location())
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid month").SetInternal(err)
		}
		month = m
	}
	var selected *time.Time
	if p, ok := h.existing(c); ok {
		selected = p.Snapshot().Draft.Date
	}
	return c.Render(http.StatusOK, "", calendarView(h.cal, month, selected))
}

func (h *Handler) render(c echo.Context, p *reservation.Panel) error {
	v := p.Snapshot()
	return c.Render(http.StatusOK, "", panelView(v, h.cal, h.currentMonth(v.Draft.Date)))
}

// currentMonth is the month the picker opens on: the selected date's, or this one.
func (h *Handler) currentMonth(selected *time.Time) time.Time {
	d := h.cal.Today()
	if selected != nil {
		d = selected.In(h.cal.Location())
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, h.cal.Location())
}

// panel returns the visitor's panel, creating it and recording its id in the
// session when needed.
func (h *Handler) panel(c echo.Context) (*reservation.Panel, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Session unavailable").SetInternal(err)
	}
	current, _ := sess.Values[panelIDKey].(string)
	id, p := h.store.GetOrCreate(current)
	if id != current {
		sess.Values[panelIDKey] = id
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return nil, echo.NewHTTPError(http.StatusInternalServerError, "Could not save session").SetInternal(err)
		}
	}
	return p, nil
}

func (h *Handler) existing(c echo.Context) (*reservation.Panel, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil, false
	}
	id, _ := sess.Values[panelIDKey].(string)
	if id == "" {
		return nil, false
	}
	return h.store.Get(id)
}
