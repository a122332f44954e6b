package reservations

import (
	"fmt"
	"time"

	"github.com/nfrund/farays/internal/reservation"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const (
	calendarID = "reservation-calendar"
	footerID   = "reservation-footer"

	basePath = "/reservations"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// panelView renders the contents of the #reservation-panel slot. A closed
// panel renders nothing, which removes the overlay.
func panelView(v reservation.View, cal reservation.Calendar, month time.Time) g.Node {
	if !v.Open {
		return g.Group{}
	}
	return html.Div(html.Class("fixed inset-0 z-40 flex justify-end"),
		html.Role("dialog"), g.Attr("aria-modal", "true"), g.Attr("aria-labelledby", "reservation-title"),
		html.Button(html.Type("button"), html.Class("absolute inset-0 bg-black/50 cursor-default"),
			g.Attr("aria-label", "Close reservation panel"),
			panelAction("/close"),
		),
		html.Aside(html.Class("relative flex h-full w-full max-w-md flex-col bg-white shadow-xl"),
			html.Header(html.Class("flex items-center justify-between border-b border-stone-200 px-6 py-4"),
				html.H2(html.ID("reservation-title"), html.Class("font-serif text-2xl text-stone-900"), g.Text("Reserve a Table")),
				html.Button(html.Type("button"), g.Attr("aria-label", "Close"), panelAction("/close"), components.Icon("x", "w-6 h-6")),
			),
			progressBar(v.Step),
			html.Div(html.Class("flex-1 overflow-y-auto px-6 py-6"), stepBody(v, cal, month)),
			footer(v),
		),
	)
}

func progressBar(step reservation.Step) g.Node {
	bars := make([]g.Node, 0, reservation.StepCount)
	for i := 1; i <= reservation.StepCount; i++ {
		class := "h-1 flex-1 bg-stone-200"
		if i <= int(step) {
			class = "h-1 flex-1 bg-amber-700"
		}
		bars = append(bars, html.Div(html.Class(class)))
	}
	return html.Div(html.Class("flex gap-1 px-6 pt-4"), g.Group(bars))
}

func stepBody(v reservation.View, cal reservation.Calendar, month time.Time) g.Node {
	switch v.Step {
	case reservation.StepDate:
		return g.Group{
			stepTitle("Select a Date"),
			calendarView(cal, month, v.Draft.Date),
		}
	case reservation.StepTimeAndParty:
		return g.Group{
			stepTitle("Time & Party Size"),
			html.H4(html.Class("mt-4 text-sm uppercase tracking-wider text-stone-500"), g.Text("Time")),
			html.Div(html.Class("mt-2 grid grid-cols-3 gap-2"),
				g.Map(reservation.TimeSlots(), func(slot reservation.TimeSlot) g.Node {
					return choice(reservation.FieldTime, string(slot), slot.Label(), slot == v.Draft.Time)
				}),
			),
			html.H4(html.Class("mt-6 text-sm uppercase tracking-wider text-stone-500"), g.Text("Party Size")),
			html.Div(html.Class("mt-2 grid grid-cols-4 gap-2"),
				g.Map(reservation.PartySizes(), func(p reservation.PartySize) g.Node {
					return choice(reservation.FieldPartySize, p.String(), p.Label(), p == v.Draft.PartySize)
				}),
			),
		}
	case reservation.StepContact:
		return g.Group{
			stepTitle("Your Details"),
			textField(reservation.FieldName, "Name", "text", "name", v.Draft.Name),
			textField(reservation.FieldEmail, "Email", "email", "email", v.Draft.Email),
			textField(reservation.FieldPhone, "Phone", "tel", "tel", v.Draft.Phone),
		}
	case reservation.StepConfirmed:
		return confirmation(v.Confirmation)
	}
	return nil
}

func stepTitle(title string) g.Node {
	return html.H3(html.Class("font-serif text-xl text-stone-900"), g.Text(title))
}

// calendarView is the month grid of the date picker. Days the calendar does
// not allow are rendered disabled.
func calendarView(cal reservation.Calendar, month time.Time, selected *time.Time) g.Node {
	days := cal.Month(month.Year(), month.Month())
	today := cal.Today()
	thisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, cal.Location())
	prev := month.AddDate(0, -1, 0)
	next := month.AddDate(0, 1, 0)

	cells := make([]g.Node, 0, len(days)+6)
	if len(days) > 0 {
		for i := 0; i < int(days[0].Date.Weekday()); i++ {
			cells = append(cells, html.Span())
		}
	}
	for _, day := range days {
		cells = append(cells, dayCell(day, selected))
	}

	return html.Div(html.ID(calendarID), html.Class("mt-4"),
		html.Div(html.Class("flex items-center justify-between"),
			monthButton("Previous month", "chevron-left", prev, prev.Before(thisMonth)),
			html.Span(html.Class("font-semibold text-stone-900"), g.Text(month.Format("January 2006"))),
			monthButton("Next month", "chevron-right", next, false),
		),
		html.Div(html.Class("mt-4 grid grid-cols-7 gap-1 text-center text-xs text-stone-500"),
			g.Map(weekdays, func(d string) g.Node { return html.Span(g.Text(d)) }),
		),
		html.Div(html.Class("mt-1 grid grid-cols-7 gap-1 text-center"), g.Group(cells)),
	)
}

func monthButton(label, icon string, month time.Time, disabled bool) g.Node {
	return html.Button(html.Type("button"), html.Class("p-1 disabled:opacity-30"),
		g.Attr("aria-label", label),
		g.If(disabled, html.Disabled()),
		g.If(!disabled, g.Group{
			hx.Get(basePath + "/calendar?month=" + month.Format(reservation.MonthLayout)),
			hx.Target(components.Target(calendarID)),
			hx.Swap("outerHTML"),
		}),
		components.Icon(icon, "w-5 h-5"),
	)
}

func dayCell(day reservation.Day, selected *time.Time) g.Node {
	isSelected := selected != nil && selected.Equal(day.Date)
	class := "py-2 text-sm rounded hover:bg-amber-50"
	switch {
	case isSelected:
		class = "py-2 text-sm rounded bg-amber-700 text-white"
	case day.Disabled:
		class = "py-2 text-sm rounded text-stone-300 cursor-not-allowed"
	case day.Today:
		class = "py-2 text-sm rounded border border-amber-700"
	}
	return html.Button(html.Type("button"), html.Class(class),
		g.Attr("aria-label", reservation.FormatDate(day.Date)),
		g.If(isSelected, g.Attr("aria-pressed", "true")),
		g.If(day.Disabled, html.Disabled()),
		g.If(!day.Disabled, fieldPost(reservation.FieldDate, day.Key())),
		g.Textf("%d", day.Date.Day()),
	)
}

func choice(field reservation.Field, value, label string, selected bool) g.Node {
	class := "border border-stone-300 py-2 text-sm hover:border-amber-700"
	if selected {
		class = "border border-amber-700 bg-amber-700 py-2 text-sm text-white"
	}
	return html.Button(html.Type("button"), html.Class(class),
		g.If(selected, g.Attr("aria-pressed", "true")),
		fieldPost(field, value),
		g.Text(label),
	)
}

// textField posts on input and swaps only the footer, so the input keeps focus
// while the Next button's state follows what has been typed.
func textField(field reservation.Field, label, kind, autocomplete, value string) g.Node {
	id := "reservation-" + string(field)
	return html.Div(html.Class("mt-4"),
		html.Label(html.For(id), html.Class("block text-sm uppercase tracking-wider text-stone-500"), g.Text(label)),
		html.Input(html.ID(id), html.Type(kind), html.Name("value"), html.Value(value),
			html.AutoComplete(autocomplete), html.Required(),
			html.Class("mt-1 w-full border border-stone-300 px-3 py-2 focus:outline-none focus:border-amber-700"),
			hx.Post(basePath+"/field"),
			hx.Vals(fmt.Sprintf(`{"field":%q}`, string(field))),
			hx.Trigger("input changed delay:250ms"),
			hx.Target(components.Target(footerID)),
			hx.Select(components.Target(footerID)),
			hx.Swap("outerHTML"),
		),
	)
}

func confirmation(c reservation.Confirmation) g.Node {
	lines := c.Lines()
	return html.Div(html.Class("text-center py-12"),
		components.Icon("calendar", "mx-auto w-12 h-12 text-amber-700"),
		html.H3(html.Class("mt-6 font-serif text-2xl text-stone-900"), g.Text(lines[0])),
		g.Map(lines[1:], func(line string) g.Node {
			return html.P(html.Class("mt-2 text-stone-600"), g.Text(line))
		}),
		html.Button(html.Type("button"), html.Class("mt-8 bg-amber-700 px-6 py-3 text-white uppercase tracking-wider hover:bg-amber-800"),
			panelAction("/close"),
			g.Text("Close"),
		),
	)
}

func footer(v reservation.View) g.Node {
	if v.Step == reservation.StepConfirmed {
		return html.Footer(html.ID(footerID))
	}
	nextLabel := "Next"
	if v.Step == reservation.StepContact {
		nextLabel = "Confirm Reservation"
	}
	return html.Footer(html.ID(footerID), html.Class("border-t border-stone-200 px-6 py-4"),
		html.Div(html.Class("flex items-center justify-between text-sm text-stone-500"),
			html.Span(html.ID("reservation-date"), g.Text(v.DateCaption)),
			html.Span(html.ID("reservation-progress"), g.Text(v.Progress)),
		),
		html.Div(html.Class("mt-4 flex gap-3"),
			html.Button(html.Type("button"), html.Class("flex-1 border border-stone-300 py-3 uppercase tracking-wider text-sm disabled:opacity-40"),
				g.If(!v.CanRetreat, html.Disabled()),
				panelAction("/back"),
				g.Text("Back"),
			),
			html.Button(html.Type("button"), html.Class("flex-1 bg-amber-700 py-3 text-white uppercase tracking-wider text-sm disabled:opacity-40"),
				g.If(!v.CanAdvance, html.Disabled()),
				panelAction("/next"),
				g.Text(nextLabel),
			),
		),
	)
}

func panelAction(path string) g.Node {
	return g.Group{
		hx.Post(basePath + path),
		hx.Target(components.Target(components.PanelID)),
		hx.Swap("innerHTML"),
	}
}

func fieldPost(field reservation.Field, value string) g.Node {
	return g.Group{
		hx.Post(basePath + "/field"),
		hx.Vals(fmt.Sprintf(`{"field":%q,"value":%q}`, string(field), value)),
		hx.Target(components.Target(components.PanelID)),
		hx.Swap("innerHTML"),
	}
}
