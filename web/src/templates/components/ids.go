// Package components holds the presentational pieces shared by the pages and
// by the htmx fragments the feature modules return.
package components

// Swap targets present on every page.
const (
	ModalID = "modal"
	PanelID = "reservation-panel"
)

// Target returns the htmx selector for an element id.
func Target(id string) string {
	return "#" + id
}
