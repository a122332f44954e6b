package layouts

// CalculateTitle builds the document title from the page title and the
// restaurant name.
func CalculateTitle(title, siteName string) string {
	switch {
	case title == "":
		return siteName
	case siteName == "":
		return title
	default:
		return title + " | " + siteName
	}
}
