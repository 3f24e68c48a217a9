package amfi

// NAV is a single scheme entry from the AMFI daily NAV feed.
type NAV struct {
	SchemeCode string
	SchemeName string
	NAV        float64
	Date       string
}
