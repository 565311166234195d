package squad

// Squad names the players a team brings to a series.
type Squad struct {
	ID             string
	TeamID         string
	SeriesID       string
	Name           string
	PlayerIDs      []string
	CaptainID      string
	WicketKeeperID string
}
