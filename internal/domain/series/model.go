package series

// Series is a set of matches between the same sides inside a tournament.
type Series struct {
	ID           string
	TournamentID string
	Name         string
	Format       string
	MatchCount   int
}
