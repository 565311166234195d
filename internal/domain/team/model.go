package team

// Team is one playing side.
type Team struct {
	ID        string
	Name      string
	ShortName string
	Country   string
	LogoURL   string
}
