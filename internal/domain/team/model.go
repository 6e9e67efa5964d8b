package team

import "fmt"

// Team is a real football club from the static catalog.
type Team struct {
	ID      int64
	Name    string
	Country string
	City    string
	Stadium string
	LogoURL string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Country == "" {
		return fmt.Errorf("team country is required")
	}

	return nil
}
