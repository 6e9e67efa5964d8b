package tournament

import "fmt"

// Tournament is a league or cup from the static catalog.
type Tournament struct {
	ID      int64
	Name    string
	Country string
	Season  string
	LogoURL string
}

func (t Tournament) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}

	return nil
}
