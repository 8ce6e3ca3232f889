package domain

import "fmt"

const (
	headshotTemplate = "https://img.mlbstatic.com/mlb-photos/image/upload/d_people:generic_headshot.png/w_150,q_auto:best/v1/people/%d/headshot/67/current"
	teamLogoTemplate = "https://www.mlbstatic.com/team-logos/%d.svg"
)

// HeadshotURL returns the deterministic headshot location for a player id.
// The image is never fetched or parsed here; this is pure formatting.
func HeadshotURL(playerID int) string {
	return fmt.Sprintf(headshotTemplate, playerID)
}

// TeamLogoURL returns the logo location for a team id.
func TeamLogoURL(teamID int) string {
	return fmt.Sprintf(teamLogoTemplate, teamID)
}
