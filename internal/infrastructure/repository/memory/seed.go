package memory

import (
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// SeedTeams returns the default 20-team league with scalar ratings.
// Rosters start empty; the engine falls back to these scalars until a
// squad is generated for a team.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "liverpool", Name: "Liverpool", Offense: 82.9, Defense: 99.0},
		{ID: "chelsea", Name: "Chelsea", Offense: 99.0, Defense: 67.7},
		{ID: "arsenal", Name: "Arsenal", Offense: 77.6, Defense: 85.8},
		{ID: "nottingham-forest", Name: "Nottingham Forest", Offense: 56.2, Defense: 67.7},
		{ID: "manchester-city", Name: "Manchester City", Offense: 74.9, Defense: 56.0},
		{ID: "afc-bournemouth", Name: "AFC Bournemouth", Offense: 64.2, Defense: 61.3},
		{ID: "aston-villa", Name: "Aston Villa", Offense: 64.2, Defense: 51.5},
		{ID: "fulham", Name: "Fulham", Offense: 64.2, Defense: 58.5},
		{ID: "brighton", Name: "Brighton & Hove Albion", Offense: 69.6, Defense: 51.5},
		{ID: "tottenham-hotspur", Name: "Tottenham Hotspur", Offense: 96.3, Defense: 67.7},
		{ID: "brentford", Name: "Brentford", Offense: 85.6, Defense: 42.9},
		{ID: "newcastle-united", Name: "Newcastle United", Offense: 61.5, Defense: 61.3},
		{ID: "manchester-united", Name: "Manchester United", Offense: 56.2, Defense: 67.7},
		{ID: "west-ham-united", Name: "West Ham United", Offense: 56.2, Defense: 44.4},
		{ID: "crystal-palace", Name: "Crystal Palace", Offense: 45.5, Defense: 61.3},
		{ID: "everton", Name: "Everton", Offense: 37.5, Defense: 61.3},
		{ID: "luton-town", Name: "Luton Town", Offense: 32.1, Defense: 64.4},
		{ID: "ipswich-town", Name: "Ipswich Town", Offense: 40.1, Defense: 46.0},
		{ID: "wolverhampton-wanderers", Name: "Wolverhampton Wanderers", Offense: 37.5, Defense: 44.4},
		{ID: "southampton", Name: "Southampton", Offense: 26.8, Defense: 35.8},
	}
}
