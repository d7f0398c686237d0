package domain

import "context"

// Summary is the site-wide count snapshot.
type Summary struct {
	Albums    int `json:"albums" db:"albums"`
	Songs     int `json:"songs" db:"songs"`
	Playlists int `json:"playlists" db:"playlists"`
	Profiles  int `json:"profiles" db:"profiles"`
}

type StatsRepository interface {
	Summary(ctx context.Context) (*Summary, error)
}
