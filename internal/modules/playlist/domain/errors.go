package domain

import "errors"

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrUnknownSong      = errors.New("unknown song in playlist")
)
