package domain

import "errors"

var (
	ErrAlbumNotFound  = errors.New("album not found")
	ErrSongNotFound   = errors.New("song not found")
	ErrDuplicateAlbum = errors.New("album with this title, artist and format already exists")
)
