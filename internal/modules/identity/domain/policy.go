package domain

import (
	"github.com/google/uuid"

	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

// Action enumerates everything the policy can be asked about.
type Action string

const (
	ActionViewAlbum     Action = "view_album"
	ActionViewSong      Action = "view_song"
	ActionViewPlaylist  Action = "view_playlist"
	ActionSearchAlbums  Action = "search_albums"
	ActionCreateAlbum   Action = "create_album"
	ActionEditAlbum     Action = "edit_album"
	ActionDeleteAlbum   Action = "delete_album"
	ActionCreateSong    Action = "create_song"
	ActionEditSong      Action = "edit_song"
	ActionDeleteSong    Action = "delete_song"
	ActionSubmitSupport Action = "submit_support"
)

// Playlist visibility levels as stored (mirrored here so the policy does not
// depend on the playlist module).
const (
	PlaylistHidden   = 0
	PlaylistUnlisted = 1
	PlaylistPublic   = 2
)

// Target carries the resource facts the policy needs. Actions that are not
// resource-specific take a nil Target.
type Target interface{ isTarget() }

// AlbumTarget describes an album (or, for song actions, the song's album).
// For song creation it is the album the song is being attached to.
type AlbumTarget struct {
	OwnerProfileID *uuid.UUID
}

func (AlbumTarget) isTarget() {}

// PlaylistTarget describes a playlist for view decisions.
type PlaylistTarget struct {
	OwnerProfileID uuid.UUID
	Visibility     int
}

func (PlaylistTarget) isTarget() {}

// Decide is the single authorization decision function. It returns nil to
// allow, shared.ErrAuthenticationRequired when the action needs a session and
// none exists, or shared.ErrForbidden when the session's role or ownership is
// insufficient. It never touches storage: callers pass the existing resource
// state, not the submitted payload.
func Decide(role Role, profile *Profile, action Action, target Target) error {
	switch action {
	case ActionViewAlbum, ActionViewSong:
		return nil

	case ActionViewPlaylist:
		pl, ok := target.(PlaylistTarget)
		if !ok {
			return shared.ErrForbidden
		}
		if pl.Visibility == PlaylistPublic || pl.Visibility == PlaylistUnlisted {
			return nil
		}
		// Hidden: owner only. Everyone else, anonymous included, is Forbidden.
		if profile != nil && profile.ID == pl.OwnerProfileID {
			return nil
		}
		return shared.ErrForbidden

	case ActionSearchAlbums, ActionSubmitSupport:
		if role == RoleAnonymous {
			return shared.ErrAuthenticationRequired
		}
		return nil

	case ActionCreateAlbum:
		if role == RoleAnonymous {
			return shared.ErrAuthenticationRequired
		}
		if role == RoleArtist || role == RoleAdministrator {
			return nil
		}
		return shared.ErrForbidden

	case ActionEditAlbum, ActionDeleteAlbum, ActionCreateSong, ActionEditSong, ActionDeleteSong:
		if role == RoleAnonymous {
			return shared.ErrAuthenticationRequired
		}
		if role == RoleAdministrator {
			return nil
		}
		if role != RoleArtist {
			return shared.ErrForbidden
		}
		album, ok := target.(AlbumTarget)
		if !ok || !ownsAlbum(profile, album) {
			return shared.ErrForbidden
		}
		return nil
	}

	return shared.ErrForbidden
}

// ownsAlbum checks the explicit owning reference recorded at album creation.
func ownsAlbum(profile *Profile, album AlbumTarget) bool {
	return profile != nil && album.OwnerProfileID != nil && *album.OwnerProfileID == profile.ID
}
