package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dottify/dottify-backend/internal/modules/engagement/domain"
)

// PgTargetVerifier checks target existence with an EXISTS probe per kind.
// The target reference is polymorphic so no foreign key can do this.
type PgTargetVerifier struct {
	db *sqlx.DB
}

func NewTargetVerifier(db *sqlx.DB) *PgTargetVerifier {
	return &PgTargetVerifier{db: db}
}

func (v *PgTargetVerifier) Exists(ctx context.Context, target domain.Target) (bool, error) {
	var table string
	switch target.Kind {
	case domain.TargetSong:
		table = "songs"
	case domain.TargetAlbum:
		table = "albums"
	case domain.TargetPlaylist:
		table = "playlists"
	default:
		return false, fmt.Errorf("unknown target kind %q", target.Kind)
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := v.db.GetContext(ctx, &exists, query, target.ID); err != nil {
		return false, err
	}
	return exists, nil
}
