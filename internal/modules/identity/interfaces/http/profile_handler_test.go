package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dottify/dottify-backend/internal/gateway/middleware"
	"github.com/dottify/dottify-backend/internal/modules/identity/application"
	"github.com/dottify/dottify-backend/internal/modules/identity/domain"
	identityhttp "github.com/dottify/dottify-backend/internal/modules/identity/interfaces/http"
)

type stubProfileRepo struct {
	byID      map[uuid.UUID]*domain.Profile
	byAccount map[string]*domain.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: map[uuid.UUID]*domain.Profile{}, byAccount: map[string]*domain.Profile{}}
}

func (s *stubProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	if _, ok := s.byAccount[p.AccountID]; ok {
		return domain.ErrProfileAlreadyExists
	}
	s.byID[p.ID] = p
	s.byAccount[p.AccountID] = p
	return nil
}
func (s *stubProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}
func (s *stubProfileRepo) GetByAccountID(_ context.Context, accountID string) (*domain.Profile, error) {
	p, ok := s.byAccount[accountID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}
func (s *stubProfileRepo) UpdateDisplayName(_ context.Context, id uuid.UUID, name string) error {
	p, ok := s.byID[id]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.DisplayName = name
	return nil
}

type stubPlaylistLister struct {
	views []identityhttp.PlaylistView
	// lastViewer records what viewer the handler resolved.
	lastViewer *uuid.UUID
}

func (s *stubPlaylistLister) ProfilePlaylists(_ context.Context, _ uuid.UUID, viewer *uuid.UUID) ([]identityhttp.PlaylistView, error) {
	s.lastViewer = viewer
	return s.views, nil
}

func newProfileHandler() (*identityhttp.ProfileHandler, *stubProfileRepo, *stubPlaylistLister) {
	repo := newStubProfileRepo()
	lister := &stubPlaylistLister{views: []identityhttp.PlaylistView{}}
	h := identityhttp.NewProfileHandler(application.NewIdentityService(repo), lister)
	return h, repo, lister
}

func withSession(req *http.Request, sess *domain.Session) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeySession, sess)
	return req.WithContext(ctx)
}

func seedProfile(repo *stubProfileRepo, accountID, displayName string) *domain.Profile {
	p := &domain.Profile{ID: uuid.New(), AccountID: accountID, DisplayName: displayName}
	repo.byID[p.ID] = p
	repo.byAccount[accountID] = p
	return p
}

func TestProfileHandler_Create(t *testing.T) {
	h, _, _ := newProfileHandler()

	body := bytes.NewBufferString(`{"display_name":"Mira Vance"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/profiles", body), &domain.Session{AccountID: "acct-1"})
	w := httptest.NewRecorder()
	h.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp identityhttp.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mira Vance", resp.DisplayName)
}

func TestProfileHandler_CreateDuplicateAccount(t *testing.T) {
	h, repo, _ := newProfileHandler()
	seedProfile(repo, "acct-1", "Mira Vance")

	body := bytes.NewBufferString(`{"display_name":"Second Try"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/profiles", body), &domain.Session{AccountID: "acct-1"})
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProfileHandler_GetRedirectsToSluggedURL(t *testing.T) {
	h, repo, _ := newProfileHandler()
	p := seedProfile(repo, "acct-1", "Mira Vance")

	req := httptest.NewRequest(http.MethodGet, "/users/"+p.ID.String(), nil)
	req.SetPathValue("id", p.ID.String())
	w := httptest.NewRecorder()
	h.Get(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/"+p.ID.String()+"/mira-vance", w.Header().Get("Location"))
}

func TestProfileHandler_GetBySlugMismatchRedirects(t *testing.T) {
	h, repo, _ := newProfileHandler()
	p := seedProfile(repo, "acct-1", "Mira Vance")

	req := httptest.NewRequest(http.MethodGet, "/users/"+p.ID.String()+"/old-name", nil)
	req.SetPathValue("id", p.ID.String())
	req.SetPathValue("slug", "old-name")
	w := httptest.NewRecorder()
	h.GetBySlug(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/"+p.ID.String()+"/mira-vance", w.Header().Get("Location"))
}

func TestProfileHandler_GetBySlugServesProfileWithPlaylists(t *testing.T) {
	h, repo, lister := newProfileHandler()
	p := seedProfile(repo, "acct-1", "Mira Vance")
	lister.views = []identityhttp.PlaylistView{{ID: uuid.New(), Name: "Roadtrip", Visibility: 2}}

	req := httptest.NewRequest(http.MethodGet, "/users/"+p.ID.String()+"/mira-vance", nil)
	req.SetPathValue("id", p.ID.String())
	req.SetPathValue("slug", "mira-vance")
	w := httptest.NewRecorder()
	h.GetBySlug(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp identityhttp.UserPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mira Vance", resp.DisplayName)
	require.Len(t, resp.Playlists, 1)
	// Anonymous request: no viewer was passed down to the playlist filter.
	assert.Nil(t, lister.lastViewer)
}

func TestProfileHandler_GetBySlugPassesViewer(t *testing.T) {
	h, repo, lister := newProfileHandler()
	owner := seedProfile(repo, "acct-owner", "Mira Vance")
	viewer := seedProfile(repo, "acct-viewer", "Listener")

	req := httptest.NewRequest(http.MethodGet, "/users/"+owner.ID.String()+"/mira-vance", nil)
	req = withSession(req, &domain.Session{AccountID: viewer.AccountID})
	req.SetPathValue("id", owner.ID.String())
	req.SetPathValue("slug", "mira-vance")
	w := httptest.NewRecorder()
	h.GetBySlug(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, lister.lastViewer)
	assert.Equal(t, viewer.ID, *lister.lastViewer)
}

func TestProfileHandler_UpdateMe(t *testing.T) {
	h, repo, _ := newProfileHandler()
	seedProfile(repo, "acct-1", "Old Name")

	body := bytes.NewBufferString(`{"display_name":"New Name"}`)
	req := withSession(httptest.NewRequest(http.MethodPatch, "/profiles/me", body), &domain.Session{AccountID: "acct-1"})
	w := httptest.NewRecorder()
	h.UpdateMe(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp identityhttp.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New Name", resp.DisplayName)
}

func TestProfileHandler_GetUnknownUser(t *testing.T) {
	h, _, _ := newProfileHandler()

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
