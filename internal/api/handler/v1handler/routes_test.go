package v1handler_test

import (
	"bytes"
	"context"
	"linkify/internal/api/handler/v1handler"
	"linkify/internal/pages"
	mockpages "linkify/internal/pages/mock"
	"linkify/pkg/assets"
	assetsmemory "linkify/pkg/assets/memory"
	"linkify/pkg/domain"
	"linkify/pkg/serrors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const owner = domain.Owner("owner-1")

type routesEnv struct {
	router *mux.Router
	pages  *mockpages.MockService
	assets *assetsmemory.Store
	token  string
}

func newRoutesEnv(t *testing.T) *routesEnv {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)
	now := time.Now()

	env := &routesEnv{
		router: mux.NewRouter(),
		pages:  mockpages.NewMockService(gomock.NewController(t)),
		assets: assetsmemory.New(),
		token:  signJWTRS256(t, priv, string(owner), now, now.Add(time.Hour)),
	}
	v1handler.New(v1handler.Deps{
		Pages:          env.pages,
		Assets:         env.assets,
		MaxUploadBytes: 1024,
	}).Register(env.router, sec)

	return env
}

func (e *routesEnv) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestRoutes_CheckAvailabilityIsPublic(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().CheckAvailability(gomock.Any(), domain.PageID("alice")).Return(true, nil)

	rec := env.do(t, http.MethodGet, "/v1/pages/alice/availability", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, v1handler.Availability{ID: "alice", Available: true},
		decodeBody[v1handler.Availability](t, rec))
}

func TestRoutes_AdminRequiresToken(t *testing.T) {
	env := newRoutesEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/admin/pages", nil, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, serrors.ErrUnauthorized.Error(), decodeBody[v1handler.ErrorResponse](t, rec).Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/pages", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_CreatePage(t *testing.T) {
	env := newRoutesEnv(t)
	req := pages.CreatePageRequest{ID: "alice", BioInfo: domain.BioInfo{Name: "Alice"}}
	env.pages.EXPECT().CreatePage(gomock.Any(), owner, req).
		Return(&domain.Page{ID: "alice", Owner: owner, BioInfo: req.BioInfo}, nil)

	rec := env.do(t, http.MethodPost, "/v1/admin/pages", req, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	page := decodeBody[domain.Page](t, rec)
	require.Equal(t, domain.PageID("alice"), page.ID)
	require.Equal(t, owner, page.Owner)
}

func TestRoutes_CreatePageConflict(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().CreatePage(gomock.Any(), owner, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, `page "alice" already exists`))

	rec := env.do(t, http.MethodPost, "/v1/admin/pages", pages.CreatePageRequest{ID: "alice"}, true)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, v1handler.ErrorResponse{
		Code:    serrors.ErrConflict.Error(),
		Message: `page "alice" already exists`,
	}, decodeBody[v1handler.ErrorResponse](t, rec))
}

func TestRoutes_RejectsUnknownFields(t *testing.T) {
	env := newRoutesEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/admin/pages", `{"id":"alice","owner":"someone-else"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, serrors.ErrInvalidArgument.Error(), decodeBody[v1handler.ErrorResponse](t, rec).Code)
}

func TestRoutes_ListPagesNeverNull(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().ListPages(gomock.Any(), owner).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/v1/admin/pages", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestRoutes_RemovePageNotFound(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().RemovePage(gomock.Any(), owner, domain.PageID("bob")).
		Return(serrors.With(serrors.ErrNotFound, `page "bob" not found`))

	rec := env.do(t, http.MethodDelete, "/v1/admin/pages/bob", nil, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_RenamePage(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().RenamePage(gomock.Any(), owner, domain.PageID("alice"), domain.PageID("alice2")).
		Return(&domain.Page{ID: "alice2", Owner: owner}, nil)

	rec := env.do(t, http.MethodPost, "/v1/admin/pages/alice/rename", v1handler.RenameRequest{NewID: "alice2"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.PageID("alice2"), decodeBody[domain.Page](t, rec).ID)
}

func TestRoutes_Links(t *testing.T) {
	env := newRoutesEnv(t)
	gomock.InOrder(
		env.pages.EXPECT().AddLink(gomock.Any(), owner, domain.PageID("alice"),
			domain.Link{URL: "https://a.example", Name: "A"}).
			Return(&domain.Link{ID: "l1", URL: "https://a.example", Name: "A"}, nil),
		env.pages.EXPECT().UpdateLink(gomock.Any(), owner, domain.PageID("alice"),
			domain.Link{ID: "l1", Name: "B"}).
			Return(&domain.Link{ID: "l1", URL: "https://a.example", Name: "B"}, nil),
		env.pages.EXPECT().ReorderLinks(gomock.Any(), owner, domain.PageID("alice"), []string{"l2", "l1"}).
			Return([]domain.Link{{ID: "l2"}, {ID: "l1"}}, nil),
		env.pages.EXPECT().RemoveLink(gomock.Any(), owner, domain.PageID("alice"), "l1").Return(nil),
	)

	rec := env.do(t, http.MethodPost, "/v1/admin/pages/alice/links",
		v1handler.LinkRequest{URL: "https://a.example", Name: "A"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "l1", decodeBody[domain.Link](t, rec).ID)

	rec = env.do(t, http.MethodPatch, "/v1/admin/pages/alice/links/l1", v1handler.LinkRequest{Name: "B"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "B", decodeBody[domain.Link](t, rec).Name)

	rec = env.do(t, http.MethodPut, "/v1/admin/pages/alice/links/order",
		v1handler.ReorderRequest{IDs: []string{"l2", "l1"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[v1handler.LinkList](t, rec).Items, 2)

	rec = env.do(t, http.MethodDelete, "/v1/admin/pages/alice/links/l1", nil, true)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoutes_SocialLinks(t *testing.T) {
	env := newRoutesEnv(t)
	env.pages.EXPECT().AddSocialLink(gomock.Any(), owner, domain.PageID("alice"),
		domain.SocialLink{URL: "https://x.example/alice"}).
		Return(&domain.SocialLink{ID: "s1", URL: "https://x.example/alice"}, nil)
	env.pages.EXPECT().ReorderSocialLinks(gomock.Any(), owner, domain.PageID("alice"), []string{"s1", "s1"}).
		Return(nil, serrors.With(serrors.ErrInvalidArgument, "ids must be a permutation"))

	rec := env.do(t, http.MethodPost, "/v1/admin/pages/alice/social-links",
		v1handler.SocialLinkRequest{URL: "https://x.example/alice"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPut, "/v1/admin/pages/alice/social-links/order",
		v1handler.ReorderRequest{IDs: []string{"s1", "s1"}}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_UpdateColors(t *testing.T) {
	env := newRoutesEnv(t)
	colors := domain.PageColors{domain.ColorBackground: "#fff"}
	env.pages.EXPECT().UpdatePageColors(gomock.Any(), owner, domain.PageID("alice"), colors).Return(colors, nil)

	rec := env.do(t, http.MethodPut, "/v1/admin/pages/alice/colors", colors, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"backgroundColor":"#fff"}`, rec.Body.String())
}

func multipartImage(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestRoutes_UploadProfileImage(t *testing.T) {
	env := newRoutesEnv(t)
	data := []byte("\x89PNG\r\n\x1a\nimage")
	env.pages.EXPECT().UploadProfileImage(gomock.Any(), owner, domain.PageID("alice"), data).
		Return("https://cdn.example.com/abc", nil)

	body, contentType := multipartImage(t, data)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/pages/alice/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "https://cdn.example.com/abc", decodeBody[v1handler.ImageResponse](t, rec).ImageURL)
}

func TestRoutes_UploadProfileImageTooLarge(t *testing.T) {
	env := newRoutesEnv(t)

	body, contentType := multipartImage(t, bytes.Repeat([]byte("a"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/pages/alice/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_GetAsset(t *testing.T) {
	env := newRoutesEnv(t)
	require.NoError(t, env.assets.Put(context.Background(), assets.Object{
		Key:         "k1",
		ContentType: "image/png",
		Data:        []byte("img"),
	}))

	rec := env.do(t, http.MethodGet, "/assets/k1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Empty(t, rec.Header().Get("Content-Disposition"))
	require.True(t, strings.Contains(rec.Header().Get("Cache-Control"), "immutable"))
	require.Equal(t, "img", rec.Body.String())

	rec = env.do(t, http.MethodHead, "/assets/k1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.Bytes())

	rec = env.do(t, http.MethodGet, "/assets/missing", nil, false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_GetAssetNonImageIsDownload(t *testing.T) {
	env := newRoutesEnv(t)
	for key, ct := range map[string]string{
		"page": "text/html; charset=utf-8",
		"svg":  "image/svg+xml",
		"bare": "",
	} {
		require.NoError(t, env.assets.Put(context.Background(), assets.Object{
			Key:         key,
			ContentType: ct,
			Data:        []byte("<script>alert(1)</script>"),
		}))

		rec := env.do(t, http.MethodGet, "/assets/"+key, nil, false)
		require.Equal(t, http.StatusOK, rec.Code, key)
		require.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"), key)
		require.Equal(t, "attachment", rec.Header().Get("Content-Disposition"), key)
		require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"), key)
	}
}
