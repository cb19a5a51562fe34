package controllers

import (
	"context"
	"fmt"
	"testing"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/authenticator"
	"github.com/cloudphoenix/phoenix-api/internal/services"
	"github.com/cloudphoenix/phoenix-api/internal/services/asset"
	"github.com/cloudphoenix/phoenix-api/internal/services/user"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*user.User{}, byID: map[uuid.UUID]*user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	created := *u
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.byEmail[created.Email] = &created
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type fakeAssetRepo struct {
	stored map[uuid.UUID]*asset.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{stored: map[uuid.UUID]*asset.Asset{}}
}

func (f *fakeAssetRepo) Create(ctx context.Context, a *asset.Asset) (*asset.Asset, error) {
	created := *a
	created.ID = uuid.New()
	created.LastUpdated = time.Now()
	if created.Tags == nil {
		created.Tags = asset.Tags{}
	}
	f.stored[created.ID] = &created
	out := created
	return &out, nil
}

func (f *fakeAssetRepo) GetByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	a, ok := f.stored[id]
	if !ok {
		return nil, asset.ErrAssetNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeAssetRepo) List(ctx context.Context) ([]*asset.Asset, error) {
	out := make([]*asset.Asset, 0, len(f.stored))
	for _, a := range f.stored {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, id uuid.UUID, req *asset.UpdateAssetRequest) (*asset.Asset, error) {
	a, ok := f.stored[id]
	if !ok {
		return nil, asset.ErrAssetNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Status != nil {
		a.Status = asset.AssetStatus(*req.Status)
	}
	if req.Location != nil {
		a.Location = *req.Location
	}
	if req.Username != nil {
		a.Username = *req.Username
	}
	if req.Password != nil {
		a.Password = *req.Password
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	a.LastUpdated = time.Now()
	out := *a
	return &out, nil
}

func (f *fakeAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.stored[id]; !ok {
		return asset.ErrAssetNotFound
	}
	delete(f.stored, id)
	return nil
}

func newServices() (*services.Services, *fakeUserRepo, *fakeAssetRepo) {
	userRepo := newFakeUserRepo()
	assetRepo := newFakeAssetRepo()
	svc := &services.Services{
		User:  user.NewUserService(userRepo),
		Asset: asset.NewAssetService(assetRepo),
	}
	return svc, userRepo, assetRepo
}

func doRequest(t *testing.T, r *router.Router, method, uri string, body any, caller uuid.UUID) *fasthttp.RequestCtx {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		ctx.Request.SetBody(raw)
	}
	if caller != uuid.Nil {
		ctx.SetUserValue("userID", caller)
	}

	r.Handler(ctx)
	return ctx
}

func TestRegister_ReturnsTokenForNewUser(t *testing.T) {
	svc, _, _ := newServices()
	auth := authenticator.New("test-secret")

	r := router.New()
	RegisterAuthRoutes(r, svc, auth)

	ctx := doRequest(t, r, fasthttp.MethodPost, "/api/auth/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw",
	}, uuid.Nil)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.NotEmpty(t, resp.Token)

	// The token resolves back to the registered user
	userID, err := auth.Verify(resp.Token)
	require.NoError(t, err)
	_, err = uuid.Parse(userID)
	assert.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newServices()
	r := router.New()
	RegisterAuthRoutes(r, svc, authenticator.New("test-secret"))

	body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "pw"}
	ctx := doRequest(t, r, fasthttp.MethodPost, "/api/auth/register", body, uuid.Nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = doRequest(t, r, fasthttp.MethodPost, "/api/auth/register", body, uuid.Nil)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "User already exists")
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc, _, _ := newServices()
	r := router.New()
	RegisterAuthRoutes(r, svc, authenticator.New("test-secret"))

	doRequest(t, r, fasthttp.MethodPost, "/api/auth/register", map[string]string{
		"name": "Bob", "email": "bob@example.com", "password": "hunter2",
	}, uuid.Nil)

	wrongPw := doRequest(t, r, fasthttp.MethodPost, "/api/auth/login", map[string]string{
		"email": "bob@example.com", "password": "wrong",
	}, uuid.Nil)
	unknown := doRequest(t, r, fasthttp.MethodPost, "/api/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "hunter2",
	}, uuid.Nil)

	assert.Equal(t, fasthttp.StatusBadRequest, wrongPw.Response.StatusCode())
	assert.Equal(t, fasthttp.StatusBadRequest, unknown.Response.StatusCode())
	assert.Equal(t, string(wrongPw.Response.Body()), string(unknown.Response.Body()))
}

func TestMe_ExcludesPasswordHash(t *testing.T) {
	svc, userRepo, _ := newServices()
	r := router.New()
	RegisterAuthRoutes(r, svc, authenticator.New("test-secret"))

	created, err := userRepo.Create(context.Background(), &user.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "bcrypt-hash", Role: user.RoleUser,
	})
	require.NoError(t, err)

	ctx := doRequest(t, r, fasthttp.MethodGet, "/api/auth/", nil, created.ID)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := string(ctx.Response.Body())
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "bcrypt-hash")
}

func TestCreateAsset_DefaultsAndOwner(t *testing.T) {
	svc, _, _ := newServices()
	r := router.New()
	RegisterAssetRoutes(r, svc)

	caller := uuid.New()
	ctx := doRequest(t, r, fasthttp.MethodPost, "/api/assets", map[string]any{
		"name": "web-1", "ipAddress": "10.0.0.1", "type": "Server",
	}, caller)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var got asset.Asset
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	assert.Equal(t, asset.StatusActive, got.Status)
	assert.Equal(t, caller, got.CreatedBy)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCreateAsset_MissingRequiredField(t *testing.T) {
	svc, _, _ := newServices()
	r := router.New()
	RegisterAssetRoutes(r, svc)

	ctx := doRequest(t, r, fasthttp.MethodPost, "/api/assets", map[string]any{
		"name": "web-1", "type": "Server",
	}, uuid.New())
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestUpdateAsset_PasswordKeyPresence(t *testing.T) {
	svc, _, assetRepo := newServices()
	r := router.New()
	RegisterAssetRoutes(r, svc)

	caller := uuid.New()
	created, err := assetRepo.Create(context.Background(), &asset.Asset{
		Name: "sw-1", IPAddress: "10.0.0.2", Type: "Switch",
		Status: asset.StatusActive, Password: "stored-credential", CreatedBy: caller,
	})
	require.NoError(t, err)

	// Omitted password key leaves the credential unchanged
	ctx := doRequest(t, r, fasthttp.MethodPut, fmt.Sprintf("/api/assets/%s", created.ID), map[string]any{
		"notes": "patched",
	}, caller)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	stored, err := assetRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "stored-credential", stored.Password)
	assert.Equal(t, "patched", stored.Notes)

	// Explicit empty string clears it
	ctx = doRequest(t, r, fasthttp.MethodPut, fmt.Sprintf("/api/assets/%s", created.ID), map[string]any{
		"password": "",
	}, caller)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	stored, err = assetRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Password)
}

func TestUpdateAsset_NotFound(t *testing.T) {
	svc, _, _ := newServices()
	r := router.New()
	RegisterAssetRoutes(r, svc)

	ctx := doRequest(t, r, fasthttp.MethodPut, fmt.Sprintf("/api/assets/%s", uuid.New()), map[string]any{
		"notes": "x",
	}, uuid.New())
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestDeleteAsset(t *testing.T) {
	svc, _, assetRepo := newServices()
	r := router.New()
	RegisterAssetRoutes(r, svc)

	caller := uuid.New()
	created, err := assetRepo.Create(context.Background(), &asset.Asset{
		Name: "web-1", IPAddress: "10.0.0.1", Type: "Server", Status: asset.StatusActive, CreatedBy: caller,
	})
	require.NoError(t, err)

	ctx := doRequest(t, r, fasthttp.MethodDelete, fmt.Sprintf("/api/assets/%s", created.ID), nil, caller)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "Asset removed")

	// Deleting again is a 404, and List no longer includes it
	ctx = doRequest(t, r, fasthttp.MethodDelete, fmt.Sprintf("/api/assets/%s", created.ID), nil, caller)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = doRequest(t, r, fasthttp.MethodGet, "/api/assets", nil, caller)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "[]", string(ctx.Response.Body()))
}

func TestStubRoutes_NotImplemented(t *testing.T) {
	r := router.New()
	RegisterStubRoutes(r)

	for _, uri := range []string{"/api/projects", "/api/tasks", "/api/handoffs"} {
		ctx := doRequest(t, r, fasthttp.MethodGet, uri, nil, uuid.New())
		assert.Equal(t, fasthttp.StatusNotImplemented, ctx.Response.StatusCode(), uri)
		assert.Contains(t, string(ctx.Response.Body()), "Not implemented")
	}
}
