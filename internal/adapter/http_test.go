package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	myHTTP "github.com/MKhiriev/go-accounts/internal/handler/http"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts the full HTTP stack on a temporary SQLite database
// and returns a client pointed at it.
func newTestClient(t *testing.T, checkGroups bool) UserClient {
	t.Helper()

	log := logger.Nop()
	cfg := config.StructuredConfig{
		App: config.App{Version: "test", CheckGroupReferences: checkGroups},
		Storage: config.Storage{DB: config.DB{
			DSN:            "sqlite://" + filepath.Join(t.TempDir(), "accounts.db"),
			ConnectTimeout: 5 * time.Second,
		}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, log)
	require.NoError(t, err)

	h := myHTTP.NewHandler(services, log)
	t.Cleanup(h.Close)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	client, err := NewHTTPUserClient(srv.URL, 5*time.Second, log)
	require.NoError(t, err)
	return client
}

func newStubClient(t *testing.T, handler http.HandlerFunc) UserClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPUserClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestNewHTTPUserClient_Address(t *testing.T) {
	_, err := NewHTTPUserClient("", time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyBaseURL)

	_, err = NewHTTPUserClient("localhost:8080", time.Second, logger.Nop())
	assert.NoError(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://accounts.example.com/ ", want: "https://accounts.example.com"},
		{raw: "http://", wantErr: true},
		{raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserClient_Lifecycle(t *testing.T) {
	client := newTestClient(t, false)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, models.User{
		Username: "alice",
		Password: "pw",
		Email:    "alice@example.com",
		Groups:   []string{"g1", "g2"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Password)
	assert.Equal(t, []string{"g1", "g2"}, created.Groups)
	assert.False(t, created.IsEmailConfirmed)

	got, err := client.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)

	byName, err := client.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := client.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	created.Email = "alice@example.org"
	created.Password = "pw2"
	created.Groups = []string{"g3"}
	updated, err := client.UpdateUser(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.org", updated.Email)
	assert.Equal(t, []string{"g3"}, updated.Groups)

	require.NoError(t, client.DeleteUser(ctx, created.ID))

	_, err = client.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	err = client.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserClient_Conflicts(t *testing.T) {
	client := newTestClient(t, false)
	ctx := context.Background()

	alice, err := client.CreateUser(ctx, models.User{Username: "alice", Password: "pw", Email: "alice@example.com"})
	require.NoError(t, err)

	// a reused id is replaced, not reported as a conflict
	dave, err := client.CreateUser(ctx, models.User{ID: alice.ID, Username: "dave", Password: "pw", Email: "dave@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, dave.ID)

	_, err = client.CreateUser(ctx, models.User{Username: "alice", Password: "pw", Email: "other@example.com"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.ErrorIs(t, err, store.ErrUniquenessViolation)

	_, err = client.CreateUser(ctx, models.User{Username: "bob", Password: "pw", Email: "alice@example.com"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserClient_Validation(t *testing.T) {
	client := newTestClient(t, false)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, models.User{Username: "bob", Password: "pw", Email: "not-an-email"})
	require.ErrorIs(t, err, validators.ErrInvalidEmailFormat)

	var fieldErr *validators.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, validators.FieldEmail, fieldErr.Field)
	assert.Equal(t, "not-an-email", fieldErr.Value)

	_, err = client.CreateUser(ctx, models.User{Password: "pw", Email: "bob@example.com"})
	assert.ErrorIs(t, err, validators.ErrMissingRequiredField)

	_, err = client.FindUserByUsername(ctx, "")
	assert.ErrorIs(t, err, service.ErrNoLookupFilter)
}

func TestUserClient_UnknownGroups(t *testing.T) {
	client := newTestClient(t, true)

	_, err := client.CreateUser(context.Background(), models.User{
		Username: "carol",
		Password: "pw",
		Email:    "carol@example.com",
		Groups:   []string{"missing"},
	})
	require.ErrorIs(t, err, service.ErrUnknownGroup)
	assert.Contains(t, err.Error(), "missing")
}

func TestUserClient_ForwardsTraceID(t *testing.T) {
	var gotTraceID string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get(traceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := utils.WithTraceID(context.Background(), "trace-123")
	require.NoError(t, client.DeleteUser(ctx, "some-id"))
	assert.Equal(t, "trace-123", gotTraceID)
}

func TestUserClient_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, wantErr: ErrInternalServerError},
		{name: "bad json", status: http.StatusBadRequest, body: `{"error":"Invalid JSON was passed"}`, wantErr: ErrBadRequest},
		{name: "plain text conflict", status: http.StatusConflict, body: "duplicate", wantErr: store.ErrUniquenessViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetUser(context.Background(), "id")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewHTTPUserClient(url, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = client.GetUser(context.Background(), "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get user request")
}
