package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boostpanel/boostpanel/internal/config"
	"github.com/boostpanel/boostpanel/pkg/clients"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(&config.Config{OracleAddress: srv.URL}, clients.NewHTTPClient())
	return client, srv
}

func TestClient_CheckMembership(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    Membership
		wantErr bool
	}{
		{
			name: "member",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/membership/-100500/42", r.URL.Path)
				w.Write([]byte(`{"status":"member"}`))
			},
			want: Member,
		},
		{
			name: "not member",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"not_member"}`))
			},
			want: NotMember,
		},
		{
			name: "unrecognized status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"pending"}`))
			},
			want: Unknown,
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			want: Unknown,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{broken`))
			},
			want:    Unknown,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(tt.handler)
			defer srv.Close()

			got, err := client.CheckMembership(context.Background(), 42, "-100500")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_CheckMembership_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(&config.Config{OracleAddress: srv.URL}, clients.NewHTTPClient())

	got, err := client.CheckMembership(context.Background(), 42, "-100500")
	assert.Error(t, err)
	assert.Equal(t, Unknown, got)
}
