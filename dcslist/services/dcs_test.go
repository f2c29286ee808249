package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/directory"
)

func Test_ExtractInviteCode(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{link: "https://discord.gg/abc123", want: "abc123"},
		{link: "discord.gg/abc123", want: "abc123"},
		{link: "https://discord.com/invite/my-server", want: "my-server"},
		{link: "http://discord.com/invite/xYz9", want: "xYz9"},
		{link: "abc123", want: "abc123"},
		{link: "gaming-hub", want: "gaming-hub"},
		{link: "https://example.com/invite/abc", want: ""},
		{link: "not a code", want: ""},
		{link: "", want: ""},
	}

	for _, tt := range tests {
		if got := ExtractInviteCode(tt.link); got != tt.want {
			t.Errorf("ExtractInviteCode(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}

func dcsTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/api/v1/discord/abc123":
			fmt.Fprint(w, `{
				"guild": {
					"id": "123456789012345678",
					"name": "Gaming Hub",
					"description": "all things gaming",
					"icon": "a_icon"
				},
				"approximate_member_count": 4200,
				"approximate_presence_count": 310
			}`)
		case "/api/v1/discord/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_DcsService_GuildPreview(t *testing.T) {
	var hits atomic.Int64
	upstream := dcsTestServer(t, &hits)
	svc := NewDcsService(upstream.URL)
	ctx := context.Background()

	meta, err := svc.GuildPreview(ctx, "https://discord.gg/abc123")
	if err != nil {
		t.Fatalf("GuildPreview() unexpected error = %v", err)
	}
	if meta == nil {
		t.Fatal("GuildPreview() = nil for known invite")
	}
	if meta.Name != "Gaming Hub" {
		t.Errorf("name = %q, want Gaming Hub", meta.Name)
	}
	if meta.MemberCount != 4200 || meta.OnlineCount != 310 {
		t.Errorf("counts = %d/%d, want 4200/310", meta.MemberCount, meta.OnlineCount)
	}
	wantIcon := upstream.URL + "/proxy/discord/icons/123456789012345678/a_icon"
	if meta.Icon != wantIcon {
		t.Errorf("icon = %q, want %q", meta.Icon, wantIcon)
	}
}

func Test_DcsService_GuildPreview_Caches(t *testing.T) {
	var hits atomic.Int64
	upstream := dcsTestServer(t, &hits)
	svc := NewDcsService(upstream.URL)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.GuildPreview(ctx, "abc123"); err != nil {
			t.Fatalf("GuildPreview() call %d error = %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("upstream hit %d times within TTL, want 1", got)
	}

	// Expire the entry and confirm a refetch happens.
	svc.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
	if _, err := svc.GuildPreview(ctx, "abc123"); err != nil {
		t.Fatalf("GuildPreview() after TTL error = %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("upstream hit %d times after TTL, want 2", got)
	}
}

func Test_DcsService_GuildPreview_UnknownInvite(t *testing.T) {
	var hits atomic.Int64
	upstream := dcsTestServer(t, &hits)
	svc := NewDcsService(upstream.URL)

	meta, err := svc.GuildPreview(context.Background(), "gone")
	if err != nil {
		t.Fatalf("GuildPreview() error = %v, want nil for 404", err)
	}
	if meta != nil {
		t.Errorf("GuildPreview() = %+v, want nil for 404", meta)
	}

	// The 404 is cached too.
	if _, err := svc.GuildPreview(context.Background(), "gone"); err != nil {
		t.Fatalf("GuildPreview() second call error = %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("upstream hit %d times for cached 404, want 1", got)
	}
}

func Test_DcsService_GuildPreview_UpstreamFailure(t *testing.T) {
	var hits atomic.Int64
	upstream := dcsTestServer(t, &hits)
	svc := NewDcsService(upstream.URL)

	_, err := svc.GuildPreview(context.Background(), "boom")
	if !errors.Is(err, directory.ErrUpstreamUnavailable) {
		t.Errorf("GuildPreview() error = %v, want ErrUpstreamUnavailable", err)
	}
}

func Test_DcsService_GuildPreview_BadLink(t *testing.T) {
	svc := NewDcsService("http://127.0.0.1:1")

	meta, err := svc.GuildPreview(context.Background(), "https://example.com/nope")
	if err != nil || meta != nil {
		t.Errorf("GuildPreview() = %v, %v for unparseable link, want nil, nil", meta, err)
	}
}
