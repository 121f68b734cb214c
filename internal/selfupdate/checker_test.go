package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/kosakata/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.1.0", true},
		{"1.0.0", "v1.0.1", true},
		{"v1.2.0", "v1.1.9", false},
		{"v1.0.0", "v1.0.0", false},
		{"v1.0.0", "nightly", false},
		{"(devel)", "v9.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.latest, func(t *testing.T) {
			c := NewChecker(WithBaseURL(releaseServer(t, tt.latest).URL))
			res, err := c.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, res.ReleaseURL)
		})
	}
}

func TestCheck_HTTPError(t *testing.T) {
	c := NewChecker(WithBaseURL(releaseServer(t, "v1.0.0").URL), WithRepository("someone", "else"))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestIsDevBuild(t *testing.T) {
	assert.True(t, IsDevBuild("(devel)"))
	assert.True(t, IsDevBuild(""))
	assert.True(t, IsDevBuild("main-dirty"))
	assert.False(t, IsDevBuild("v0.3.1"))
	assert.False(t, IsDevBuild("0.3.1"))
}
