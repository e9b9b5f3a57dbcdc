package congress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/billboard-app/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(config.CongressConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
	return client, server
}

func TestFetchTextSources(t *testing.T) {
	t.Run("picks the latest text version", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bill/118/hr/3076/text", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			w.Write([]byte(`{"textVersions":[
				{"date":"2023-01-01","type":"Introduced","formats":[{"type":"HTML","url":"http://x/old.htm"}]},
				{"date":"2023-06-01","type":"Enrolled","formats":[{"type":"HTML","url":"http://x/new.htm"}]}
			]}`))
		}))

		src, err := client.FetchTextSources(context.Background(), 118, "HR", "3076")
		require.NoError(t, err)
		assert.Equal(t, "Enrolled", src.Type)
		require.Len(t, src.Formats, 1)
		assert.Equal(t, "http://x/new.htm", src.Formats[0].URL)
	})

	t.Run("empty version list yields ErrNoText", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"textVersions":[]}`))
		}))

		_, err := client.FetchTextSources(context.Background(), 118, "hr", "1")
		assert.ErrorIs(t, err, ErrNoText)
	})

	t.Run("server error surfaces as wrapped error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.FetchTextSources(context.Background(), 118, "hr", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 502")
	})
}

func TestFetchTextHTML(t *testing.T) {
	t.Run("follows the first format url", func(t *testing.T) {
		mux := http.NewServeMux()
		var server *httptest.Server
		mux.HandleFunc("/bill/118/hr/1/text", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"textVersions":[{"date":"2023-06-01","type":"Enrolled","formats":[{"type":"HTML","url":"` + server.URL + `/doc.htm"}]}]}`))
		})
		mux.HandleFunc("/doc.htm", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body>SECTION 1.</body></html>"))
		})
		client, srv := newTestClient(t, mux)
		server = srv

		body, err := client.FetchTextHTML(context.Background(), 118, "hr", "1")
		require.NoError(t, err)
		assert.Contains(t, body, "SECTION 1.")
	})

	t.Run("version without formats yields ErrNoText", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"textVersions":[{"date":"2023-06-01","type":"Enrolled","formats":[]}]}`))
		}))

		_, err := client.FetchTextHTML(context.Background(), 118, "hr", "1")
		assert.ErrorIs(t, err, ErrNoText)
	})
}

func TestFetchCosponsors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bill/118/s/100/cosponsors", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cosponsors":[
			{"bioguideId":"A000001","firstName":"Ann","lastName":"Ames","fullName":"Sen. Ames, Ann","party":"D","state":"WA","isOriginalCosponsor":true,"sponsorshipDate":"2023-02-01","url":"http://x/a"},
			{"bioguideId":"B000002","firstName":"Bob","lastName":"Byrd","fullName":"Sen. Byrd, Bob","party":"R","state":"OH","district":4,"sponsorshipDate":"2023-03-01","url":"http://x/b"}
		]}`))
	})
	mux.HandleFunc("/member/A000001", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"member":{"depiction":{"imageUrl":"http://img/a.jpg"}}}`))
	})
	mux.HandleFunc("/member/B000002", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client, _ := newTestClient(t, mux)

	out, err := client.FetchCosponsors(context.Background(), 118, "S", "100")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "A000001", out[0].BioguideID)
	assert.Equal(t, "http://img/a.jpg", out[0].ImageURL)
	assert.True(t, out[0].IsOriginalCosponsor)
	assert.Nil(t, out[0].District)

	// Portrait lookup failure leaves the image empty but keeps the member.
	assert.Equal(t, "B000002", out[1].BioguideID)
	assert.Empty(t, out[1].ImageURL)
	require.NotNil(t, out[1].District)
	assert.Equal(t, 4, *out[1].District)
}

func TestFetchRecentBills(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bill", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"bills":[{"congress":118,"type":"HR","number":"3076","title":"Postal Service Reform Act","url":"http://x/bill","latestAction":{"actionDate":"2023-04-01","text":"Became Public Law"}}]}`))
	}))

	out, err := client.FetchRecentBills(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 118, out[0].Congress)
	assert.Equal(t, "3076", out[0].Number)
	assert.Equal(t, "Became Public Law", out[0].LatestAction.Text)
}
