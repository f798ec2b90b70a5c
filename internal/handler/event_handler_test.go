package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() gin.H {
	return gin.H{
		"title":      "Go Meetup March",
		"date":       "2026-03-12",
		"event_type": "meetup",
		"topic_tags": []string{"go", "backend"},
		"links":      []gin.H{{"label": "Slides", "url": "https://example.com/slides"}},
		"speakers":   []gin.H{{"name": "Dana Ilie"}},
	}
}

func TestEventLifecycle(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := loginAdmin(t, engine)
	auth := requestOptions{cookies: []*http.Cookie{cookie}}

	// create
	w := doJSON(engine, http.MethodPost, "/api/admin/events", sampleEvent(), auth)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Event created", decodeEnvelope(t, w).Message)

	var created struct {
		ID       string   `json:"id"`
		Date     string   `json:"date"`
		Tags     []string `json:"topic_tags"`
		Sponsors []gin.H  `json:"sponsors"`
	}
	dataField(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-03-12", created.Date)
	assert.Equal(t, []string{"go", "backend"}, created.Tags)
	assert.NotNil(t, created.Sponsors, "lists serialize as [], not null")

	// public read
	w = doJSON(engine, http.MethodGet, "/api/events/"+created.ID, nil, requestOptions{})
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Title    string `json:"title"`
		Speakers []struct {
			Name string `json:"name"`
		} `json:"speakers"`
	}
	dataField(t, w, &got)
	assert.Equal(t, "Go Meetup March", got.Title)
	require.Len(t, got.Speakers, 1)
	assert.Equal(t, "Dana Ilie", got.Speakers[0].Name)

	// update
	update := sampleEvent()
	update["title"] = "Go Meetup March (rescheduled)"
	w = doJSON(engine, http.MethodPut, "/api/admin/events/"+created.ID, update, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Event updated", decodeEnvelope(t, w).Message)

	// delete
	w = doJSON(engine, http.MethodDelete, "/api/admin/events/"+created.ID, nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Event deleted", decodeEnvelope(t, w).Message)

	w = doJSON(engine, http.MethodGet, "/api/events/"+created.ID, nil, requestOptions{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventValidation(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := loginAdmin(t, engine)

	w := doJSON(engine, http.MethodPost, "/api/admin/events", gin.H{
		"title": "",
		"date":  "not-a-date",
	}, requestOptions{cookies: []*http.Cookie{cookie}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Errors, "Title is required")
	assert.Contains(t, env.Errors, "Valid date is required")
	assert.Contains(t, env.Errors, "Event type is required")
}

func TestEventListFilters(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := loginAdmin(t, engine)
	auth := requestOptions{cookies: []*http.Cookie{cookie}}

	w := doJSON(engine, http.MethodPost, "/api/admin/events", sampleEvent(), auth)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodPost, "/api/admin/events", gin.H{
		"title":      "DevConf 2025",
		"date":       "2025-11-02",
		"event_type": "conference",
		"topic_tags": []string{"cloud"},
		"sponsors":   []gin.H{{"name": "Acme Corp"}},
	}, auth)
	require.Equal(t, http.StatusCreated, w.Code)

	cases := []struct {
		query string
		want  string
	}{
		{"?topic=go", "Go Meetup March"},
		{"?eventType=conference", "DevConf 2025"},
		{"?speaker=Dana+Ilie", "Go Meetup March"},
		{"?sponsor=Acme+Corp", "DevConf 2025"},
		{"?year=2025", "DevConf 2025"},
	}

	for _, tc := range cases {
		w = doJSON(engine, http.MethodGet, "/api/events"+tc.query, nil, requestOptions{})
		require.Equal(t, http.StatusOK, w.Code, tc.query)

		var list []struct {
			Title string `json:"title"`
		}
		dataField(t, w, &list)
		require.Len(t, list, 1, tc.query)
		assert.Equal(t, tc.want, list[0].Title, tc.query)
	}

	// no filter returns both, newest date first
	w = doJSON(engine, http.MethodGet, "/api/events", nil, requestOptions{})
	require.Equal(t, http.StatusOK, w.Code)
	var all []struct {
		Title string `json:"title"`
	}
	dataField(t, w, &all)
	require.Len(t, all, 2)
	assert.Equal(t, "Go Meetup March", all[0].Title)
}

func TestHealth(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, http.MethodGet, "/api/health", nil, requestOptions{})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Status string `json:"status"`
	}
	dataField(t, w, &data)
	assert.Equal(t, "ok", data.Status)
}

func TestUnknownRoute(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, http.MethodGet, "/api/definitely-not-a-route", nil, requestOptions{})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}
