package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every admin endpoint behind the auth middleware
var guardedAdminRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/admin/pending"},
	{http.MethodGet, "/api/admin/published"},
	{http.MethodPut, "/api/admin/submissions/some-id/approve"},
	{http.MethodDelete, "/api/admin/submissions/some-id/reject"},
	{http.MethodPut, "/api/admin/submissions/some-id/status"},
	{http.MethodPost, "/api/admin/submissions/some-id/response"},
	{http.MethodDelete, "/api/admin/submissions/some-id"},
	{http.MethodGet, "/api/admin/collaborations"},
	{http.MethodPut, "/api/admin/collaborations/some-id"},
	{http.MethodPost, "/api/admin/events"},
	{http.MethodPut, "/api/admin/events/some-id"},
	{http.MethodDelete, "/api/admin/events/some-id"},
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	engine, _ := newTestServer(t)

	for _, route := range guardedAdminRoutes {
		w := doJSON(engine, route.method, route.path, nil, requestOptions{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Unauthorized. Admin access required.", env.Message)
	}
}

func TestAdminRoutesRejectForgedCookie(t *testing.T) {
	engine, _ := newTestServer(t)
	forged := &http.Cookie{Name: "admin_session", Value: "not-a-real-token"}

	for _, route := range guardedAdminRoutes {
		w := doJSON(engine, route.method, route.path, nil, requestOptions{cookies: []*http.Cookie{forged}})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestAdminLogin(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/admin/login", gin.H{}, requestOptions{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password is required", decodeEnvelope(t, w).Message)

	w = doJSON(engine, http.MethodPost, "/api/admin/login", gin.H{"password": "wrong"}, requestOptions{})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", decodeEnvelope(t, w).Message)

	cookie := loginAdmin(t, engine)
	assert.True(t, cookie.HttpOnly, "session cookie must be HttpOnly")

	w = doJSON(engine, http.MethodGet, "/api/admin/pending", nil, requestOptions{cookies: []*http.Cookie{cookie}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLogout(t *testing.T) {
	engine, _ := newTestServer(t)

	cookie := loginAdmin(t, engine)

	w := doJSON(engine, http.MethodPost, "/api/admin/logout", nil, requestOptions{cookies: []*http.Cookie{cookie}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout successful", decodeEnvelope(t, w).Message)

	// the old token no longer opens the door
	w = doJSON(engine, http.MethodGet, "/api/admin/pending", nil, requestOptions{cookies: []*http.Cookie{cookie}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminModerationFlow(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := loginAdmin(t, engine)
	auth := requestOptions{cookies: []*http.Cookie{cookie}}

	w := doJSON(engine, http.MethodPost, "/api/submissions", validSubmission(), requestOptions{sessionID: "sess-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	dataField(t, w, &created)

	// the queue shows it with submitter details
	w = doJSON(engine, http.MethodGet, "/api/admin/pending", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var pending []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	dataField(t, w, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	// approve with a tag rewrite
	w = doJSON(engine, http.MethodPut, "/api/admin/submissions/"+created.ID+"/approve",
		gin.H{"tags": []string{"community"}}, auth)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Submission approved", env.Message)

	var approved struct {
		Status string   `json:"status"`
		Tags   []string `json:"tags"`
	}
	dataField(t, w, &approved)
	assert.Equal(t, "exploring", approved.Status)
	assert.Equal(t, []string{"community"}, approved.Tags)

	// approving again finds no pending row
	w = doJSON(engine, http.MethodPut, "/api/admin/submissions/"+created.ID+"/approve", nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// move it along the workflow
	w = doJSON(engine, http.MethodPut, "/api/admin/submissions/"+created.ID+"/status",
		gin.H{"status": "lets-do-this"}, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Status updated", decodeEnvelope(t, w).Message)

	w = doJSON(engine, http.MethodPut, "/api/admin/submissions/"+created.ID+"/status",
		gin.H{"status": "rejected"}, auth)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", decodeEnvelope(t, w).Message)

	// reply to it
	w = doJSON(engine, http.MethodPost, "/api/admin/submissions/"+created.ID+"/response",
		gin.H{"responseText": "On the agenda for next month"}, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Response added", decodeEnvelope(t, w).Message)

	// published overview includes it
	w = doJSON(engine, http.MethodGet, "/api/admin/published", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var published []struct {
		ID string `json:"id"`
	}
	dataField(t, w, &published)
	require.Len(t, published, 1)

	// delete it outright; deleting again still succeeds
	for i := 0; i < 2; i++ {
		w = doJSON(engine, http.MethodDelete, "/api/admin/submissions/"+created.ID, nil, auth)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Submission deleted", decodeEnvelope(t, w).Message)
	}
}

func TestAdminReject(t *testing.T) {
	engine, c := newTestServer(t)
	cookie := loginAdmin(t, engine)
	auth := requestOptions{cookies: []*http.Cookie{cookie}}

	w := doJSON(engine, http.MethodPost, "/api/submissions", validSubmission(), requestOptions{sessionID: "sess-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	dataField(t, w, &created)

	w = doJSON(engine, http.MethodDelete, "/api/admin/submissions/"+created.ID+"/reject", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Submission rejected and deleted", decodeEnvelope(t, w).Message)

	// rejection is a hard delete, the row is gone
	pending, err := c.SubmissionService.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)

	// rejecting an already-deleted id still reports success
	w = doJSON(engine, http.MethodDelete, "/api/admin/submissions/"+created.ID+"/reject", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCollaborationPipeline(t *testing.T) {
	engine, _ := newTestServer(t)
	cookie := loginAdmin(t, engine)
	auth := requestOptions{cookies: []*http.Cookie{cookie}}

	w := doJSON(engine, http.MethodPost, "/api/collaborations", gin.H{
		"contactName": "Sam Rivera",
		"email":       "sam@example.com",
		"offerings":   []string{"venue"},
	}, requestOptions{sessionID: "sess-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Collaboration offer submitted successfully", decodeEnvelope(t, w).Message)

	w = doJSON(engine, http.MethodGet, "/api/admin/collaborations", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var offers []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	dataField(t, w, &offers)
	require.Len(t, offers, 1)
	assert.Equal(t, "new", offers[0].Status)

	w = doJSON(engine, http.MethodPut, "/api/admin/collaborations/"+offers[0].ID,
		gin.H{"status": "contacted", "notes": "emailed on Friday"}, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Collaboration updated", decodeEnvelope(t, w).Message)

	w = doJSON(engine, http.MethodPut, "/api/admin/collaborations/"+offers[0].ID,
		gin.H{"status": "archived"}, auth)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(engine, http.MethodPut, "/api/admin/collaborations/missing-id",
		gin.H{"status": "contacted"}, auth)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Collaboration offer not found", decodeEnvelope(t, w).Message)
}

func TestCollaborationValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(engine, http.MethodPost, "/api/collaborations", gin.H{
		"contactName": "",
		"email":       "not-an-email",
	}, requestOptions{sessionID: "sess-1"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Errors, "Contact name is required")
	assert.Contains(t, env.Errors, "Valid email is required")
	assert.Contains(t, env.Errors, "At least one offering must be selected")
}

func TestCollaborationRateLimit(t *testing.T) {
	engine, _ := newTestServer(t)
	offer := gin.H{
		"contactName": "Sam Rivera",
		"email":       "sam@example.com",
		"offerings":   []string{"venue"},
	}

	for i := 0; i < 2; i++ {
		w := doJSON(engine, http.MethodPost, "/api/collaborations", offer, requestOptions{sessionID: "sess-1"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(engine, http.MethodPost, "/api/collaborations", offer, requestOptions{sessionID: "sess-1"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Rate limit exceeded. Maximum 2 collaborations per 24 hour(s).", decodeEnvelope(t, w).Message)
}
