package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taha-HB/sit-council-system/internal/config"
	"github.com/Taha-HB/sit-council-system/internal/constants"
	"github.com/Taha-HB/sit-council-system/internal/models"
	"github.com/Taha-HB/sit-council-system/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Upload: config.UploadConfig{Dir: t.TempDir()},
		Auth:   config.AuthConfig{TokenIssuer: "demo"},
		Env:    "test",
	}

	base := time.UnixMilli(1700000000000)
	calls := int64(0)
	s := store.NewWithClock(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	})

	return SetupRouter(s, cfg), s
}

func doJSON(router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "SIT Council API is running", body["message"])
}

func TestLoginRedactsPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "president@sit.edu",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "Ibrahim", user["firstName"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password must never serialize")
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "president@sit.edu",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	_, hasToken := body["token"]
	assert.False(t, hasToken)
}

func TestGoogleLoginFabricatesDemoIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/google", "", map[string]string{"token": "anything"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["token"].(string), "google-token-"))

	user := body["user"].(map[string]any)
	assert.Equal(t, float64(1000), user["id"])
	assert.Equal(t, "Member", user["role"])
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/meetings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/meetings", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeetingLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	memberToken := loginAs(t, router, "president@sit.edu")

	// Create
	w := doJSON(router, http.MethodPost, "/api/meetings", memberToken, map[string]any{
		"title": "Budget Review",
		"date":  "2030-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	meeting := body["meeting"].(map[string]any)
	assert.Equal(t, "Budget Review", meeting["title"])
	_, archivedPresent := meeting["archived"]
	assert.False(t, archivedPresent, "archived must be absent until the meeting is archived")

	meetingID := int64(meeting["id"].(float64))

	// List includes it
	w = doJSON(router, http.MethodGet, "/api/meetings", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meetings []models.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meetings))
	require.Len(t, meetings, 1)
	assert.Equal(t, "Budget Review", meetings[0].Title)

	// Archive is Secretary-only
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/meetings/%d/archive", meetingID), memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	secretaryToken := loginAs(t, router, "secretary@sit.edu")
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/meetings/%d/archive", meetingID), secretaryToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body = decodeBody(t, w)
	archived := body["meeting"].(map[string]any)
	assert.Equal(t, true, archived["archived"])
	assert.NotEmpty(t, archived["archivedAt"])

	// Archiving twice leaves archived=true both times
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/meetings/%d/archive", meetingID), secretaryToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, true, body["meeting"].(map[string]any)["archived"])

	// Unknown id
	w = doJSON(router, http.MethodPut, "/api/meetings/999/archive", secretaryToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestMinutesSecretaryOnly(t *testing.T) {
	router, _ := newTestRouter(t)

	memberToken := loginAs(t, router, "member@sit.edu")
	w := doJSON(router, http.MethodPost, "/api/minutes", memberToken, map[string]any{
		"content": "Opening remarks",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	secretaryToken := loginAs(t, router, "secretary@sit.edu")
	w = doJSON(router, http.MethodPost, "/api/minutes", secretaryToken, map[string]any{
		"content": "Opening remarks",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	minutes := body["minutes"].(map[string]any)
	assert.Equal(t, float64(2), minutes["createdBy"])

	// Listing is open to any authenticated caller
	w = doJSON(router, http.MethodGet, "/api/minutes", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored []models.Minutes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Opening remarks", stored[0].Content)
}

func TestAnnouncementAuthorResolvedAtCreation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "secretary@sit.edu")

	w := doJSON(router, http.MethodPost, "/api/announcements", token, map[string]any{
		"title":   "General Assembly",
		"content": "Friday, 10am",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	announcement := body["announcement"].(map[string]any)
	assert.Equal(t, "Aisha Abdullahi", announcement["author"])

	w = doJSON(router, http.MethodGet, "/api/announcements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var announcements []models.Announcement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &announcements))
	require.Len(t, announcements, 1)
	assert.Equal(t, "Aisha Abdullahi", announcements[0].Author)
}

type uploadSpec struct {
	filename    string
	contentType string
	content     string
}

func uploadRequest(t *testing.T, token string, files []uploadSpec) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.filename))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadFilterIsAnOrCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	// Allowed extension, disallowed declared type: accepted.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "notes.txt", contentType: "application/octet-stream", content: "hello"},
	}))
	assert.Equal(t, http.StatusOK, w.Code)

	// Disallowed extension, allowed declared type: accepted.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "report.bin", contentType: "application/pdf", content: "%PDF-"},
	}))
	assert.Equal(t, http.StatusOK, w.Code)

	// Neither matches: the whole request is rejected.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "payload.bin", contentType: "application/octet-stream", content: "x"},
	}))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	// One bad file fails the batch, valid siblings included.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "agenda.pdf", contentType: "application/pdf", content: "%PDF-"},
		{filename: "payload.bin", contentType: "application/octet-stream", content: "x"},
	}))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestUploadServesStoredFile(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "notes.txt", contentType: "text/plain", content: "meeting notes"},
	}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Files []models.UploadedFile `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 1)

	file := resp.Files[0]
	assert.Equal(t, "notes.txt", file.Name)
	assert.Equal(t, int64(len("meeting notes")), file.Size)
	assert.True(t, strings.HasPrefix(file.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(file.URL, ".txt"))

	// Uploaded files are served back as raw bytes, no auth required.
	w = doJSON(router, http.MethodGet, file.URL, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "meeting notes", w.Body.String())
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	// One byte past the per-file limit; allowed type and extension, so
	// only the size check can reject it.
	oversize := strings.Repeat("a", constants.MaxUploadBytes+1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, []uploadSpec{
		{filename: "big.pdf", contentType: "application/pdf", content: oversize},
	}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestUploadRejectsTooManyFiles(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	files := make([]uploadSpec, 11)
	for i := range files {
		files[i] = uploadSpec{
			filename:    fmt.Sprintf("doc-%d.txt", i),
			contentType: "text/plain",
			content:     "x",
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, token, files))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePDFStub(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	w := doJSON(router, http.MethodPost, "/api/generate-pdf", token, map[string]any{
		"meetingId": 1700000000001,
		"template":  "standard",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["downloadUrl"].(string), "/api/pdf/"))
	assert.True(t, strings.HasSuffix(body["downloadUrl"].(string), ".pdf"))
}

func TestDashboardStats(t *testing.T) {
	router, s := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	s.AddMeeting(models.Meeting{Title: "Past", Date: "2020-01-01"})
	s.AddMeeting(models.Meeting{Title: "Upcoming", Date: "2030-01-01"})
	s.AddMeeting(models.Meeting{Title: "Undated", Date: "sometime"})

	w := doJSON(router, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalMeetings)
	assert.Equal(t, 1, stats.UpcomingMeetings)
	assert.Equal(t, 5, stats.MemberCount)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.Equal(t, 85, stats.AverageAttendance)
}

func TestLeaderboard(t *testing.T) {
	router, s := newTestRouter(t)
	token := loginAs(t, router, "president@sit.edu")

	w := doJSON(router, http.MethodGet, "/api/leaderboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board []models.RankedUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board, s.MemberCount())

	// Scores are random; only the ordering is checked.
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Performance, board[i].Performance)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/meetings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
