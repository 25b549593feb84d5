package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memberinfra "teamflow-tracker/internal/infrastructure/member"
	projectinfra "teamflow-tracker/internal/infrastructure/project"
	taskinfra "teamflow-tracker/internal/infrastructure/task"
	httpiface "teamflow-tracker/internal/interface/http"
	"teamflow-tracker/internal/usecase/tracker"
)

// fixedNow はテスト用の固定時刻を返すヘルパー関数。
func fixedNow() time.Time {
	return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
}

// newTestServer はインメモリの Manager とルーターを組み立てる。
func newTestServer(t *testing.T) (http.Handler, *tracker.Manager) {
	t.Helper()

	m := tracker.NewManager(
		projectinfra.NewMemoryProjectRepository(),
		memberinfra.NewMemoryMemberRepository(),
		taskinfra.NewMemoryTaskRepository(),
		nil,
	)
	m.Now = fixedNow

	seq := 0
	m.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}

	return httpiface.NewRouter(m, nil), m
}

// do はリクエストを送り、レコーダーを返す。body が nil 以外なら JSON にする。
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// seedPortal は Portal プロジェクトに Carlos と Ana を参加させる。
func seedPortal(t *testing.T, h http.Handler) {
	t.Helper()

	expectStatus(t, do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Carlos Silva", "role": "Developer"}), http.StatusCreated)
	expectStatus(t, do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Ana Costa", "role": "Designer", "email": "ana@empresa.com"}), http.StatusCreated)
	expectStatus(t, do(t, h, http.MethodPost, "/api/projects", map[string]string{"name": "Portal", "description": "Novo portal"}), http.StatusCreated)
	expectStatus(t, do(t, h, http.MethodPost, "/api/projects/Portal/members", map[string]string{"member": "Carlos Silva"}), http.StatusNoContent)
	expectStatus(t, do(t, h, http.MethodPost, "/api/projects/Portal/members", map[string]string{"member": "Ana Costa"}), http.StatusNoContent)
}
