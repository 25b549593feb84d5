package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teamflow-tracker/internal/usecase/tracker"
)

// NewRouter は Manager を公開する JSON API のルーターを組み立てる。
func NewRouter(manager *tracker.Manager, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	projects := NewProjectHandler(manager, logger)
	members := NewMemberHandler(manager, logger)
	tasks := NewTaskHandler(manager, logger)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, http.StatusNotFound, "not found", "no such route")
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	// タイトルに含まれる %2F をパス区切りとして扱わない
	r := mux.NewRouter().UseEncodedPath()
	r.Use(recoverMiddleware(logger), requestLogger(logger))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = methodNotAllowed

	api.HandleFunc("/projects", projects.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/projects", projects.handleList).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project}/report", projects.handleReport).Methods(http.MethodGet)
	api.HandleFunc("/projects/{project}/members", projects.handleAddMember).Methods(http.MethodPost)
	api.HandleFunc("/projects/{project}/tasks", tasks.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/projects/{project}/tasks/{title}/start", tasks.handleStart).Methods(http.MethodPost)
	api.HandleFunc("/projects/{project}/tasks/{title}/complete", tasks.handleComplete).Methods(http.MethodPost)

	api.HandleFunc("/members", members.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/members", members.handleList).Methods(http.MethodGet)
	api.HandleFunc("/members/{member}/report", members.handleReport).Methods(http.MethodGet)

	api.HandleFunc("/tasks", tasks.handleList).Methods(http.MethodGet)
	api.HandleFunc("/tasks/lookup", tasks.handleLookup).Methods(http.MethodGet)

	return r
}
