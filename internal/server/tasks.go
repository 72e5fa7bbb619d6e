package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/wellness-hub/wellness/internal/service"
)

func (s server) listTasks(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /tasks Tasks ListTasks
	//
	// Returns daily tasks in insertion order with completion progress.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Tasks
	//     schema:
	//       "$ref": "#/definitions/ListTasksResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	tasks, p, err := s.s.ListTasks(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list tasks: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, ListTasksResponse{
		Tasks:    toAPITasks(tasks),
		Progress: toAPITaskProgress(p),
	})
}

func (s server) getTask(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /tasks/{id} Tasks GetTask
	//
	// Returns a task.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Task
	//     schema:
	//       "$ref": "#/definitions/Task"
	//   '404':
	//     description: task not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	t, err := s.s.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "task")
		return
	}

	writeOK(w, http.StatusOK, toAPITask(t))
}

func (s server) addTask(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /tasks Tasks AddTask
	//
	// Appends a task. Blank title is rejected and nothing changes.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AddTaskRequest"
	// responses:
	//   '201':
	//     description: Task created
	//     schema:
	//       "$ref": "#/definitions/Task"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AddTaskRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := s.s.AddTask(r.Context(), service.AddTaskParams{
		Title:    req.Title,
		Category: req.Category,
		Icon:     req.Icon,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "task")
		return
	}

	writeOK(w, http.StatusCreated, toAPITask(t))
}

func (s server) toggleTask(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /tasks/{id}/toggle Tasks ToggleTask
	//
	// Flips task completion.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Task
	//     schema:
	//       "$ref": "#/definitions/Task"
	//   '404':
	//     description: task not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	t, err := s.s.ToggleTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "task")
		return
	}

	writeOK(w, http.StatusOK, toAPITask(t))
}
