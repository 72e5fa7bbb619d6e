package server

import (
	"net/http"

	"github.com/go-chi/chi"
)

func (s server) listLessons(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /lessons Lessons ListLessons
	//
	// Returns lessons with a progress summary.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Lessons
	//     schema:
	//       "$ref": "#/definitions/ListLessonsResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	lessons, sum, err := s.s.ListLessons(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list lessons: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, ListLessonsResponse{
		Lessons: toAPILessons(lessons),
		Summary: toAPILessonSummary(sum),
	})
}

func (s server) getLesson(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /lessons/{id} Lessons GetLesson
	//
	// Returns a lesson with display style of its status.
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
	//     description: Lesson
	//     schema:
	//       "$ref": "#/definitions/GetLessonResponse"
	//   '404':
	//     description: lesson not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	l, err := s.s.GetLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "lesson")
		return
	}

	resp := GetLessonResponse{Lesson: toAPILesson(l)}
	for _, v := range s.s.Styles(r.Context()).StatusStyles {
		if v.Key == string(l.Status) {
			resp.StatusStyle = &Style{Key: v.Key, Label: v.Label, Color: v.Color, Bg: v.Bg}
			break
		}
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) completeLesson(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /lessons/{id}/complete Lessons CompleteLesson
	//
	// Marks a lesson completed regardless of its current status.
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
	//     description: Lesson
	//     schema:
	//       "$ref": "#/definitions/Lesson"
	//   '404':
	//     description: lesson not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	l, err := s.s.CompleteLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "lesson")
		return
	}

	writeOK(w, http.StatusOK, toAPILesson(l))
}
