package server

import (
	"fmt"
	"net/http"

	"github.com/wellness-hub/wellness/internal/actions"
)

func (s server) applyActions(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /actions Session ApplyActions
	//
	// Applies actions in order. Processing stops at the first failed action,
	// actions before it stay applied.
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
	//     "$ref": "#/definitions/ActionsRequest"
	// responses:
	//   '200':
	//     description: Results
	//     schema:
	//       "$ref": "#/definitions/ActionsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: addressed record not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ActionsRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := ActionsResponse{Results: make([]ActionResult, 0, len(req.Actions))}
	for i, a := range req.Actions {
		res, err := actions.Apply(r.Context(), s.s, a)
		if err != nil {
			writeServiceError(r.Context(), w, err, fmt.Sprintf("action %d: %s %s", i, a.Type, a.ID))
			return
		}
		resp.Results = append(resp.Results, toAPIActionResult(a.Type, res))
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) resetSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /session/reset Session ResetSession
	//
	// Restores every collection of the session to seed data.
	//
	// ---
	// responses:
	//   '204':
	//     description: Session reset
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.Reset(r.Context()); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to reset session: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
