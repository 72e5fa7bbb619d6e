package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/service"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Community ListPosts
	//
	// Returns community posts, newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: tag
	//   description: filters posts by tag, All or empty returns every post
	//   in: query
	//   required: false
	//   type: string
	//   enum: [All, Pregnancy, Mental Health]
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: unknown tag
	//     schema:
	//       "$ref": "#/definitions/Error"

	posts, err := s.s.ListPosts(r.Context(), entities.Tag(r.URL.Query().Get("tag")))
	if err != nil {
		writeServiceError(r.Context(), w, err, "posts")
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Community GetPost
	//
	// Returns a post with its comments.
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
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) addPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Community AddPost
	//
	// Puts a new post of the session author in front of the feed.
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
	//     "$ref": "#/definitions/AddPostRequest"
	// responses:
	//   '201':
	//     description: Post created
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AddPostRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.AddPost(r.Context(), service.AddPostParams{
		Text: req.Text,
		Tag:  entities.Tag(req.Tag),
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "post")
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Community ToggleLike
	//
	// Flips liked flag of a post and adjusts its like count by one.
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
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.ToggleLike(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/comments Community AddComment
	//
	// Appends a comment of the session author to a post.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AddCommentRequest"
	// responses:
	//   '201':
	//     description: Post with the new comment
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AddCommentRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.AddComment(r.Context(), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		writeServiceError(r.Context(), w, err, "post")
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(p))
}
