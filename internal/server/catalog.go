package server

import (
	"net/http"

	"github.com/go-chi/chi"
)

func (s server) listCategories(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /categories Catalog ListCategories
	//
	// Returns content categories. Response is cached.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: q
	//   description: case-insensitive title search
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Categories
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Category"

	writeOK(w, http.StatusOK, toAPICategories(s.s.ListCategories(r.Context(), r.URL.Query().Get("q"))))
}

func (s server) getCategory(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /categories/{id} Catalog GetCategory
	//
	// Returns a category with up to three related lessons of the session and its articles.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	//   example: sleep-fertility
	// responses:
	//   '200':
	//     description: Category detail
	//     schema:
	//       "$ref": "#/definitions/CategoryDetailResponse"
	//   '404':
	//     description: category not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	d, err := s.s.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "category")
		return
	}

	writeOK(w, http.StatusOK, CategoryDetailResponse{
		Category:       toAPICategory(d.Category),
		RelatedLessons: toAPILessons(d.RelatedLessons),
		Articles:       toAPIArticles(d.Articles),
	})
}

func (s server) listArticles(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /articles Catalog ListArticles
	//
	// Returns articles. Response is cached.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: category
	//   description: filters articles by category id
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Articles
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Article"

	writeOK(w, http.StatusOK, toAPIArticles(s.s.ListArticles(r.Context(), r.URL.Query().Get("category"))))
}

func (s server) getStyles(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /styles Catalog GetStyles
	//
	// Returns display styles of tags and lesson statuses, task icons and categories. Response is cached.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Styles
	//     schema:
	//       "$ref": "#/definitions/StylesResponse"

	writeOK(w, http.StatusOK, toAPIStylesResponse(s.s.Styles(r.Context())))
}

func (s server) getHome(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /home Catalog GetHome
	//
	// Returns the home dashboard.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: q
	//   description: case-insensitive category title search
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Home dashboard
	//     schema:
	//       "$ref": "#/definitions/HomeResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	h, err := s.s.Home(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get home: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIHome(h))
}
