package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/project"
)

// HomeView composes the landing page: hero carousel, gallery and facets.
type HomeView struct {
	Featured   []project.FeaturedCard `json:"featured"`
	Projects   []project.GalleryCard  `json:"projects"`
	Categories []string               `json:"categories"`
	Years      []int                  `json:"years"`
}

type featuredResponse struct {
	Featured []project.FeaturedCard `json:"featured"`
}

type projectsResponse struct {
	Projects []project.GalleryCard `json:"projects"`
	Count    int                   `json:"count"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type yearsResponse struct {
	Years []int `json:"years"`
}

func (s *Server) handleHomeView(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, HomeView{
		Featured:   s.catalog.FeaturedCards(),
		Projects:   s.catalog.GalleryCards(),
		Categories: s.catalog.ListCategories(),
		Years:      s.catalog.ListYears(),
	})
}

func (s *Server) handleFeaturedView(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, featuredResponse{Featured: s.catalog.FeaturedCards()})
}

func (s *Server) handleAboutView(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, s.profile)
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	s.handleFeaturedView(w, r)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, categoriesResponse{Categories: s.catalog.ListCategories()})
}

func (s *Server) handleYears(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, yearsResponse{Years: s.catalog.ListYears()})
}

// handleListProjects runs the gallery filter statelessly from query params.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := gallery.FilterState{SearchQuery: query.Get("q")}
	if query.Has("category") {
		category := query.Get("category")
		state.Category = &category
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "year must be an integer")
			return
		}
		state.Year = &year
	}

	cards := project.NewGalleryCards(gallery.Filter(s.catalog, state))
	WriteJSON(w, http.StatusOK, projectsResponse{Projects: cards, Count: len(cards)})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := s.catalog.GetByID(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusNotFound, CodeNotFound, "project not found")
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok := s.catalog.DetailByID(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusNotFound, CodeNotFound, "project not found")
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}
