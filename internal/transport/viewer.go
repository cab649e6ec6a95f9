package transport

import (
	"context"
	"net/http"

	"github.com/rpggio/reel/internal/domain/carousel"
	"github.com/rpggio/reel/internal/domain/gallery"
	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/domain/session"
)

type viewerKey struct{}

func viewerFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(viewerKey{}).(*session.Session)
	return sess
}

// GalleryView is the client-facing gallery state.
type GalleryView struct {
	Filters    gallery.FilterState   `json:"filters"`
	Projects   []project.GalleryCard `json:"projects"`
	Count      int                   `json:"count"`
	DetailOpen bool                  `json:"detail_open"`
	Detail     *project.Detail       `json:"detail,omitempty"`
}

// CarouselView is the client-facing carousel state.
type CarouselView struct {
	carousel.State
	Slide  *project.FeaturedCard  `json:"slide,omitempty"`
	Slides []project.FeaturedCard `json:"slides"`
	Moved  *bool                  `json:"moved,omitempty"`
}

// SessionView is returned when a viewer session opens.
type SessionView struct {
	Session  session.Info `json:"session"`
	Gallery  GalleryView  `json:"gallery"`
	Carousel CarouselView `json:"carousel"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type categoryRequest struct {
	Category *string `json:"category"`
}

type yearRequest struct {
	Year *int `json:"year"`
}

type selectRequest struct {
	ID string `json:"id"`
}

type gotoRequest struct {
	Index *int `json:"index"`
}

func newGalleryView(g *gallery.Controller) GalleryView {
	state := g.Snapshot()
	cards := project.NewGalleryCards(state.Visible)
	view := GalleryView{
		Filters:    state.Filters,
		Projects:   cards,
		Count:      len(cards),
		DetailOpen: state.DetailOpen,
	}
	if state.Selected != nil {
		detail := project.NewDetail(*state.Selected)
		view.Detail = &detail
	}
	return view
}

func newCarouselView(sess *session.Session) CarouselView {
	featured := sess.Featured()
	slides := make([]project.FeaturedCard, 0, len(featured))
	for _, p := range featured {
		slides = append(slides, project.NewFeaturedCard(p))
	}
	view := CarouselView{State: sess.Carousel.State(), Slides: slides}
	if current, ok := sess.CurrentSlide(); ok {
		card := project.NewFeaturedCard(current)
		view.Slide = &card
	}
	return view
}

// requireSession resolves the Reel-Session-Id header to an open session.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, CodeMissingSession, SessionHeader+" header required")
			return
		}
		sess, err := s.sessions.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), viewerKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Open(r.Context())
	if err != nil {
		s.logger.Error("failed to open session", "error", err)
		writeDomainError(w, err)
		return
	}

	w.Header().Set(SessionHeader, sess.ID)
	WriteJSON(w, http.StatusCreated, SessionView{
		Session:  sess.Info(),
		Gallery:  newGalleryView(sess.Gallery),
		Carousel: newCarouselView(sess),
	})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	sess := viewerFromContext(r.Context())
	if err := s.sessions.Close(r.Context(), sess.ID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, newGalleryView(viewerFromContext(r.Context()).Gallery))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	g := viewerFromContext(r.Context()).Gallery
	g.ApplySearch(req.Query)
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	g := viewerFromContext(r.Context()).Gallery
	g.ApplyCategory(req.Category)
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	if req.Category == nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "category is required")
		return
	}
	g := viewerFromContext(r.Context()).Gallery
	g.ToggleCategory(*req.Category)
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	var req yearRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	g := viewerFromContext(r.Context()).Gallery
	g.ApplyYear(req.Year)
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleClearFilters(w http.ResponseWriter, r *http.Request) {
	g := viewerFromContext(r.Context()).Gallery
	g.ClearFilters()
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	g := viewerFromContext(r.Context()).Gallery
	if !g.SelectByID(req.ID) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "project not found")
		return
	}
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleCloseDetail(w http.ResponseWriter, r *http.Request) {
	g := viewerFromContext(r.Context()).Gallery
	g.CloseDetail()
	WriteJSON(w, http.StatusOK, newGalleryView(g))
}

func (s *Server) handleCarousel(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, newCarouselView(viewerFromContext(r.Context())))
}

func (s *Server) handleCarouselNext(w http.ResponseWriter, r *http.Request) {
	sess := viewerFromContext(r.Context())
	sess.Carousel.Next()
	WriteJSON(w, http.StatusOK, newCarouselView(sess))
}

func (s *Server) handleCarouselPrevious(w http.ResponseWriter, r *http.Request) {
	sess := viewerFromContext(r.Context())
	sess.Carousel.Previous()
	WriteJSON(w, http.StatusOK, newCarouselView(sess))
}

// handleCarouselGoTo reports an out-of-range index as moved=false rather
// than an error; the carousel is left untouched.
func (s *Server) handleCarouselGoTo(w http.ResponseWriter, r *http.Request) {
	var req gotoRequest
	if err := DecodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	if req.Index == nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "index is required")
		return
	}
	sess := viewerFromContext(r.Context())
	_, moved := sess.Carousel.GoTo(*req.Index)
	view := newCarouselView(sess)
	view.Moved = &moved
	WriteJSON(w, http.StatusOK, view)
}
