package project

const (
	defaultDirector = "Self-directed"
	defaultRole     = "Director, Cinematographer"
)

// FeaturedCards projects the featured subset for hero and carousel views.
func (c *Catalog) FeaturedCards() []FeaturedCard {
	featured := c.ListFeatured()
	cards := make([]FeaturedCard, 0, len(featured))
	for _, p := range featured {
		cards = append(cards, NewFeaturedCard(p))
	}
	return cards
}

// GalleryCards projects every project for the gallery grid.
func (c *Catalog) GalleryCards() []GalleryCard {
	return NewGalleryCards(c.ListAll())
}

// DetailByID builds the detail view model for id.
func (c *Catalog) DetailByID(id string) (Detail, bool) {
	p, ok := c.GetByID(id)
	if !ok {
		return Detail{}, false
	}
	return NewDetail(p), true
}

// NewFeaturedCard adapts a project to a FeaturedCard.
func NewFeaturedCard(p Project) FeaturedCard {
	return FeaturedCard{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Thumbnail:   p.ThumbnailURL,
		Featured:    p.IsFeatured,
	}
}

// NewGalleryCards adapts projects to gallery cards, keeping their order.
func NewGalleryCards(projects []Project) []GalleryCard {
	cards := make([]GalleryCard, 0, len(projects))
	for _, p := range projects {
		tags := cloneStrings(p.Techniques)
		if tags == nil {
			tags = []string{}
		}
		cards = append(cards, GalleryCard{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Year:        p.Year,
			Thumbnail:   p.ThumbnailURL,
			Description: p.ShortDescription,
			Tags:        tags,
		})
	}
	return cards
}

// NewDetail adapts a project to the detail view model. Director falls back
// to "Self-directed" when there are no collaborators.
func NewDetail(p Project) Detail {
	director := defaultDirector
	if len(p.Collaborators) > 0 {
		director = p.Collaborators[0]
	}
	role := p.Role
	if role == "" {
		role = defaultRole
	}
	images := cloneStrings(p.Images)
	if images == nil {
		images = []string{}
	}
	techniques := cloneStrings(p.Techniques)
	if techniques == nil {
		techniques = []string{}
	}
	return Detail{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.ShortDescription,
		LongDescription: p.Description,
		Category:        p.Category,
		Year:            p.Year,
		Duration:        p.Duration,
		Director:        director,
		ThumbnailURL:    p.ThumbnailURL,
		Images:          images,
		VideoURL:        p.VideoEmbedURL,
		Role:            role,
		Techniques:      techniques,
		Collaborators:   cloneStrings(p.Collaborators),
	}
}
