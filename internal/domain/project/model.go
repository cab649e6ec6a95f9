package project

// Project is a single portfolio entry. Records are fixed once a Catalog is built.
type Project struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Category         string   `json:"category" yaml:"category"`
	Year             int      `json:"year" yaml:"year"`
	ShortDescription string   `json:"short_description" yaml:"short_description"`
	Description      string   `json:"description" yaml:"description"`
	ThumbnailURL     string   `json:"thumbnail_url" yaml:"thumbnail_url"`
	Images           []string `json:"images" yaml:"images"`
	IsFeatured       bool     `json:"is_featured" yaml:"is_featured"`
	Techniques       []string `json:"techniques" yaml:"techniques"`
	VideoEmbedURL    string   `json:"video_embed_url,omitempty" yaml:"video_embed_url,omitempty"`
	Collaborators    []string `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
	Duration         string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Role             string   `json:"role,omitempty" yaml:"role,omitempty"`
}

// clone returns a copy that shares no slices with p.
func (p Project) clone() Project {
	p.Images = cloneStrings(p.Images)
	p.Techniques = cloneStrings(p.Techniques)
	p.Collaborators = cloneStrings(p.Collaborators)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// FeaturedCard is the hero/carousel projection of a featured project.
type FeaturedCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Featured    bool   `json:"featured"`
}

// GalleryCard is the grid projection used by the gallery.
type GalleryCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Year        int      `json:"year"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Detail is the view model for the project detail viewer.
type Detail struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Category        string   `json:"category"`
	Year            int      `json:"year"`
	Duration        string   `json:"duration,omitempty"`
	Director        string   `json:"director"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	Images          []string `json:"images"`
	VideoURL        string   `json:"video_url,omitempty"`
	Role            string   `json:"role"`
	Techniques      []string `json:"techniques"`
	Collaborators   []string `json:"collaborators,omitempty"`
}
