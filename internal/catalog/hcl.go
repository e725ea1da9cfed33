package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// The HCL rendition of the catalog uses labelled blocks in place of lists of
// objects, e.g.
//
//	location "work" {
//	  name = "Work"
//	  item "Spotify Clone" {
//	    kind = "folder"
//	    item "spotify.png" {
//	      kind      = "file"
//	      file_type = "img"
//	      image_url = "/images/project-1.png"
//	    }
//	  }
//	}
type hclCatalog struct {
	Owner            string          `hcl:"owner,optional"`
	Email            string          `hcl:"email,optional"`
	Headline         string          `hcl:"headline,optional"`
	Welcome          *hclWelcome     `hcl:"welcome,block"`
	NavLinks         []hclNavLink    `hcl:"nav,block"`
	Dock             []hclDockApp    `hcl:"dock,block"`
	Locations        []hclLocation   `hcl:"location,block"`
	Experiences      []hclExperience `hcl:"experience,block"`
	Education        []hclEducation  `hcl:"education,block"`
	AdditionalSkills []string        `hcl:"additional_skills,optional"`
	TechStack        []hclTech       `hcl:"tech,block"`
	Socials          []hclSocial     `hcl:"social,block"`
	Albums           []hclAlbum      `hcl:"album,block"`
	Gallery          []string        `hcl:"gallery,optional"`
}

type hclWelcome struct {
	Subtitle    string `hcl:"subtitle"`
	Title       string `hcl:"title"`
	SmallScreen string `hcl:"small_screen,optional"`
}

type hclNavLink struct {
	Name   string `hcl:"name,label"`
	Window string `hcl:"window"`
}

type hclDockApp struct {
	ID      string `hcl:"id,label"`
	Name    string `hcl:"name"`
	Icon    string `hcl:"icon,optional"`
	CanOpen bool   `hcl:"can_open,optional"`
}

type hclLocation struct {
	Key   string      `hcl:"key,label"`
	Name  string      `hcl:"name"`
	Icon  string      `hcl:"icon,optional"`
	Items []*hclEntry `hcl:"item,block"`
}

type hclEntry struct {
	Name        string      `hcl:"name,label"`
	Kind        string      `hcl:"kind"`
	FileType    string      `hcl:"file_type,optional"`
	Icon        string      `hcl:"icon,optional"`
	Description []string    `hcl:"description,optional"`
	Subtitle    string      `hcl:"subtitle,optional"`
	Image       string      `hcl:"image,optional"`
	ImageURL    string      `hcl:"image_url,optional"`
	Href        string      `hcl:"href,optional"`
	Items       []*hclEntry `hcl:"item,block"`
}

type hclExperience struct {
	Company      string   `hcl:"company,label"`
	Position     string   `hcl:"position"`
	Period       string   `hcl:"period"`
	Location     string   `hcl:"location,optional"`
	Description  []string `hcl:"description,optional"`
	Technologies []string `hcl:"technologies,optional"`
}

type hclEducation struct {
	Institution string `hcl:"institution,label"`
	Degree      string `hcl:"degree"`
	Field       string `hcl:"field,optional"`
	Period      string `hcl:"period,optional"`
	Location    string `hcl:"location,optional"`
}

type hclTech struct {
	Category string   `hcl:"category,label"`
	Items    []string `hcl:"items"`
}

type hclSocial struct {
	Text string `hcl:"text,label"`
	Link string `hcl:"link"`
}

type hclAlbum struct {
	Title string `hcl:"title,label"`
	Icon  string `hcl:"icon,optional"`
}

func parseHCL(filename string, src []byte) (*Catalog, error) {
	var raw hclCatalog
	if err := hclsimple.Decode(filename, src, nil, &raw); err != nil {
		return nil, err
	}
	cat := raw.convert()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (raw *hclCatalog) convert() *Catalog {
	cat := &Catalog{
		Owner:            raw.Owner,
		Email:            raw.Email,
		Headline:         raw.Headline,
		AdditionalSkills: raw.AdditionalSkills,
	}
	if raw.Welcome != nil {
		cat.Welcome = Welcome{
			Subtitle:    raw.Welcome.Subtitle,
			Title:       raw.Welcome.Title,
			SmallScreen: raw.Welcome.SmallScreen,
		}
	}
	for _, link := range raw.NavLinks {
		cat.NavLinks = append(cat.NavLinks, NavLink{Name: link.Name, Window: link.Window})
	}
	for _, app := range raw.Dock {
		cat.Dock = append(cat.Dock, DockApp{
			ID:      app.ID,
			Name:    app.Name,
			Icon:    app.Icon,
			CanOpen: app.CanOpen,
		})
	}
	for _, loc := range raw.Locations {
		cat.Locations = append(cat.Locations, &Location{
			Key: loc.Key,
			Entry: Entry{
				Name:     loc.Name,
				Kind:     FolderKind,
				Icon:     loc.Icon,
				Children: convertEntries(loc.Items),
			},
		})
	}
	for _, exp := range raw.Experiences {
		cat.Experiences = append(cat.Experiences, Experience{
			Company:      exp.Company,
			Position:     exp.Position,
			Period:       exp.Period,
			Location:     exp.Location,
			Description:  exp.Description,
			Technologies: exp.Technologies,
		})
	}
	for _, edu := range raw.Education {
		cat.Education = append(cat.Education, Education{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Field:       edu.Field,
			Period:      edu.Period,
			Location:    edu.Location,
		})
	}
	for _, tech := range raw.TechStack {
		cat.TechStack = append(cat.TechStack, TechCategory{Category: tech.Category, Items: tech.Items})
	}
	for _, social := range raw.Socials {
		cat.Socials = append(cat.Socials, Social{Text: social.Text, Link: social.Link})
	}
	for _, album := range raw.Albums {
		cat.Albums = append(cat.Albums, Album{Title: album.Title, Icon: album.Icon})
	}
	for _, img := range raw.Gallery {
		cat.Gallery = append(cat.Gallery, Photo{Image: img})
	}
	return cat
}

func convertEntries(items []*hclEntry) []*Entry {
	var entries []*Entry
	for _, item := range items {
		entries = append(entries, &Entry{
			Name:        item.Name,
			Kind:        Kind(item.Kind),
			FileType:    FileType(item.FileType),
			Icon:        item.Icon,
			Description: item.Description,
			Subtitle:    item.Subtitle,
			Image:       item.Image,
			ImageURL:    item.ImageURL,
			Href:        item.Href,
			Children:    convertEntries(item.Items),
		})
	}
	return entries
}
