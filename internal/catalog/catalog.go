// Package catalog provides the portfolio's static content: folders and files
// browsed in the Finder, and the data behind every other window.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amiigood/folio/internal/window"
)

type Kind string

const (
	FileKind   Kind = "file"
	FolderKind Kind = "folder"
)

type FileType string

const (
	TextFile  FileType = "txt"
	URLFile   FileType = "url"
	ImageFile FileType = "img"
	PDFFile   FileType = "pdf"
)

// Entry is a file or folder. Entries are read-only once loaded.
type Entry struct {
	Name     string   `yaml:"name" json:"name"`
	Kind     Kind     `yaml:"kind" json:"kind"`
	FileType FileType `yaml:"fileType,omitempty" json:"fileType,omitempty"`
	Icon     string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	// Description is a sequence of paragraphs.
	Description []string `yaml:"description,omitempty" json:"description,omitempty"`
	Subtitle    string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	ImageURL    string   `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Href        string   `yaml:"href,omitempty" json:"href,omitempty"`
	Children    []*Entry `yaml:"children,omitempty" json:"children,omitempty"`
}

func (e *Entry) IsFolder() bool {
	return e.Kind == FolderKind
}

// ImageSource returns the entry's image reference, preferring the full image
// URL.
func (e *Entry) ImageSource() string {
	if e.ImageURL != "" {
		return e.ImageURL
	}
	return e.Image
}

func (e *Entry) String() string {
	return e.Name
}

// Location is a top-level folder, e.g. work or trash.
type Location struct {
	// Key identifies the location, e.g. "work".
	Key   string `yaml:"key"`
	Entry `yaml:",inline"`
}

// DockApp is an entry in the dock.
type DockApp struct {
	// ID is the window the app opens.
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Icon    string `yaml:"icon"`
	CanOpen bool   `yaml:"canOpen"`
}

// NavLink is an entry in the navbar.
type NavLink struct {
	Name   string `yaml:"name"`
	Window string `yaml:"window"`
}

type Welcome struct {
	Subtitle string `yaml:"subtitle"`
	Title    string `yaml:"title"`
	// SmallScreen is shown instead when the screen is too small.
	SmallScreen string `yaml:"smallScreen"`
}

type Experience struct {
	Company      string   `yaml:"company"`
	Position     string   `yaml:"position"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Description  []string `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

type Education struct {
	Institution string `yaml:"institution"`
	Degree      string `yaml:"degree"`
	Field       string `yaml:"field"`
	Period      string `yaml:"period"`
	Location    string `yaml:"location"`
}

type TechCategory struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Social struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

type Album struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

type Photo struct {
	Image string `yaml:"image"`
}

// Catalog is the whole of the portfolio's content.
type Catalog struct {
	Owner            string         `yaml:"owner"`
	Email            string         `yaml:"email"`
	Headline         string         `yaml:"headline"`
	Welcome          Welcome        `yaml:"welcome"`
	NavLinks         []NavLink      `yaml:"navLinks"`
	Dock             []DockApp      `yaml:"dock"`
	Locations        []*Location    `yaml:"locations"`
	Experiences      []Experience   `yaml:"experiences"`
	Education        []Education    `yaml:"education"`
	AdditionalSkills []string       `yaml:"additionalSkills"`
	TechStack        []TechCategory `yaml:"techStack"`
	Socials          []Social       `yaml:"socials"`
	Albums           []Album        `yaml:"albums"`
	Gallery          []Photo        `yaml:"gallery"`
}

// Location retrieves a location by its key.
func (c *Catalog) Location(key string) (*Location, bool) {
	for _, loc := range c.Locations {
		if loc.Key == key {
			return loc, true
		}
	}
	return nil, false
}

// Find searches every location, depth first, for an entry with the given
// name. The search is case-insensitive.
func (c *Catalog) Find(name string) (*Entry, bool) {
	var find func(entries []*Entry) *Entry
	find = func(entries []*Entry) *Entry {
		for _, e := range entries {
			if strings.EqualFold(e.Name, name) {
				return e
			}
			if found := find(e.Children); found != nil {
				return found
			}
		}
		return nil
	}
	for _, loc := range c.Locations {
		if found := find(loc.Children); found != nil {
			return found, true
		}
	}
	return nil, false
}

// Validate checks every entry has a valid kind and, for files, a valid file
// type, and that the dock and navbar only open known windows.
func (c *Catalog) Validate() error {
	var errs []error
	var validate func(path string, e *Entry)
	validate = func(path string, e *Entry) {
		if e == nil {
			errs = append(errs, fmt.Errorf("%s: empty entry", path))
			return
		}
		path = path + "/" + e.Name
		switch e.Kind {
		case FolderKind:
			for _, child := range e.Children {
				validate(path, child)
			}
		case FileKind:
			switch e.FileType {
			case TextFile, URLFile, ImageFile, PDFFile:
			default:
				errs = append(errs, fmt.Errorf("%s: invalid file type: %q", path, e.FileType))
			}
			if len(e.Children) > 0 {
				errs = append(errs, fmt.Errorf("%s: file cannot have children", path))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: invalid kind: %q", path, e.Kind))
		}
	}
	for i, loc := range c.Locations {
		if loc == nil {
			errs = append(errs, fmt.Errorf("location %d: empty entry", i))
			continue
		}
		validate("", &loc.Entry)
	}
	for _, app := range c.Dock {
		switch {
		case app.ID == "":
			errs = append(errs, fmt.Errorf("dock app %q: missing id", app.Name))
		case app.CanOpen:
			if _, err := window.ParseID(app.ID); err != nil {
				errs = append(errs, fmt.Errorf("dock app %q: %w", app.Name, err))
			}
		}
	}
	for _, link := range c.NavLinks {
		if _, err := window.ParseID(link.Window); err != nil {
			errs = append(errs, fmt.Errorf("nav link %q: %w", link.Name, err))
		}
	}
	return errors.Join(errs...)
}
