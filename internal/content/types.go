package content

import (
	"fmt"
	"strings"
)

// Catalog is everything the site renders that is not code: restaurant details,
// page copy, the menu and the image lists. It is loaded once and then only read.
type Catalog struct {
	Site         Site         `validate:"required"`
	Home         Home         `validate:"required"`
	Menu         Menu         `validate:"required"`
	Tasting      Tasting      `validate:"required"`
	Gallery      Gallery      `validate:"required"`
	Testimonials Testimonials `validate:"required"`
	About        About        `validate:"required"`

	items map[string]MenuItem
}

// Site describes the restaurant itself.
type Site struct {
	Name        string    `yaml:"name" validate:"required"`
	FullName    string    `yaml:"full_name" validate:"required"`
	Slogan      string    `yaml:"slogan"`
	Tagline     string    `yaml:"tagline"`
	Founded     int       `yaml:"founded" validate:"gte=1900"`
	Address     Address   `yaml:"address" validate:"required"`
	Phone       string    `yaml:"phone" validate:"required"`
	Email       string    `yaml:"email" validate:"required,email"`
	Hours       string    `yaml:"hours" validate:"required"`
	OrderURL    string    `yaml:"order_url" validate:"required,url"`
	MapEmbedURL string    `yaml:"map_embed_url" validate:"required,url"`
	Socials     []Link    `yaml:"socials" validate:"dive"`
	Nav         []NavLink `yaml:"nav" validate:"min=1,dive"`
}

// PhoneHref is the tel: link for the phone number.
func (s Site) PhoneHref() string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range s.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type Address struct {
	Street     string `yaml:"street" validate:"required"`
	City       string `yaml:"city" validate:"required"`
	Region     string `yaml:"region" validate:"required"`
	PostalCode string `yaml:"postal_code" validate:"required"`
}

// Lines renders the address the way it is printed on the site.
func (a Address) Lines() []string {
	return []string{a.Street, fmt.Sprintf("%s, %s %s", a.City, a.Region, a.PostalCode)}
}

func (a Address) String() string {
	return strings.Join(a.Lines(), ", ")
}

type Link struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
}

type NavLink struct {
	Name string `yaml:"name" validate:"required"`
	Path string `yaml:"path" validate:"required,startswith=/"`
}

type Image struct {
	Src string `yaml:"src" validate:"required"`
	Alt string `yaml:"alt" validate:"required"`
}

// Dish is a display card: a featured item on the home page or a tasting menu entry.
type Dish struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Price       string `yaml:"price" validate:"required,numeric"`
	Image       string `yaml:"image" validate:"required"`
	Category    string `yaml:"category"`
}

// PriceLabel renders the price with its currency sign.
func (d Dish) PriceLabel() string {
	return FormatPrice(d.Price)
}

type Home struct {
	Hero       Image      `yaml:"hero" validate:"required"`
	Philosophy Philosophy `yaml:"philosophy" validate:"required"`
	Featured   Featured   `yaml:"featured" validate:"required"`
	Mosaic     []Image    `yaml:"mosaic" validate:"dive"`
}

type Philosophy struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Heading    string   `yaml:"heading" validate:"required"`
	Emphasis   []string `yaml:"emphasis"`
	Paragraphs []string `yaml:"paragraphs" validate:"min=1"`
	Images     []Image  `yaml:"images" validate:"dive"`
}

type Featured struct {
	Eyebrow string `yaml:"eyebrow"`
	Intro   string `yaml:"intro"`
	Items   []Dish `yaml:"items" validate:"min=1,dive"`
}

// Menu is the full menu, one category per tab.
type Menu struct {
	Categories []Category `yaml:"categories" validate:"min=1,dive"`
	Disclaimer string     `yaml:"disclaimer"`
}

type Category struct {
	ID    string     `yaml:"id" validate:"required,lowercase"`
	Label string     `yaml:"label" validate:"required"`
	Items []MenuItem `yaml:"items" validate:"min=1,dive"`
}

// ItemGroup is a run of items sharing a sub-heading inside a category.
type ItemGroup struct {
	Heading string
	Items   []MenuItem
}

// Groups splits the items by sub-heading, keeping menu order. Items without a
// heading form a group with an empty Heading.
func (c Category) Groups() []ItemGroup {
	var groups []ItemGroup
	for _, it := range c.Items {
		if n := len(groups); n > 0 && groups[n-1].Heading == it.Group {
			groups[n-1].Items = append(groups[n-1].Items, it)
			continue
		}
		groups = append(groups, ItemGroup{Heading: it.Group, Items: []MenuItem{it}})
	}
	return groups
}

// MenuItem is one line of the menu. A trailing asterisk on the name refers to
// the menu's raw-food disclaimer.
type MenuItem struct {
	Slug        string `yaml:"slug,omitempty"`
	Name        string `yaml:"name" validate:"required"`
	Price       string `yaml:"price,omitempty" validate:"omitempty,numeric"`
	Description string `yaml:"description,omitempty"`
	Note        string `yaml:"note,omitempty"`
	Featured    bool   `yaml:"featured,omitempty"`
	Group       string `yaml:"group,omitempty"`

	// CategoryID is filled in when the catalog is indexed.
	CategoryID string `yaml:"-"`
}

// PriceLabel renders the price with its currency sign, or "" for items priced
// in their description.
func (m MenuItem) PriceLabel() string {
	return FormatPrice(m.Price)
}

// Tasting is the tabbed tasting menu on the home page.
type Tasting struct {
	Tabs []TastingTab `yaml:"tabs" validate:"min=1,dive"`
}

type TastingTab struct {
	ID    string `yaml:"id" validate:"required,lowercase"`
	Name  string `yaml:"name" validate:"required"`
	Items []Dish `yaml:"items" validate:"min=1,dive"`
}

// Gallery is the lightbox image list. Order is navigation order.
type Gallery struct {
	Images []Image `yaml:"images" validate:"min=1,dive"`
}

type Testimonials struct {
	Items []Testimonial `yaml:"testimonials" validate:"min=1,dive"`
}

type Testimonial struct {
	Quote  string `yaml:"quote" validate:"required"`
	Author string `yaml:"author" validate:"required"`
	Title  string `yaml:"title"`
}

type About struct {
	Eyebrow  string      `yaml:"eyebrow"`
	Headline []string    `yaml:"headline" validate:"min=1"`
	Intro    string      `yaml:"intro" validate:"required"`
	Story    []string    `yaml:"story" validate:"min=1"`
	Timeline []Milestone `yaml:"timeline" validate:"min=1,dive"`
	Promise  Promise     `yaml:"promise"`
	Values   []Value     `yaml:"values" validate:"dive"`
}

type Milestone struct {
	Year        string `yaml:"year" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image" validate:"required,url"`
}

type Promise struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type Value struct {
	Icon        string `yaml:"icon" validate:"required,oneof=award users clock"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// FormatPrice prefixes a bare amount with a dollar sign.
func FormatPrice(p string) string {
	if p == "" {
		return ""
	}
	return "$" + p
}
