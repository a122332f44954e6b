package content

import (
	"fmt"
	"strings"
)

// index assigns item slugs and builds the lookup tables. It is called by the
// loader before validation.
func (c *Catalog) index() error {
	c.items = make(map[string]MenuItem)
	for ci := range c.Menu.Categories {
		cat := &c.Menu.Categories[ci]
		for ii := range cat.Items {
			it := &cat.Items[ii]
			if it.Slug == "" {
				it.Slug = Slugify(it.Name)
			}
			it.CategoryID = cat.ID
			if prev, dup := c.items[it.Slug]; dup {
				return fmt.Errorf("%w: item slug %q used in %q and %q", ErrDuplicate, it.Slug, prev.CategoryID, cat.ID)
			}
			c.items[it.Slug] = *it
		}
	}
	return nil
}

// Category returns the menu category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Menu.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Item returns the menu item with the given slug.
func (c *Catalog) Item(slug string) (MenuItem, bool) {
	it, ok := c.items[slug]
	return it, ok
}

// TastingTab returns the tasting menu tab with the given id.
func (c *Catalog) TastingTab(id string) (TastingTab, bool) {
	for _, tab := range c.Tasting.Tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return TastingTab{}, false
}

// ItemCount is the number of items across all menu categories.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.Menu.Categories {
		n += len(cat.Items)
	}
	return n
}

// Search returns the menu items whose name, description or note contain every
// word of the query, ignoring case and accents. Results keep menu order.
func (c *Catalog) Search(query string) []MenuItem {
	terms := strings.Fields(Fold(query))
	if len(terms) == 0 {
		return nil
	}
	var out []MenuItem
	for _, cat := range c.Menu.Categories {
		for _, it := range cat.Items {
			haystack := Fold(strings.Join([]string{it.Name, it.Description, it.Note, cat.Label}, " "))
			if containsAll(haystack, terms) {
				out = append(out, it)
			}
		}
	}
	return out
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}
