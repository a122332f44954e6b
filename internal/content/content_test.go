package content

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/farays/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEmbedded(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewLoader(Embedded(), nil).Load(context.Background())
	require.NoError(t, err)
	return c
}

// memCopy returns an in-memory store seeded with the embedded content.
func memCopy(t *testing.T) *storage.AferoStore {
	t.Helper()
	dst := storage.NewAferoStore(afero.NewMemMapFs())
	_, err := storage.Copy(context.Background(), dst, Embedded(), "*.yaml")
	require.NoError(t, err)
	return dst
}

func overwrite(t *testing.T, s *storage.AferoStore, file, body string) {
	t.Helper()
	_, err := s.Save(context.Background(), file, bytes.NewBufferString(body))
	require.NoError(t, err)
}

func TestEmbeddedCatalog(t *testing.T) {
	c := loadEmbedded(t)

	assert.Equal(t, "FA-RAYS", c.Site.Name)
	assert.Equal(t, []string{"1115 Wooster Rd N", "Barberton, Ohio 44203"}, c.Site.Address.Lines())
	assert.Equal(t, "tel:3307456091", c.Site.PhoneHref())

	require.Len(t, c.Menu.Categories, 8)
	assert.Equal(t, "breakfast", c.Menu.Categories[0].ID)
	assert.Equal(t, "Daily Specials", c.Menu.Categories[7].Label)
	assert.Len(t, c.Home.Featured.Items, 6)
	assert.Len(t, c.Gallery.Images, 6)
	assert.Len(t, c.Testimonials.Items, 4)
	assert.Len(t, c.Tasting.Tabs, 4)
	assert.Len(t, c.About.Timeline, 5)
	assert.Equal(t, "1949", c.About.Timeline[0].Year)
	assert.Len(t, c.About.Values, 3)
}

func TestCatalogLookups(t *testing.T) {
	c := loadEmbedded(t)

	it, ok := c.Item("chicken-waffle")
	require.True(t, ok)
	assert.Equal(t, "CHICKEN & WAFFLE", it.Name)
	assert.Equal(t, "waffles", it.CategoryID)
	assert.True(t, it.Featured)
	assert.Equal(t, "$12.99", it.PriceLabel())

	it, ok = c.Item("belgian-waffle")
	require.True(t, ok)
	assert.Empty(t, it.PriceLabel(), "priced in its description")

	_, ok = c.Item("lobster-thermidor")
	assert.False(t, ok)

	cat, ok := c.Category("waffles")
	require.True(t, ok)
	groups := cat.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Belgian Waffles", groups[0].Heading)
	assert.Equal(t, "Pancakes & French Toast", groups[1].Heading)
	assert.Len(t, groups[1].Items, 3)

	tab, ok := c.TastingTab("desserts")
	require.True(t, ok)
	assert.Equal(t, "$12", tab.Items[0].PriceLabel())
}

func TestCatalogSearch(t *testing.T) {
	c := loadEmbedded(t)

	slugs := func(items []MenuItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Slug)
		}
		return out
	}

	assert.Equal(t, []string{"grilled-reuben"}, slugs(c.Search("REUBEN")))

	both := slugs(c.Search("bacon  chicken"))
	assert.Contains(t, both, "bacon-ranch-chicken-wrap")
	assert.Contains(t, both, "cobb-salad")
	assert.NotContains(t, both, "hamburger")

	assert.NotEmpty(t, c.Search("omelets"), "category labels are searchable")
	assert.Nil(t, c.Search("   "))
	assert.Empty(t, c.Search("sushi"))
}

func TestFoldAndSlugify(t *testing.T) {
	assert.Equal(t, "creme brulee", Fold("Crème Brûlée"))
	assert.Equal(t, "souffle", Fold("SOUFFLÉ"))

	cases := map[string]string{
		"CHICKEN & WAFFLE":             "chicken-waffle",
		`STEAK & EGGS "BEST IN TOWN"*`: "steak-eggs-best-in-town",
		"6 OZ. SIRLOIN STEAK*":         "6-oz-sirloin-steak",
		"Vanilla Bean Crème Brûlée":    "vanilla-bean-creme-brulee",
		"  YOU PICK 4! ":               "you-pick-4",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestLoaderRejectsBadContent(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		s := memCopy(t)
		overwrite(t, s, "gallery.yaml", "images:\n  - src: /a.jpg\n    alt: A\n    caption: nope\n")
		_, err := NewLoader(s, nil).Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gallery.yaml")
	})

	t.Run("missing file", func(t *testing.T) {
		s := storage.NewAferoStore(afero.NewMemMapFs())
		_, err := NewLoader(s, nil).Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "site.yaml")
	})

	t.Run("failed rules", func(t *testing.T) {
		s := memCopy(t)
		overwrite(t, s, "testimonials.yaml", "testimonials:\n  - quote: Great\n")
		_, err := NewLoader(s, nil).Load(ctx)
		require.ErrorIs(t, err, ErrInvalid)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Problems, 1)
		assert.Contains(t, verr.Problems[0], "Author")
	})

	t.Run("duplicate slug", func(t *testing.T) {
		s := memCopy(t)
		menu := "categories:\n" +
			"  - id: lunch\n    label: Lunch\n    items:\n      - name: Pretzel Bites\n        price: '7.99'\n" +
			"  - id: snacks\n    label: Snacks\n    items:\n      - name: PRETZEL BITES\n        price: '6.99'\n"
		overwrite(t, s, "menu.yaml", menu)
		_, err := NewLoader(s, nil).Load(ctx)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("duplicate category", func(t *testing.T) {
		s := memCopy(t)
		menu := "categories:\n" +
			"  - id: lunch\n    label: Lunch\n    items:\n      - name: Fries\n" +
			"  - id: lunch\n    label: Lunch Again\n    items:\n      - name: Tots\n"
		overwrite(t, s, "menu.yaml", menu)
		_, err := NewLoader(s, nil).Load(ctx)
		require.ErrorIs(t, err, ErrInvalid)
		assert.True(t, strings.Contains(err.Error(), `menu category "lunch"`))
	})
}

func TestProviderReload(t *testing.T) {
	ctx := context.Background()
	s := memCopy(t)

	var hooked *Catalog
	p, err := NewProvider(ctx, NewLoader(s, nil), nil, WithReloadHook(func(c *Catalog) { hooked = c }))
	require.NoError(t, err)
	first := p.Catalog()
	require.NotNil(t, first)

	overwrite(t, s, "testimonials.yaml", "testimonials:\n  - quote: Best pie in Barberton.\n    author: Pat\n")
	require.NoError(t, p.Reload(ctx))
	assert.Len(t, p.Catalog().Testimonials.Items, 1)
	assert.Same(t, p.Catalog(), hooked)

	overwrite(t, s, "testimonials.yaml", "testimonials: []\n")
	assert.Error(t, p.Reload(ctx))
	assert.Len(t, p.Catalog().Testimonials.Items, 1, "a failed reload keeps the previous catalog")
	assert.Len(t, first.Testimonials.Items, 4, "earlier snapshots are never mutated")
}

func TestStaticProvider(t *testing.T) {
	c := loadEmbedded(t)
	p := Static(c)
	assert.Same(t, c, p.Catalog())
	assert.NoError(t, p.Reload(context.Background()))
}

func TestFiles(t *testing.T) {
	files := Files()
	assert.Contains(t, files, "menu.yaml")
	assert.Len(t, files, 7)
}
