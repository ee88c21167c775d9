package probe

import (
	"strings"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// usernamePlaceholder is the token replaced with the scan subject in
// catalog URL templates.
const usernamePlaceholder = "{username}"

// defaultCatalog lists the built-in platform targets as URL templates.
// Catalog order is probe order and output order. The set covers
// code-hosting, two media/social platforms without public APIs, a
// forum with an API, a video platform, and an image platform.
var defaultCatalog = []config.PlatformEntry{
	{
		Name:       "GitHub",
		ProfileURL: "https://github.com/{username}",
		CheckURL:   "https://api.github.com/users/{username}",
	},
	{
		Name:       "Twitter/X",
		ProfileURL: "https://twitter.com/{username}",
	},
	{
		Name:       "Instagram",
		ProfileURL: "https://instagram.com/{username}",
	},
	{
		Name:       "Reddit",
		ProfileURL: "https://reddit.com/user/{username}",
		CheckURL:   "https://www.reddit.com/user/{username}/about.json",
	},
	{
		Name:       "YouTube",
		ProfileURL: "https://youtube.com/@{username}",
	},
	{
		Name:       "Pinterest",
		ProfileURL: "https://pinterest.com/{username}",
	},
}

// DefaultCatalog returns the built-in platform targets for a username.
func DefaultCatalog(username string) []model.PlatformTarget {
	return CatalogFromEntries(defaultCatalog, username)
}

// CatalogFromEntries expands catalog entry templates into concrete
// targets for a username. Entry order is preserved.
func CatalogFromEntries(entries []config.PlatformEntry, username string) []model.PlatformTarget {
	targets := make([]model.PlatformTarget, 0, len(entries))
	for _, e := range entries {
		targets = append(targets, model.PlatformTarget{
			Name:       e.Name,
			ProfileURL: expandTemplate(e.ProfileURL, username),
			CheckURL:   expandTemplate(e.CheckURL, username),
		})
	}
	return targets
}

// expandTemplate substitutes the username placeholder in a URL template.
func expandTemplate(template, username string) string {
	return strings.ReplaceAll(template, usernamePlaceholder, username)
}
