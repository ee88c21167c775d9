package model

// PlatformTarget describes one entry of the static platform catalog.
// Targets are immutable per scan and never persisted; the URLs embed
// the subject username at catalog-build time.
type PlatformTarget struct {
	// Name is the display name of the platform (e.g. "GitHub").
	Name string `json:"name"`

	// ProfileURL is the public profile URL for the subject.
	ProfileURL string `json:"profileUrl"`

	// CheckURL is an optional dedicated existence-check endpoint.
	// When empty, existence is probed against ProfileURL directly.
	CheckURL string `json:"checkUrl,omitempty"`
}

// HasCheckURL reports whether this platform offers a dedicated
// existence-check endpoint.
func (t PlatformTarget) HasCheckURL() bool {
	return t.CheckURL != ""
}

// ExistenceVerdict is the outcome of probing one platform for one
// subject. Exactly one verdict is produced per platform per scan and
// it is never mutated after creation.
type ExistenceVerdict struct {
	// Platform is the name of the probed platform.
	Platform string `json:"platform"`

	// ProfileURL is the public profile URL that was assessed.
	ProfileURL string `json:"url"`

	// Exists is the tri-state existence outcome.
	Exists Existence `json:"exists"`

	// PublicInfo carries any public metadata extracted from the
	// platform response (bio, karma, page title), or a generic
	// status string. Never empty.
	PublicInfo string `json:"publicInfo"`
}
