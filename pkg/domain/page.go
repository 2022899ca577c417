package domain

import "time"

// PageID is the public, owner-chosen identifier of a page. It is globally
// unique regardless of owner.
type PageID string

// Owner is the opaque identity of the authenticated principal owning a page.
type Owner string

// BioInfo is the profile block shown on top of a page.
type BioInfo struct {
	// Name is the display name of the page owner.
	Name string `json:"name"`
	// ImageURL points to the profile image. It may be empty.
	ImageURL string `json:"imageUrl"`
	// DescriptionTitle is a short tagline rendered under the name.
	DescriptionTitle string `json:"descriptionTitle"`
}

// Link is an outbound link rendered as a button.
type Link struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// SocialLink is a link to a social media profile rendered as an icon.
type SocialLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ColorRole names a themable part of a page.
type ColorRole string

const (
	ColorBackground     ColorRole = "backgroundColor"
	ColorText           ColorRole = "textColor"
	ColorButton         ColorRole = "buttonColor"
	ColorButtonHover    ColorRole = "buttonHoverColor"
	ColorButtonText     ColorRole = "buttonTextColor"
	ColorButtonLinkIcon ColorRole = "buttonLinkIconColor"
	ColorSocialIcons    ColorRole = "socialIconsColor"
)

// ColorRoles lists every supported ColorRole.
var ColorRoles = []ColorRole{ //nolint: gochecknoglobals
	ColorBackground,
	ColorText,
	ColorButton,
	ColorButtonHover,
	ColorButtonText,
	ColorButtonLinkIcon,
	ColorSocialIcons,
}

// Valid reports whether r is one of the supported roles.
func (r ColorRole) Valid() bool {
	for _, role := range ColorRoles {
		if r == role {
			return true
		}
	}

	return false
}

// PageColors maps color roles to hex color values.
type PageColors map[ColorRole]string

// Page is the root aggregate: a publicly addressable profile page with its
// bio, two ordered link collections and theme colors.
type Page struct {
	// ID is the public identifier of the page.
	ID PageID `json:"id"`
	// Owner is set at creation and never changes.
	Owner Owner `json:"owner"`

	BioInfo          BioInfo      `json:"bioInfo"`
	Links            []Link       `json:"links"`
	SocialMediaLinks []SocialLink `json:"socialMediaLinks"`
	PageColors       PageColors   `json:"pageColors,omitempty"`

	// Verified is reserved for an external verification flow.
	Verified bool `json:"verified"`

	// CreatedAt is the time the page was first created. It survives renames.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last successful write.
	UpdatedAt time.Time `json:"-"`
	// Version is the optimistic concurrency token of the stored record. It is
	// incremented by the store on every write.
	Version uint64 `json:"-"`
	// RenamedFrom is set on a record written by an in-progress rename and
	// names the page it was copied from.
	RenamedFrom PageID `json:"-"`
}

// Clone returns a deep copy of p so callers can mutate the copy without
// affecting the original.
func (p Page) Clone() Page {
	out := p
	if p.Links != nil {
		out.Links = append([]Link(nil), p.Links...)
	}
	if p.SocialMediaLinks != nil {
		out.SocialMediaLinks = append([]SocialLink(nil), p.SocialMediaLinks...)
	}
	if p.PageColors != nil {
		out.PageColors = make(PageColors, len(p.PageColors))
		for k, v := range p.PageColors {
			out.PageColors[k] = v
		}
	}

	return out
}
