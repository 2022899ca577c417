package pages

import (
	"linkify/pkg/domain"
	"linkify/pkg/serrors"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength             = 100
	maxDescriptionTitleLength = 160
	maxURLLength              = 2048
)

var (
	pageIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,29}$`)      //nolint: gochecknoglobals
	colorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`) //nolint: gochecknoglobals
)

// ValidatePageID checks the page identifier syntax: 3 to 30 characters of
// lowercase letters, digits, '-' and '_', starting with a letter or digit.
func ValidatePageID(id domain.PageID) error {
	if !pageIDPattern.MatchString(string(id)) {
		return serrors.With(serrors.ErrInvalidArgument,
			"invalid page id %q: use 3-30 lowercase letters, digits, '-' or '_' starting with a letter or digit", id)
	}

	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return serrors.With(serrors.ErrInvalidArgument, "%s is required", field)
	}
	if len(raw) > maxURLLength {
		return serrors.With(serrors.ErrInvalidArgument, "%s is longer than %d characters", field, maxURLLength)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid %s", field)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return serrors.With(serrors.ErrInvalidArgument, "%s must be an absolute http or https URL", field)
	}

	return nil
}

func validateName(field, name string, maxLength int) error {
	if strings.TrimSpace(name) == "" {
		return serrors.With(serrors.ErrInvalidArgument, "%s is required", field)
	}
	if utf8.RuneCountInString(name) > maxLength {
		return serrors.With(serrors.ErrInvalidArgument, "%s is longer than %d characters", field, maxLength)
	}

	return nil
}

func validateBioInfo(info domain.BioInfo) error {
	if err := validateName("name", info.Name, maxNameLength); err != nil {
		return err
	}
	if utf8.RuneCountInString(info.DescriptionTitle) > maxDescriptionTitleLength {
		return serrors.With(serrors.ErrInvalidArgument,
			"descriptionTitle is longer than %d characters", maxDescriptionTitleLength)
	}
	if info.ImageURL != "" {
		return validateURL("imageUrl", info.ImageURL)
	}

	return nil
}

func validateColors(colors domain.PageColors) error {
	for role, value := range colors {
		if !role.Valid() {
			return serrors.With(serrors.ErrInvalidArgument, "unknown color role %q", role)
		}
		if !colorPattern.MatchString(value) {
			return serrors.With(serrors.ErrInvalidArgument, "%s must be a #rgb or #rrggbb color, got %q", role, value)
		}
	}

	return nil
}

func validateLink(link domain.Link, partial bool) error {
	if partial && link.URL == "" && link.Name == "" {
		return serrors.With(serrors.ErrInvalidArgument, "nothing to update")
	}
	if !partial || link.URL != "" {
		if err := validateURL("url", link.URL); err != nil {
			return err
		}
	}
	if !partial || link.Name != "" {
		return validateName("name", link.Name, maxNameLength)
	}

	return nil
}

func validateSocialLink(link domain.SocialLink, _ bool) error {
	return validateURL("url", link.URL)
}
