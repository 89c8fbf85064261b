// Package policy holds the authorization decision logic. Every function is
// pure: decisions are computed from the caller's claims and the target
// resource, never from stored state.
package policy

import "github.com/brunosduarte/sindestiva-api/internal/domain"

// RegistrationRole returns the role assigned to self-registered accounts.
// The caller-supplied role, if any, is never honoured; admins are
// provisioned out-of-band.
func RegistrationRole() string {
	return domain.RoleEditor
}

// CanLogin decides whether a login attempt succeeds. The active check runs
// before the password check so a deactivated account is reported as such even
// with valid credentials. A missing user and a bad password both map to
// ErrInvalidCredentials.
func CanLogin(user *domain.User, passwordOK bool) error {
	if user == nil {
		return domain.ErrInvalidCredentials
	}
	if !user.Active {
		return domain.ErrUserDeactivated
	}
	if !passwordOK {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// RequireAdmin allows only callers carrying the admin role. Roles are a flat
// set, not a hierarchy.
func RequireAdmin(claims domain.Claims) error {
	if !claims.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanMutateNews decides whether the caller may update or delete an article:
// the author or an admin, nobody else. Ownership is structural equality on
// the author id string.
func CanMutateNews(claims domain.Claims, authorID string) error {
	if claims.UserID == authorID || claims.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// VisibleToPublic decides whether an article may be served on a public read
// path. Unpublished articles are reported as not found rather than
// forbidden, so their existence is not revealed.
func VisibleToPublic(news *domain.News) error {
	if news == nil || !news.Published {
		return domain.ErrNotFound
	}
	return nil
}

// PublicListFilter builds the filter for the public article listing: the
// published constraint is always applied, merged with any tag/search filters.
func PublicListFilter(tag, search string) domain.NewsFilter {
	published := true
	return domain.NewsFilter{
		Published: &published,
		Tag:       tag,
		Search:    search,
	}
}

// OwnListFilter builds the filter for the caller's own listing: the author
// constraint is forced to the caller and the publish state is left open, so
// owners see their drafts.
func OwnListFilter(claims domain.Claims, tag, search string) domain.NewsFilter {
	return domain.NewsFilter{
		AuthorID: claims.UserID,
		Tag:      tag,
		Search:   search,
	}
}
