package service

import (
	"blogCPT/internal/apperr"
	"blogCPT/internal/models"
)

// Owned is implemented by resources that have a single owning user.
type Owned interface {
	OwnerID() string
}

// CanMutate reports whether identity owns resource.
func CanMutate(identity *models.Identity, resource Owned) bool {
	if identity == nil || identity.UserID == "" {
		return false
	}
	return identity.UserID == resource.OwnerID()
}

// CanView reports whether viewer may see post: published posts are public,
// drafts are visible to their author only.
func CanView(viewer *models.Identity, post *models.Post) bool {
	return post.Status == models.PostStatusPublished || CanMutate(viewer, post)
}

// Authorize returns Unauthenticated without an identity and Forbidden when
// the identity does not own the resource.
func Authorize(identity *models.Identity, resource Owned, action string) error {
	if identity == nil {
		return apperr.Unauthenticated("authentication required")
	}
	if !CanMutate(identity, resource) {
		return apperr.Forbidden("you are not allowed to %s this resource", action)
	}
	return nil
}

func requireIdentity(identity *models.Identity) error {
	if identity == nil || identity.UserID == "" {
		return apperr.Unauthenticated("authentication required")
	}
	return nil
}
