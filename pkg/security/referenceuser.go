package security

import (
	"fmt"
	"sync"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// ReferenceUser carries a domain.UserReference and, once loaded, the full
// domain.User behind it.
type ReferenceUser struct {
	ref  domain.UserReference
	lock sync.RWMutex
	user *domain.User
}

// NewReferenceUser returns an unresolved principal.
func NewReferenceUser(ref domain.UserReference) *ReferenceUser {
	return &ReferenceUser{ref: ref}
}

// Reference returns the user reference.
func (u *ReferenceUser) Reference() domain.UserReference {
	return u.ref
}

// SetAPIUser resolves the principal. The user must be the one referenced.
func (u *ReferenceUser) SetAPIUser(user domain.User) error {
	if user.ID != u.ref.UserID {
		return domain.InvalidArgumentError{
			Argument: "user",
			Reason:   fmt.Sprintf("id %d does not match reference %d", user.ID, u.ref.UserID),
		}
	}
	u.lock.Lock()
	defer u.lock.Unlock()
	u.user = &user
	return nil
}

// Resolved reports whether the full user has been set.
func (u *ReferenceUser) Resolved() bool {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.user != nil
}

// APIUser returns the full user or a domain.UserNotResolvedError.
func (u *ReferenceUser) APIUser() (domain.User, error) {
	u.lock.RLock()
	defer u.lock.RUnlock()
	if u.user == nil {
		return domain.User{}, domain.UserNotResolvedError{Reference: u.ref}
	}
	return *u.user, nil
}

var _ domain.ReferenceUser = &ReferenceUser{}
