// Package session holds the process-wide record of who the client is signed
// in as: wallet address, bearer credential, role, and (for merchants) the
// shop profile. The in-memory session is the source of truth; every mutation
// is mirrored synchronously into durable storage so the next process start
// can restore it.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/liuwf/chainmarket/internal/client/repositories/state"
)

// Role is the authorization role attached to the signed-in identity.
type Role string

const (
	RoleUser     Role = "user"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a stored or server-supplied role string onto a known Role,
// defaulting to RoleUser for anything unrecognized.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleMerchant:
		return RoleMerchant
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Shop approval states as the backend reports them.
const (
	ShopStatusPending  = "pending"
	ShopStatusApproved = "approved"
	ShopStatusRejected = "rejected"
)

// ShopProfile is the merchant's shop record, present only for merchant
// sessions with an existing shop.
type ShopProfile struct {
	ShopName        string `json:"shopName"`
	ShopDescription string `json:"shopDescription"`
	ShopLogo        string `json:"shopLogo"`
	ShopStatus      string `json:"shopStatus"`
	ReputationScore int    `json:"reputationScore"`
}

// Durable storage keys. Absence of keyIdentity or keyCredential means there
// is no session to restore.
const (
	keyIdentity        = "identity"
	keyCredential      = "credential"
	keyRole            = "role"
	keyMerchantProfile = "merchantProfile"
)

var storageKeys = []string{keyIdentity, keyCredential, keyRole, keyMerchantProfile}

// Snapshot is the read-only view the navigation guard works from.
type Snapshot struct {
	Connected bool
	Role      Role
}

// Session is the single process-wide session record. All mutation goes
// through its setters, which mirror each field into the state repository
// before returning.
type Session struct {
	mu    sync.RWMutex
	store state.Repository

	identity   string
	credential string
	role       Role
	shop       *ShopProfile
	connected  bool
}

// New returns an empty, disconnected session backed by store.
func New(store state.Repository) *Session {
	return &Session{store: store, role: RoleUser}
}

// Restore populates the session from durable storage. When either identity
// or credential is absent the session stays empty. When the stored
// credential is already expired the whole stored copy is discarded; there is
// no partial restore.
func (s *Session) Restore(ctx context.Context) error {
	identity, err := s.store.Get(ctx, keyIdentity)
	if err != nil {
		return err
	}
	credential, err := s.store.Get(ctx, keyCredential)
	if err != nil {
		return err
	}
	if identity == "" || credential == "" {
		return nil
	}

	if IsExpired(credential) {
		return s.store.DeleteMany(ctx, storageKeys...)
	}

	role, err := s.store.Get(ctx, keyRole)
	if err != nil {
		return err
	}
	rawShop, err := s.store.Get(ctx, keyMerchantProfile)
	if err != nil {
		return err
	}

	var shop *ShopProfile
	if rawShop != "" {
		var p ShopProfile
		// a corrupt stored profile is dropped, not fatal
		if json.Unmarshal([]byte(rawShop), &p) == nil {
			shop = &p
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.credential = credential
	s.role = ParseRole(role)
	s.shop = shop
	s.connected = true
	return nil
}

// SetIdentity records the wallet address and mirrors it to storage.
func (s *Session) SetIdentity(ctx context.Context, identity string) error {
	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()
	if identity == "" {
		return s.store.Delete(ctx, keyIdentity)
	}
	return s.store.Set(ctx, keyIdentity, identity)
}

// SetCredential records the bearer token and mirrors it to storage.
func (s *Session) SetCredential(ctx context.Context, credential string) error {
	s.mu.Lock()
	s.credential = credential
	s.mu.Unlock()
	if credential == "" {
		return s.store.Delete(ctx, keyCredential)
	}
	return s.store.Set(ctx, keyCredential, credential)
}

// SetRole records the authorization role and mirrors it to storage.
func (s *Session) SetRole(ctx context.Context, role Role) error {
	role = ParseRole(string(role))
	s.mu.Lock()
	s.role = role
	s.mu.Unlock()
	return s.store.Set(ctx, keyRole, string(role))
}

// SetShopProfile records the merchant shop profile; nil clears it and
// removes the storage entry.
func (s *Session) SetShopProfile(ctx context.Context, shop *ShopProfile) error {
	s.mu.Lock()
	s.shop = shop
	s.mu.Unlock()
	if shop == nil {
		return s.store.Delete(ctx, keyMerchantProfile)
	}
	b, err := json.Marshal(shop)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, keyMerchantProfile, string(b))
}

// SetConnected flips the derived connectivity flag. It is separate from the
// field setters so a multi-step sign-in does not look connected halfway
// through.
func (s *Session) SetConnected(connected bool) {
	s.mu.Lock()
	s.connected = connected
	s.mu.Unlock()
}

// Logout clears every field back to its disconnected default and removes the
// durable entries. It is idempotent; calling it on an already empty session
// is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = ""
	s.credential = ""
	s.role = RoleUser
	s.shop = nil
	s.connected = false
	s.mu.Unlock()

	return s.store.DeleteMany(ctx, storageKeys...)
}

// IsExpired exposes the credential validator so the request pipeline and the
// session share one definition of expiry.
func (s *Session) IsExpired(token string) bool {
	return IsExpired(token)
}

func (s *Session) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *Session) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) ShopProfile() *ShopProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.shop == nil {
		return nil
	}
	cp := *s.shop
	return &cp
}

func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// ShortIdentity renders the wallet address in the usual abbreviated form,
// e.g. "0x1234...abcd". Short addresses are returned unchanged.
func (s *Session) ShortIdentity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.identity) <= 10 {
		return s.identity
	}
	return s.identity[:6] + "..." + s.identity[len(s.identity)-4:]
}

func (s *Session) IsUser() bool     { return s.Role() == RoleUser }
func (s *Session) IsMerchant() bool { return s.Role() == RoleMerchant }
func (s *Session) IsAdmin() bool    { return s.Role() == RoleAdmin }

func (s *Session) HasShop() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shop != nil
}

// Snapshot returns the guard's view of the session at this instant.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Connected: s.connected, Role: s.role}
}
