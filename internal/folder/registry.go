package folder

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// Claim records that a normalized path is owned by a live handle.
type Claim struct {
	Path      string    // Normalized folder path
	Owner     string    // ID of the owning handle
	ClaimedAt time.Time // When the claim was established
}

// Registry tracks the set of folder paths currently owned by live handles.
// At most one claim exists per path.
type Registry struct {
	claims *xsync.Map[string, Claim]
	now    func() time.Time
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		claims: xsync.NewMap[string, Claim](),
		now:    time.Now,
	}
}

// TryClaim claims path for an anonymous owner. It reports false when the
// path is already claimed.
func (r *Registry) TryClaim(path string) bool {
	return r.claim(path, uuid.NewString())
}

// claim atomically inserts a claim for path if none exists.
func (r *Registry) claim(path, owner string) bool {
	_, loaded := r.claims.LoadOrStore(path, Claim{
		Path:      path,
		Owner:     owner,
		ClaimedAt: r.now(),
	})
	return !loaded
}

// Release removes the claim on path regardless of its owner. Releasing an
// unclaimed path is a no-op.
func (r *Registry) Release(path string) {
	r.claims.Delete(path)
}

// release removes the claim on path only if owner still holds it, so a stale
// handle cannot drop a newer handle's claim.
func (r *Registry) release(path, owner string) bool {
	released := false
	r.claims.Compute(path, func(old Claim, loaded bool) (Claim, xsync.ComputeOp) {
		if !loaded || old.Owner != owner {
			return old, xsync.CancelOp
		}
		released = true
		return old, xsync.DeleteOp
	})
	return released
}

// IsClaimed reports whether path is currently owned.
func (r *Registry) IsClaimed(path string) bool {
	_, ok := r.claims.Load(path)
	return ok
}

// Owner returns the owner of path and true, or ("", false) if it is unclaimed.
func (r *Registry) Owner(path string) (string, bool) {
	c, ok := r.claims.Load(path)
	if !ok {
		return "", false
	}
	return c.Owner, true
}

// Claims returns a snapshot of all claims sorted by path.
func (r *Registry) Claims() []Claim {
	out := make([]Claim, 0, r.claims.Size())
	r.claims.Range(func(_ string, c Claim) bool {
		out = append(out, c)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Len returns the number of claimed paths.
func (r *Registry) Len() int {
	return r.claims.Size()
}
