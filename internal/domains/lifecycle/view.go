package lifecycle

import (
	"fmt"
	"slices"
)

const (
	RoleFarmer = "FARMER"
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
)

// Item is the part of a booking the view-model needs.
type Item struct {
	ID     string
	Status Status
}

type Row struct {
	ID      string   `json:"id"`
	Status  Status   `json:"status"`
	Bucket  Bucket   `json:"bucket"`
	Actions []Action `json:"actions"`
}

type Group struct {
	Bucket Bucket   `json:"bucket"`
	IDs    []string `json:"ids"`
}

// View is implemented by FarmerView, OwnerView and AdminView only. It never
// mutates bookings; performing an action is a backend call followed by a rebuild.
type View interface {
	Role() string
	Rows() []Row
	Groups() []Group
	Row(id string) (Row, bool)
	Allows(id string, action Action) bool

	sealed()
}

type base struct {
	rows   []Row
	index  map[string]int
	groups []Group
}

func newBase(items []Item, buckets []Bucket, bucketOf func(Status) Bucket, actionsOf func(Status) []Action) base {
	b := base{
		rows:   make([]Row, 0, len(items)),
		index:  make(map[string]int, len(items)),
		groups: make([]Group, 0, len(buckets)),
	}

	members := make(map[Bucket][]string, len(buckets))

	for _, item := range items {
		bucket := bucketOf(item.Status)

		b.index[item.ID] = len(b.rows)
		b.rows = append(b.rows, Row{
			ID:      item.ID,
			Status:  item.Status,
			Bucket:  bucket,
			Actions: actionsOf(item.Status),
		})

		members[bucket] = append(members[bucket], item.ID)
	}

	for _, bucket := range buckets {
		ids := members[bucket]
		if ids == nil {
			ids = []string{}
		}

		b.groups = append(b.groups, Group{Bucket: bucket, IDs: ids})
	}

	return b
}

func (b base) Rows() []Row {
	return b.rows
}

func (b base) Groups() []Group {
	return b.groups
}

func (b base) Row(id string) (Row, bool) {
	i, ok := b.index[id]
	if !ok {
		return Row{}, false
	}

	return b.rows[i], true
}

func (b base) Allows(id string, action Action) bool {
	row, ok := b.Row(id)

	return ok && slices.Contains(row.Actions, action)
}

func (base) sealed() {}

var statusBuckets = []Bucket{BucketRequests, BucketActive, BucketHistory}

// FarmerView shows the farmer's bookings as read only badges.
type FarmerView struct{ base }

func NewFarmerView(items []Item) FarmerView {
	return FarmerView{newBase(items, statusBuckets, Classify, func(Status) []Action { return []Action{} })}
}

func (FarmerView) Role() string { return RoleFarmer }

// OwnerView offers approve and reject on requests and complete and cancel on active bookings.
type OwnerView struct{ base }

func NewOwnerView(items []Item) OwnerView {
	return OwnerView{newBase(items, statusBuckets, Classify, ownerActions)}
}

func (OwnerView) Role() string { return RoleOwner }

func ownerActions(s Status) []Action {
	switch Classify(s) {
	case BucketRequests:
		return []Action{Approve, Reject}
	case BucketActive:
		return []Action{Complete, Cancel}
	default:
		return []Action{}
	}
}

// AdminView lists every booking in one bucket and offers force cancel on pending and
// confirmed ones.
type AdminView struct{ base }

func NewAdminView(items []Item) AdminView {
	return AdminView{newBase(items, []Bucket{BucketAll}, func(Status) Bucket { return BucketAll }, adminActions)}
}

func (AdminView) Role() string { return RoleAdmin }

func adminActions(s Status) []Action {
	switch s {
	case Pending, Confirmed:
		return []Action{ForceCancel}
	default:
		return []Action{}
	}
}

// Build returns the view for role.
func Build(role string, items []Item) (View, error) {
	switch role {
	case RoleFarmer:
		return NewFarmerView(items), nil
	case RoleOwner:
		return NewOwnerView(items), nil
	case RoleAdmin:
		return NewAdminView(items), nil
	default:
		return nil, fmt.Errorf("no booking view for role %q", role)
	}
}
