package lifecycle

type Status string

const (
	Pending   Status = "PENDING"
	Confirmed Status = "CONFIRMED"
	Completed Status = "COMPLETED"
	Cancelled Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Completed, Cancelled},
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransition mirrors the backend state machine.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// ContactVisible reports whether peers may see each other's phone and address.
func (s Status) ContactVisible() bool {
	return s == Confirmed || s == Completed
}

type Bucket string

const (
	BucketRequests Bucket = "requests"
	BucketActive   Bucket = "active"
	BucketHistory  Bucket = "history"
	BucketAll      Bucket = "all"
)

// Classify places a status in the requests, active or history bucket.
func Classify(s Status) Bucket {
	switch s {
	case Pending:
		return BucketRequests
	case Confirmed:
		return BucketActive
	default:
		return BucketHistory
	}
}

type Action string

const (
	Approve     Action = "approve"
	Reject      Action = "reject"
	Complete    Action = "complete"
	Cancel      Action = "cancel"
	ForceCancel Action = "force-cancel"
)

// Target is the status a successful action leads to.
func (a Action) Target() Status {
	switch a {
	case Approve:
		return Confirmed
	case Complete:
		return Completed
	default:
		return Cancelled
	}
}

func (a Action) Valid() bool {
	switch a {
	case Approve, Reject, Complete, Cancel, ForceCancel:
		return true
	}

	return false
}
