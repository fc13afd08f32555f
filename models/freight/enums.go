package freight

type FreightStatus string

const (
	FreightStatusQuoted     FreightStatus = "QUOTED"
	FreightStatusRecruiting FreightStatus = "RECRUITING"
	FreightStatusAssigned   FreightStatus = "ASSIGNED"
	FreightStatusInTransit  FreightStatus = "IN_TRANSIT"
	FreightStatusDelivered  FreightStatus = "DELIVERED"
	FreightStatusRejected   FreightStatus = "REJECTED"
)

func (fs FreightStatus) String() string {
	return string(fs)
}

func (fs FreightStatus) IsValid() bool {
	switch fs {
	case FreightStatusQuoted, FreightStatusRecruiting, FreightStatusAssigned,
		FreightStatusInTransit, FreightStatusDelivered, FreightStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the freight can no longer move through the
// sequential workflow. Manual override may still pull it out of a terminal
// state for corrections.
func (fs FreightStatus) IsTerminal() bool {
	return fs == FreightStatusDelivered || fs == FreightStatusRejected
}

// sequentialNext holds the transitions permitted to the driver self-service
// workflow. The operator override path does not consult this table.
var sequentialNext = map[FreightStatus][]FreightStatus{
	FreightStatusQuoted:     {FreightStatusRecruiting, FreightStatusAssigned, FreightStatusRejected},
	FreightStatusRecruiting: {FreightStatusAssigned, FreightStatusRejected},
	FreightStatusAssigned:   {FreightStatusInTransit, FreightStatusRejected},
	FreightStatusInTransit:  {FreightStatusDelivered},
}

// CanTransitionTo reports whether the sequential workflow allows moving
// from fs to next.
func (fs FreightStatus) CanTransitionTo(next FreightStatus) bool {
	for _, allowed := range sequentialNext[fs] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsDriverResponse returns true while a freight offer is still open
// for a driver to accept or reject.
func (fs FreightStatus) AcceptsDriverResponse() bool {
	return fs == FreightStatusQuoted || fs == FreightStatusRecruiting
}

// GetAllFreightStatuses returns all valid freight statuses
func GetAllFreightStatuses() []FreightStatus {
	return []FreightStatus{
		FreightStatusQuoted,
		FreightStatusRecruiting,
		FreightStatusAssigned,
		FreightStatusInTransit,
		FreightStatusDelivered,
		FreightStatusRejected,
	}
}

type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "PENDING"
	BillingStatusIssued    BillingStatus = "ISSUED"
	BillingStatusPaid      BillingStatus = "PAID"
	BillingStatusCancelled BillingStatus = "CANCELLED"
)

func (bs BillingStatus) IsValid() bool {
	switch bs {
	case BillingStatusPending, BillingStatusIssued, BillingStatusPaid, BillingStatusCancelled:
		return true
	default:
		return false
	}
}
