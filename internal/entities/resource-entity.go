package entities

// ResourceName is the fixed file name of one dashboard document.
type ResourceName string

const (
	ResourceDashboard      ResourceName = "dashboard-data.json"
	ResourceResolutionRate ResourceName = "resolution-rate.json"
	ResourceCategoryTime   ResourceName = "avg-time-by-category.json"
)

// AllResources lists the documents in fetch order.
var AllResources = []ResourceName{ResourceDashboard, ResourceResolutionRate, ResourceCategoryTime}

type ResourceOutcome string

const (
	OutcomeAccepted ResourceOutcome = "accepted"
	OutcomeRejected ResourceOutcome = "rejected"
	OutcomeFailed   ResourceOutcome = "failed"
	OutcomeTimedOut ResourceOutcome = "timed_out"
)

// ResourceReport records how one document settled during a load.
type ResourceReport struct {
	Resource ResourceName
	Outcome  ResourceOutcome
	Warnings int
	Err      error
}

func (r ResourceReport) Accepted() bool { return r.Outcome == OutcomeAccepted }
