package kernel

type ReportID string

func NewReportID(id string) ReportID { return ReportID(id) }
func (r ReportID) String() string    { return string(r) }
func (r ReportID) IsEmpty() bool     { return string(r) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type FeedbackID string

func NewFeedbackID(id string) FeedbackID { return FeedbackID(id) }
func (f FeedbackID) String() string      { return string(f) }
func (f FeedbackID) IsEmpty() bool       { return string(f) == "" }
