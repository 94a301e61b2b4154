package ingest

// Stage is the pipeline position of one import request. Kept as an explicit
// value rather than implicit control flow so partial-failure reporting is
// directly inspectable in tests and logs.
type Stage string

const (
	StageReceived       Stage = "RECEIVED"
	StageDecoded        Stage = "DECODED"
	StageHeaderLocated  Stage = "HEADER_LOCATED"
	StageHeaderResolved Stage = "HEADER_RESOLVED"
	StageRecordsBuilt   Stage = "RECORDS_BUILT"
	StageCommitted      Stage = "COMMITTED"
)

// String returns the stage name
func (s Stage) String() string {
	return string(s)
}
