package ports

import (
	"context"

	"tpstats/domain/timepoint"
)

// StatsSource fetches the statistics of one timepoint.
// A returned error means the transport or the body failed; an application
// level failure arrives as a response whose status is not "success".
type StatsSource interface {
	FetchTimepoint(ctx context.Context, id timepoint.ID) (*timepoint.StatsResponse, error)
}
