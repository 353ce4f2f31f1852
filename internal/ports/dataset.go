package ports

import (
	"context"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// DatasetPort supplies one immutable snapshot of the three relations.
// Implementations classify failures through errbuilder codes: transport or
// availability problems (unreachable endpoint, missing file) versus a
// document that arrived but does not match the dataset shape contract.
// The application treats any load failure as "no data available".
type DatasetPort interface {
	LoadSnapshot(ctx context.Context) (types.Database, error)
}
