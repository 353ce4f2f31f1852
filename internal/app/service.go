package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/jennyflying-25/cisco-checker-app/internal/core"
	"github.com/jennyflying-25/cisco-checker-app/internal/ports"
	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// Service glues the dataset port to the resolution engine and owns the
// snapshot lifecycle.  Searches run against whatever snapshot is live; the
// engine itself never touches the loader.
type Service struct {
	Dataset ports.DatasetPort
	Engine  core.Engine

	store SnapshotStore
}

func NewService(dataset ports.DatasetPort) *Service {
	return &Service{
		Dataset: dataset,
		Engine:  core.NewEngine(),
	}
}

// DatasetStats summarizes the live snapshot for operational surfaces.
type DatasetStats struct {
	Loaded        bool                `json:"loaded"`
	Products      int                 `json:"products"`
	Compatibility int                 `json:"compatibility"`
	SwitchBays    int                 `json:"switchBays"`
	Skipped       types.SkippedCounts `json:"skipped"`
}

// Load fetches a snapshot through the dataset port and swaps it in.  On
// failure the previous snapshot, if any, stays live.
func (s *Service) Load(ctx context.Context) error {
	if s.Dataset == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service requires a dataset port")
	}
	db, err := s.Dataset.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	s.store.Swap(db)
	return nil
}

// Search resolves one query against the live snapshot and folds the result
// into the presentation outcome.  A missing snapshot short-circuits to a
// failed state without invoking the engine; an empty or unmatched query is
// a successful empty outcome.
func (s *Service) Search(ctx context.Context, rawQuery string) types.SearchState {
	term := strings.TrimSpace(rawQuery)
	db := s.store.Current()
	if db == nil {
		return types.FailedSearch(term, "compatibility data is not available")
	}
	groups, err := s.Engine.Resolve(ctx, db, term)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("term", term).Msg("search failed")
		return types.FailedSearch(term, "search failed, try again")
	}
	if len(groups) == 0 {
		return types.EmptySearch(term)
	}
	return types.GroupsSearch(term, groups)
}

// Stats reports the size of the live snapshot.
func (s *Service) Stats() DatasetStats {
	db := s.store.Current()
	if db == nil {
		return DatasetStats{}
	}
	return DatasetStats{
		Loaded:        true,
		Products:      len(db.Products),
		Compatibility: len(db.Compatibility),
		SwitchBays:    len(db.SwitchBays),
		Skipped:       db.Skipped,
	}
}
