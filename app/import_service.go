package app

import (
	"context"
	"fmt"

	"fieldops/domain/core"
	"fieldops/domain/ingest"
	"fieldops/domain/pricelist"
	"fieldops/domain/store"
	"fieldops/internal"
	"fieldops/internal/errors"
	"fieldops/ports"

	"golang.org/x/sync/semaphore"
)

// ImportTarget selects which master-data table an upload reconciles into
type ImportTarget string

const (
	TargetStores    ImportTarget = "stores"
	TargetPriceList ImportTarget = "pricelist"
)

// ParseImportTarget maps the request selector to a known target
func ParseImportTarget(s string) (ImportTarget, error) {
	switch ImportTarget(s) {
	case TargetStores:
		return TargetStores, nil
	case TargetPriceList:
		return TargetPriceList, nil
	default:
		return "", errors.InvalidInput(fmt.Sprintf("unknown import target %q", s))
	}
}

// GridDecoder turns uploaded bytes into the raw cell grid
type GridDecoder interface {
	Decode(data []byte) (ingest.RawGrid, error)
}

// ImportSummary reports how far one upload got and how many records landed
type ImportSummary struct {
	JobID  core.ImportJobID `json:"job_id"`
	Target ImportTarget     `json:"target"`
	Stage  ingest.Stage     `json:"stage"`
	Count  int              `json:"count"`
}

// ImportService runs the master-data reconciliation pipeline: decode the
// upload, locate and resolve the header row, build canonical records, and
// hand the batch to the transactional writer. Each upload is processed
// synchronously; the semaphore bounds how many decoded grids are held in
// memory at once.
type ImportService struct {
	decoder GridDecoder
	stores  ports.StoreRepository
	prices  ports.PriceListRepository
	sem     *semaphore.Weighted
	logger  *internal.Logger
}

// NewImportService creates an import service
func NewImportService(decoder GridDecoder, stores ports.StoreRepository, prices ports.PriceListRepository, maxConcurrent int64) *ImportService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ImportService{
		decoder: decoder,
		stores:  stores,
		prices:  prices,
		sem:     semaphore.NewWeighted(maxConcurrent),
		logger:  internal.DefaultLogger.Component("ImportService"),
	}
}

// Import reconciles one uploaded spreadsheet into the selected target.
// The returned summary always carries the last stage reached, so callers
// and tests can see where a failed request stopped.
func (s *ImportService) Import(ctx context.Context, target ImportTarget, data []byte) (*ImportSummary, error) {
	summary := &ImportSummary{
		JobID:  core.NewImportJobID(),
		Target: target,
		Stage:  ingest.StageReceived,
	}

	if len(data) == 0 {
		return summary, errors.EmptyUpload()
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return summary, errors.Wrap(err, "import slot unavailable")
	}
	defer s.sem.Release(1)

	grid, err := s.decoder.Decode(data)
	if err != nil {
		return summary, errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "failed to decode upload"))
	}
	summary.Stage = ingest.StageDecoded
	s.logger.Debug("job=%s target=%s decoded %d rows", summary.JobID, target, grid.Rows())

	switch target {
	case TargetPriceList:
		err = s.importPriceList(ctx, grid, summary)
	default:
		err = s.importStores(ctx, grid, summary)
	}
	if err != nil {
		s.logger.Warn("job=%s target=%s failed at %s: %v", summary.JobID, target, summary.Stage, err)
		return summary, err
	}

	summary.Stage = ingest.StageCommitted
	s.logger.Info("job=%s target=%s committed %d records", summary.JobID, target, summary.Count)
	return summary, nil
}

func (s *ImportService) importStores(ctx context.Context, grid ingest.RawGrid, summary *ImportSummary) error {
	headerIdx, err := ingest.LocateHeader(grid, store.Anchor)
	if err != nil {
		return err
	}
	summary.Stage = ingest.StageHeaderLocated

	columns := ingest.ResolveHeaders(grid[headerIdx], store.Aliases)
	if _, ok := columns.Column(store.FieldOracleCCID); !ok {
		return errors.KeyColumnMissing(store.FieldOracleCCID)
	}
	summary.Stage = ingest.StageHeaderResolved

	records := ingest.BuildRecords(grid, headerIdx, columns, store.FieldOracleCCID, store.FromRow)
	summary.Stage = ingest.StageRecordsBuilt

	count, err := s.stores.UpsertBatch(ctx, records, store.UpdatableFields)
	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}
	summary.Count = count
	return nil
}

func (s *ImportService) importPriceList(ctx context.Context, grid ingest.RawGrid, summary *ImportSummary) error {
	headerIdx, err := ingest.LocateHeader(grid, pricelist.Anchor)
	if err != nil {
		return err
	}
	summary.Stage = ingest.StageHeaderLocated

	columns := ingest.ResolveHeaders(grid[headerIdx], pricelist.Aliases)
	if _, ok := columns.Column(pricelist.FieldCode); !ok {
		return errors.KeyColumnMissing(pricelist.FieldCode)
	}
	summary.Stage = ingest.StageHeaderResolved

	items := ingest.BuildRecords(grid, headerIdx, columns, pricelist.FieldCode, pricelist.FromRow)
	summary.Stage = ingest.StageRecordsBuilt

	count, err := s.prices.UpsertBatch(ctx, items, pricelist.UpdatableFields)
	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}
	summary.Count = count
	return nil
}
