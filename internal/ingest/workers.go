package ingest

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dtnitsch/gutenberg-ingest/models"
	"github.com/dtnitsch/gutenberg-ingest/pkg/mirror"
)

// Transport is the fetch capability the engine depends on. The
// production implementation is pkg/fetcher; tests substitute fakes.
type Transport interface {
	GetText(url string) (string, error)
}

// progressInterval spaces out progress logging so long runs don't
// flood the output.
const progressInterval = 100

// run downloads every record through a fixed-size worker pool. A new
// record is admitted as soon as any in-flight record completes, so a
// record stuck on a slow candidate never stalls unrelated work.
// Returns the aggregated totals and the records now present locally,
// in completion order.
func run(logger *slog.Logger, records []models.Record, mirrorRoot string, store *mirror.Store, transport Transport, workerCount int) (Totals, []models.Record) {
	if workerCount < 1 {
		workerCount = DefaultWorkerCount
	}

	logger.Info("Starting concurrent download phase", "records", len(records), "workers", workerCount, "mirror_root", mirrorRoot)
	start := time.Now()

	var wg sync.WaitGroup
	jobs := make(chan Job, len(records))
	results := make(chan Result, len(records))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, mirrorRoot, store, transport, &wg, jobs, results)
	}

	for _, rec := range records {
		jobs <- Job{Record: rec}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single aggregation point: the counters and the success list are
	// only touched on this goroutine, so concurrent completions cannot
	// lose updates.
	var totals Totals
	var succeeded []models.Record
	for result := range results {
		totals.Completed++
		switch {
		case result.Error != nil:
			totals.Failed++
			logger.Error("Record failed", "id", result.Record.ID, "title", result.Record.Title, "error", result.Error)
		case result.Skipped:
			totals.Skipped++
			succeeded = append(succeeded, result.Record)
		default:
			totals.Downloaded++
			succeeded = append(succeeded, result.Record)
		}
		if totals.Completed%progressInterval == 0 {
			logger.Info("Progress", "completed", totals.Completed, "total", len(records), "downloaded", totals.Downloaded, "skipped", totals.Skipped, "failed", totals.Failed)
		}
	}

	logger.Info("Download phase finished", "completed", totals.Completed, "downloaded", totals.Downloaded, "skipped", totals.Skipped, "failed", totals.Failed, "duration", time.Since(start).Round(time.Millisecond).String())
	return totals, succeeded
}

// worker processes jobs until the queue closes, reporting exactly one
// Result per record.
func worker(id int, logger *slog.Logger, mirrorRoot string, store *mirror.Store, transport Transport, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		results <- process(id, logger, job.Record, mirrorRoot, store, transport)
	}
}

// process runs the per-record procedure: skip if the artifact exists,
// otherwise try the candidate URLs strictly in order and persist the
// first body that arrives. Exhausting all candidates fails only this
// record, carrying the last error for logging.
func process(workerID int, logger *slog.Logger, rec models.Record, mirrorRoot string, store *mirror.Store, transport Transport) Result {
	result := Result{Record: rec, FilePath: store.Path(rec.ID)}

	if store.Has(rec.ID) {
		result.Skipped = true
		return result
	}

	if err := store.EnsureDir(rec.ID); err != nil {
		result.Error = err
		return result
	}

	var lastErr error
	for _, url := range mirror.CandidateURLs(mirrorRoot, rec.ID) {
		body, err := transport.GetText(url)
		if err != nil {
			lastErr = err
			logger.Debug("Candidate failed", "worker_id", workerID, "id", rec.ID, "url", url, "error", err)
			continue
		}
		if err := store.Save(rec.ID, []byte(body)); err != nil {
			result.Error = err
			return result
		}
		return result
	}

	result.Error = fmt.Errorf("all candidates failed for %d: %w", rec.ID, lastErr)
	return result
}
