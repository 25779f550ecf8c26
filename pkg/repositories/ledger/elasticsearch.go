// Package ledger archives gem transactions into Elasticsearch for audit and
// history display. The engine never reads the archive back for decisions;
// SQLite stays the source of truth and archive failures are non-fatal.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fintamago/fintamago/internal/logging"
	"github.com/fintamago/fintamago/pkg/entities"
	petRepo "github.com/fintamago/fintamago/pkg/repositories/pet"
)

// Config holds configuration options for the ledger archiver
type Config struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	BatchSize   int
	Lookback    time.Duration // window for the first archive run
}

// DefaultConfig returns a default archiver configuration
func DefaultConfig() *Config {
	return &Config{
		URL:         "http://localhost:9200",
		IndexPrefix: "fintamago",
		BatchSize:   500,
		Lookback:    24 * time.Hour,
	}
}

// archiveDoc is the document shape indexed per transaction
type archiveDoc struct {
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	GemsAfter int       `json:"gems_after"`
}

// Archiver bulk-indexes gem transactions into a monthly index
type Archiver struct {
	client *elasticsearch.Client
	repo   petRepo.Repository
	config *Config
	logger *logging.Logger

	mu      sync.Mutex
	lastRun time.Time
}

// NewArchiver creates an archiver backed by the given repository
func NewArchiver(repo petRepo.Repository, cfg *Config, logger *logging.Logger) (*Archiver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.Default
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating elasticsearch client: %w", err)
	}

	return &Archiver{
		client: client,
		repo:   repo,
		config: cfg,
		logger: logger,
	}, nil
}

// ArchiveRecent indexes every transaction written since the previous run
// (or within the configured lookback on the first run). Intended as a
// scheduler task.
func (a *Archiver) ArchiveRecent(ctx context.Context) error {
	a.mu.Lock()
	since := a.lastRun
	a.mu.Unlock()

	runStarted := time.Now()
	if since.IsZero() {
		since = runStarted.Add(-a.config.Lookback)
	}

	transactions, err := a.repo.GetTransactionsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("error loading transactions to archive: %w", err)
	}
	if len(transactions) == 0 {
		return nil
	}

	for start := 0; start < len(transactions); start += a.config.BatchSize {
		end := start + a.config.BatchSize
		if end > len(transactions) {
			end = len(transactions)
		}
		if err := a.indexBatch(ctx, transactions[start:end]); err != nil {
			return err
		}
	}

	a.logger.Info("Archived %d gem transactions to elasticsearch", len(transactions))

	a.mu.Lock()
	a.lastRun = runStarted
	a.mu.Unlock()
	return nil
}

// indexBatch bulk-indexes one batch of transactions
func (a *Archiver) indexBatch(ctx context.Context, transactions []*entities.GemTransaction) error {
	var buf bytes.Buffer
	for _, tx := range transactions {
		action := map[string]map[string]string{
			"index": {
				"_index": a.indexFor(tx.Timestamp),
				"_id":    tx.ID,
			},
		}
		meta, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("error encoding bulk action: %w", err)
		}
		doc, err := json.Marshal(archiveDoc{
			UserID:    tx.UserID,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Reason:    tx.Reason,
			Timestamp: tx.Timestamp,
			GemsAfter: tx.GemsAfter,
		})
		if err != nil {
			return fmt.Errorf("error encoding transaction %s: %w", tx.ID, err)
		}

		buf.Write(meta)
		buf.WriteByte('\n')
		buf.Write(doc)
		buf.WriteByte('\n')
	}

	res, err := a.client.Bulk(bytes.NewReader(buf.Bytes()), a.client.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error executing bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}
	return nil
}

// indexFor returns the monthly index name for a transaction timestamp
func (a *Archiver) indexFor(ts time.Time) string {
	return fmt.Sprintf("%s-gems-%s", a.config.IndexPrefix, ts.UTC().Format("2006.01"))
}
