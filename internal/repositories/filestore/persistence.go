package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

const (
	SalesFile     = "sales.json"
	PurchasesFile = "purchases.json"
	UsersFile     = "users.json"
)

// userRecord is the stored shape of a user. Password is only read, from
// documents written before credentials were hashed.
type userRecord struct {
	domain.User
	Password string `json:"password,omitempty"`
}

// LoadedData is the content of the three collection documents.
type LoadedData struct {
	Sales     []domain.Sale
	Purchases []domain.Purchase
	Users     []userRecord
}

// Persister reads and writes the collection documents under one directory.
type Persister struct {
	dir    string
	logger *slog.Logger
}

// NewPersister creates dataDir if needed.
func NewPersister(dataDir string, logger *slog.Logger) (*Persister, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dataDir, err)
	}
	return &Persister{dir: dataDir, logger: logger}, nil
}

// Dir returns the data directory.
func (p *Persister) Dir() string {
	return p.dir
}

// Load reads all three documents. A missing document yields an empty collection.
// A document that cannot be read or parsed is moved aside and treated as empty;
// Load itself does not fail on bad data.
func (p *Persister) Load(ctx context.Context) (LoadedData, error) {
	var data LoadedData
	if err := ctx.Err(); err != nil {
		return data, err
	}

	if _, err := p.readCollection(ctx, SalesFile, &data.Sales); err != nil {
		data.Sales = nil
	}
	if _, err := p.readCollection(ctx, PurchasesFile, &data.Purchases); err != nil {
		data.Purchases = nil
	}
	if _, err := p.readCollection(ctx, UsersFile, &data.Users); err != nil {
		data.Users = nil
	}

	if data.Sales == nil {
		data.Sales = []domain.Sale{}
	}
	if data.Purchases == nil {
		data.Purchases = []domain.Purchase{}
	}
	if data.Users == nil {
		data.Users = []userRecord{}
	}
	return data, nil
}

// readCollection decodes name into out. found reports whether the file existed.
func (p *Persister) readCollection(ctx context.Context, name string, out any) (found bool, err error) {
	path := filepath.Join(p.dir, name)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to read collection", slog.String("file", path), slog.String("error", err.Error()))
		return true, fmt.Errorf("%w: read %s: %v", apperrors.ErrPersistence, name, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return true, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		p.logger.ErrorContext(ctx, "Failed to parse collection, starting empty", slog.String("file", path), slog.String("error", err.Error()))
		p.quarantine(ctx, path, raw)
		return true, fmt.Errorf("%w: parse %s: %v", apperrors.ErrPersistence, name, err)
	}
	return true, nil
}

// quarantine copies an unreadable document aside so the next save does not destroy it.
func (p *Persister) quarantine(ctx context.Context, path string, raw []byte) {
	backup := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.WriteFile(backup, raw, 0o644); err != nil {
		p.logger.WarnContext(ctx, "Failed to back up corrupt collection", slog.String("file", backup), slog.String("error", err.Error()))
		return
	}
	p.logger.WarnContext(ctx, "Corrupt collection backed up", slog.String("file", backup))
}

func (p *Persister) SaveSales(sales []domain.Sale) error {
	if sales == nil {
		sales = []domain.Sale{}
	}
	return p.writeCollection(SalesFile, sales)
}

func (p *Persister) SavePurchases(purchases []domain.Purchase) error {
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	return p.writeCollection(PurchasesFile, purchases)
}

func (p *Persister) SaveUsers(users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	return p.writeCollection(UsersFile, users)
}

// writeCollection replaces name with the indented JSON of v via a temp file and rename.
func (p *Persister) writeCollection(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", apperrors.ErrPersistence, name, err)
	}
	path := filepath.Join(p.dir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrPersistence, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", apperrors.ErrPersistence, name, err)
	}
	return nil
}
