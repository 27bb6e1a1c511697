package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"airtable-relay/internal/relay/client"
	"airtable-relay/internal/relay/logbuf"
	"airtable-relay/internal/relay/metrics"
	"airtable-relay/internal/relay/model"
	"airtable-relay/internal/relay/util"
)

var ErrNameRequired = errors.New("table name is required")

// MetadataClient is the upstream surface the relay depends on.
type MetadataClient interface {
	ListBases(ctx context.Context) ([]model.Base, error)
	ListTables(ctx context.Context, baseID string) ([]model.UpstreamTable, error)
	CreateTable(ctx context.Context, baseID string, spec client.CreateTableSpec) (*model.UpstreamTable, error)
}

type RelayService interface {
	ListBases(ctx context.Context) ([]model.Base, error)
	ListTables(ctx context.Context, baseID string) ([]model.TableSummary, error)
	CreateTable(ctx context.Context, baseID string, req model.CreateTableRequest) (*model.CreatedTable, error)
	TestConnection(ctx context.Context) (int, error)
	RecentLogs(limit int) ([]string, int)
}

type Service struct {
	Client  MetadataClient
	Logs    *logbuf.Buffer
	Metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(c MetadataClient, logs *logbuf.Buffer, m *metrics.Metrics) *Service {
	return &Service{
		Client:  c,
		Logs:    logs,
		Metrics: m,
		logger:  util.GetLogger(),
	}
}

// ListBases relays the base listing, preserving upstream order.
func (s *Service) ListBases(ctx context.Context) ([]model.Base, error) {
	s.Logs.Add("Fetching bases from Airtable")

	start := time.Now()
	bases, err := s.Client.ListBases(ctx)
	s.Metrics.ObserveUpstream("list_bases", start, err)
	if err != nil {
		s.Logs.Addf("Error fetching bases: %v", err)
		s.logger.Error("list bases failed", "error", err)
		return nil, err
	}

	s.Logs.Addf("Fetched %d bases", len(bases))
	return bases, nil
}

// ListTables relays the table listing for one base, projecting each table
// to its summary. The base ID is forwarded unchecked; Airtable reports
// malformed identifiers itself.
func (s *Service) ListTables(ctx context.Context, baseID string) ([]model.TableSummary, error) {
	s.Logs.Addf("Fetching tables for base %s", baseID)

	start := time.Now()
	tables, err := s.Client.ListTables(ctx, baseID)
	s.Metrics.ObserveUpstream("list_tables", start, err)
	if err != nil {
		s.Logs.Addf("Error fetching tables for base %s: %v", baseID, err)
		s.logger.Error("list tables failed", "base", baseID, "error", err)
		return nil, err
	}

	summaries := make([]model.TableSummary, len(tables))
	for i, t := range tables {
		summaries[i] = model.TableSummary{
			ID:             t.ID,
			Name:           t.Name,
			PrimaryFieldID: t.PrimaryFieldID,
			FieldCount:     len(t.Fields),
		}
	}

	s.Logs.Addf("Fetched %d tables for base %s", len(summaries), baseID)
	return summaries, nil
}

// CreateTable submits a table definition to a base. A missing name fails
// before any upstream call; a missing field list is replaced by the default
// schema. The returned table holds the values Airtable recorded, not the
// request echo.
func (s *Service) CreateTable(ctx context.Context, baseID string, req model.CreateTableRequest) (*model.CreatedTable, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = model.DefaultTableFields()
		s.Logs.Addf("No fields supplied for table %q, using default schema", req.Name)
	}

	s.Logs.Addf("Creating table %q in base %s", req.Name, baseID)

	start := time.Now()
	table, err := s.Client.CreateTable(ctx, baseID, client.CreateTableSpec{
		Name:   req.Name,
		Fields: fields,
	})
	s.Metrics.ObserveUpstream("create_table", start, err)
	if err != nil {
		s.Logs.Addf("Error creating table %q in base %s: %v", req.Name, baseID, err)
		s.logger.Error("create table failed", "base", baseID, "table", req.Name, "error", err)
		return nil, err
	}

	s.Logs.Addf("Created table %q with id %s", table.Name, table.ID)
	return &model.CreatedTable{
		ID:     table.ID,
		Name:   table.Name,
		Fields: table.Fields,
	}, nil
}

// TestConnection probes the base listing endpoint and reports only the
// count of bases found.
func (s *Service) TestConnection(ctx context.Context) (int, error) {
	s.Logs.Add("Testing Airtable connectivity")

	start := time.Now()
	bases, err := s.Client.ListBases(ctx)
	s.Metrics.ObserveUpstream("test_connection", start, err)
	if err != nil {
		s.Logs.Addf("Connectivity test failed: %v", err)
		s.logger.Error("connectivity test failed", "error", err)
		return 0, err
	}

	s.Logs.Addf("Connectivity test succeeded, found %d bases", len(bases))
	return len(bases), nil
}

// RecentLogs returns the newest entries of the activity log and the total
// buffered count.
func (s *Service) RecentLogs(limit int) ([]string, int) {
	return s.Logs.Recent(limit)
}
