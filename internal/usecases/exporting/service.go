package exporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
)

var (
	ErrSheetsNotConfigured = errors.New("GOOGLE_SHEETS_SPREADSHEET_ID e GOOGLE_SERVICE_ACCOUNT_JSON_PATH precisam estar configurados")
	ErrUnsafeCredentials   = errors.New("permissões do JSON da conta de serviço parecem inseguras")
)

type Exporter interface {
	InsightsCSV(ctx context.Context, filters *domain.InsightFilters) ([]byte, error)
	CombinedCSV(ctx context.Context, filters *domain.InsightFilters) ([]byte, error)
	LLMMarkdown(ctx context.Context, filters *domain.InsightFilters, opts analysis.LLMExportOptions) (string, error)

	// PushSheets envia as linhas filtradas do período para o Google Sheets
	PushSheets(ctx context.Context, filters *domain.InsightFilters) (*SheetsResult, error)
	SheetsConfigured() bool
}

type SheetsResult struct {
	SpreadsheetID string `json:"spreadsheet_id" yaml:"spreadsheet_id"`
	Worksheet     string `json:"worksheet" yaml:"worksheet"`
	Rows          int    `json:"rows" yaml:"rows"`
}

type SheetsWriterFactory func(ctx context.Context, credentialsPath string) (SheetsWriter, error)

type Service struct {
	cfg       *config.Config
	insights  insighting.Insighter
	analyzer  analysis.Analyzer
	newWriter SheetsWriterFactory
}

func NewService(cfg *config.Config, insights insighting.Insighter, analyzer analysis.Analyzer) *Service {
	return &Service{
		cfg:      cfg,
		insights: insights,
		analyzer: analyzer,
		newWriter: func(ctx context.Context, credentialsPath string) (SheetsWriter, error) {
			return NewGoogleSheetsWriter(ctx, credentialsPath)
		},
	}
}

// WithSheetsWriter troca a criação do cliente do Google Sheets
func (s *Service) WithSheetsWriter(factory SheetsWriterFactory) *Service {
	s.newWriter = factory
	return s
}

func (s *Service) SheetsConfigured() bool {
	return s.cfg.Sheets.Configured()
}

func (s *Service) InsightsCSV(ctx context.Context, filters *domain.InsightFilters) ([]byte, error) {
	resp, err := s.insights.GetInsights(ctx, filters)
	if err != nil {
		return nil, err
	}
	return CSVBytes(InsightTable(resp.Rows))
}

func (s *Service) CombinedCSV(ctx context.Context, filters *domain.InsightFilters) ([]byte, error) {
	view, err := s.insights.GetCombined(ctx, filters)
	if err != nil {
		return nil, err
	}
	return CSVBytes(MatchedTable(view.Rows))
}

func (s *Service) LLMMarkdown(ctx context.Context, filters *domain.InsightFilters, opts analysis.LLMExportOptions) (string, error) {
	return s.analyzer.LLMExport(ctx, filters, opts)
}

// PushSheets recusa o envio quando o JSON da conta de serviço está acessível a outros usuários
func (s *Service) PushSheets(ctx context.Context, filters *domain.InsightFilters) (*SheetsResult, error) {
	if !s.SheetsConfigured() {
		return nil, ErrSheetsNotConfigured
	}

	path := s.cfg.Sheets.ServiceAccountJSONPath
	if ok, reason := config.CheckPathPermissions(path); !ok {
		return nil, fmt.Errorf("%w (%s). Recomendado: chmod 600 %s", ErrUnsafeCredentials, reason, path)
	}

	resp, err := s.insights.GetInsights(ctx, filters)
	if err != nil {
		return nil, err
	}

	writer, err := s.newWriter(ctx, path)
	if err != nil {
		return nil, err
	}

	table := InsightTable(resp.Rows)
	if err := PushTable(ctx, writer, s.cfg.Sheets.SpreadsheetID, s.cfg.Sheets.WorksheetName, table); err != nil {
		return nil, fmt.Errorf("erro ao exportar para o Google Sheets: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet": s.cfg.Sheets.SpreadsheetID,
		"worksheet":   s.cfg.Sheets.WorksheetName,
		"rows":        len(table.Rows),
	}).Info("sheets: exportação concluída")

	return &SheetsResult{
		SpreadsheetID: s.cfg.Sheets.SpreadsheetID,
		Worksheet:     s.cfg.Sheets.WorksheetName,
		Rows:          len(table.Rows),
	}, nil
}
