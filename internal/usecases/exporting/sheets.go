package exporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	newWorksheetRows = 1000
	newWorksheetCols = 50
)

// SheetsWriter é o subconjunto da API do Google Sheets usado na exportação
type SheetsWriter interface {
	WorksheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error
	Clear(ctx context.Context, spreadsheetID, a1Range string) error
	Update(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error
}

type GoogleSheetsWriter struct {
	srv *sheets.Service
}

// NewGoogleSheetsWriter autentica com o JSON da conta de serviço.
// A planilha precisa estar compartilhada com o email da conta de serviço.
func NewGoogleSheetsWriter(ctx context.Context, credentialsPath string, opts ...option.ClientOption) (*GoogleSheetsWriter, error) {
	if credentialsPath != "" {
		opts = append([]option.ClientOption{
			option.WithCredentialsFile(credentialsPath),
			option.WithScopes(sheets.SpreadsheetsScope),
		}, opts...)
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Google Sheets: %w", err)
	}
	return &GoogleSheetsWriter{srv: srv}, nil
}

func (g *GoogleSheetsWriter) WorksheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	ss, err := g.srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (g *GoogleSheetsWriter) AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title:          title,
					GridProperties: &sheets.GridProperties{RowCount: rows, ColumnCount: cols},
				},
			},
		}},
	}
	if _, err := g.srv.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("erro ao criar aba %q: %w", title, err)
	}
	return nil
}

func (g *GoogleSheetsWriter) Clear(ctx context.Context, spreadsheetID, a1Range string) error {
	if _, err := g.srv.Spreadsheets.Values.Clear(spreadsheetID, a1Range, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("erro ao limpar %s: %w", a1Range, err)
	}
	return nil
}

func (g *GoogleSheetsWriter) Update(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error {
	_, err := g.srv.Spreadsheets.Values.
		Update(spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao escrever em %s: %w", a1Range, err)
	}
	return nil
}

// quoteSheet escapa o nome da aba para notação A1
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// PushTable cria a aba quando não existe, limpa e escreve cabeçalho + linhas a partir de A1
func PushTable(ctx context.Context, w SheetsWriter, spreadsheetID, worksheet string, t Table) error {
	titles, err := w.WorksheetTitles(ctx, spreadsheetID)
	if err != nil {
		return err
	}

	exists := false
	for _, title := range titles {
		if title == worksheet {
			exists = true
			break
		}
	}
	if !exists {
		logrus.WithField("worksheet", worksheet).Info("sheets: aba não encontrada, criando")
		if err := w.AddWorksheet(ctx, spreadsheetID, worksheet, newWorksheetRows, newWorksheetCols); err != nil {
			return err
		}
	}

	sheet := quoteSheet(worksheet)
	if err := w.Clear(ctx, spreadsheetID, sheet); err != nil {
		return err
	}
	return w.Update(ctx, spreadsheetID, sheet+"!A1", t.Values())
}
