package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

const timestampLayout = "2006-01-02 15:04:05"

var headers = []interface{}{
	"Investment ID",
	"Date",
	"Telegram ID",
	"Full Name",
	"Investment Amount $",
	"Email",
	"Transaction Hash",
	"Wallet Address",
}

// RecordStore реализует ports.RecordStore поверх Google Sheets
type RecordStore struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *slog.Logger
}

func NewRecordStore(ctx context.Context, keyFile, spreadsheetID, sheetName string, log *slog.Logger) (*RecordStore, error) {
	if _, err := os.Stat(keyFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("service account key not found at path: %s", keyFile)
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(keyFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &RecordStore{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        log,
	}, nil
}

// EnsureHeaders создаёт строку заголовков, если лист пустой
func (s *RecordStore) EnsureHeaders(ctx context.Context) error {
	rng := fmt.Sprintf("%s!1:1", s.sheetName)
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	_, err = s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{headers},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	s.logger.Info("created sheet headers", "spreadsheet_id", s.spreadsheetID)
	return nil
}

// ListApplicationIDs возвращает ID заявок из первой колонки без заголовка
func (s *RecordStore) ListApplicationIDs(ctx context.Context) ([]string, error) {
	rng := fmt.Sprintf("%s!A2:A", s.sheetName)
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read id column: %w", err)
	}

	ids := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if id, ok := row[0].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FindRow возвращает номер строки (с 1) по ID заявки
func (s *RecordStore) FindRow(ctx context.Context, applicationID string) (int, error) {
	rng := fmt.Sprintf("%s!A:A", s.sheetName)
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read id column: %w", err)
	}

	for idx, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if id, ok := row[0].(string); ok && id == applicationID {
			return idx + 1, nil
		}
	}
	return 0, ports.ErrRowNotFound
}

// AppendRow добавляет строку заявки в конец листа
func (s *RecordStore) AppendRow(ctx context.Context, rec domain.Record) error {
	row := []interface{}{
		rec.ApplicationID,
		rec.Timestamp.Format(timestampLayout),
		strconv.FormatInt(rec.ChatID, 10),
		rec.FullName,
		rec.Amount,
		rec.Email,
		rec.TxHash,
		rec.Wallet,
	}

	rng := fmt.Sprintf("%s!A:H", s.sheetName)
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row for %s: %w", rec.ApplicationID, err)
	}
	return nil
}

// UpdateCell обновляет одну ячейку существующей строки
func (s *RecordStore) UpdateCell(ctx context.Context, row, column int, value string) error {
	rng := fmt.Sprintf("%s!%c%d", s.sheetName, 'A'+rune(column-1), row)
	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", rng, err)
	}
	return nil
}
