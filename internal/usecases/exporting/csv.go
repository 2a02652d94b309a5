package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV grava cabeçalho e linhas em UTF-8, sem coluna de índice
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("erro ao escrever linhas do CSV: %w", err)
	}
	return nil
}

func CSVBytes(t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
