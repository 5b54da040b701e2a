package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"
)

// tabularHeader is written unquoted; every data field is quoted.
const tabularHeader = "ID,Type,Amount,Currency,Recipient,Date"

// EncodeTabular renders txs as comma-separated rows in the given order.
func EncodeTabular(txs []domain.Transaction) []byte {
	var buf bytes.Buffer
	buf.WriteString(tabularHeader)
	for _, tx := range txs {
		buf.WriteByte('\n')
		fields := []string{tx.ID, string(tx.Type), tx.Amount.String(), tx.Currency, tx.Recipient, tx.Date}
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
			buf.WriteByte('"')
		}
	}
	return buf.Bytes()
}

// ExportTransactions renders txs in format. Any failure is reported as ExportFailed.
func ExportTransactions(
	txs []domain.Transaction,
	format domain.ExportFormat,
	renderer ports.SnapshotRenderer,
	prefix string,
	at time.Time,
) (domain.ExportPayload, error) {
	payload := domain.ExportPayload{
		Format:      format,
		Filename:    domain.ExportFilename(prefix, format, at),
		ContentType: format.ContentType(),
		Rows:        len(txs),
	}

	switch format {
	case domain.ExportFormatTabular:
		payload.Data = EncodeTabular(txs)
	case domain.ExportFormatSnapshot:
		if renderer == nil {
			return domain.ExportPayload{}, apperror.ErrExportFailed(errors.New("no snapshot renderer configured"))
		}
		data, err := renderer.Render(txs)
		if err != nil {
			return domain.ExportPayload{}, apperror.ErrExportFailed(fmt.Errorf("render snapshot: %w", err))
		}
		payload.Data = data
	default:
		return domain.ExportPayload{}, apperror.ErrExportFailed(fmt.Errorf("unknown export format %q", format))
	}
	return payload, nil
}
