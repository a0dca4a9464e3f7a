package httptransport

import (
	"trastienda/internal/audit"
	"trastienda/pkg/platform/middleware/metadata"
)

// FilterFieldResponse carries the sanitized value to echo into the input,
// plus an inline hint when the country constrains the field.
type FilterFieldResponse struct {
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

// HistoryResponse lists an entity's records oldest first; display layers
// wanting newest-first sort on their side.
type HistoryResponse struct {
	Records []HistoryRecord `json:"records"`
}

// HistoryRecord decorates an audit record with an operator-friendly client
// summary ("Chrome 120 on Linux") derived from the raw User-Agent.
type HistoryRecord struct {
	audit.Record
	ClientSummary string `json:"clientSummary,omitempty"`
}

func toHistoryResponse(records []audit.Record) HistoryResponse {
	response := HistoryResponse{Records: make([]HistoryRecord, len(records))}
	for i, record := range records {
		response.Records[i] = HistoryRecord{
			Record:        record,
			ClientSummary: metadata.SummarizeUserAgent(record.Client.UserAgent),
		}
	}
	return response
}
