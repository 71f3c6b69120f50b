package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
)

type horizonErrorBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Extras struct {
		ResultCodes struct {
			Transaction string   `json:"transaction"`
			Operations  []string `json:"operations"`
		} `json:"result_codes"`
	} `json:"extras"`
}

// extractError parses a non-2xx JSON body into a RemoteError per
// spec.md §4.C6: title, falling back to detail, with result codes
// appended in brackets/op[i] form when present.
func extractError(body []byte) *walleterr.RemoteError {
	var parsed horizonErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &walleterr.RemoteError{Title: "unrecognized error response"}
	}
	title := parsed.Title
	if title == "" {
		title = parsed.Detail
	}
	re := &walleterr.RemoteError{Title: title}
	codes := parsed.Extras.ResultCodes
	if codes.Transaction != "" || len(codes.Operations) > 0 {
		re.Codes = &walleterr.ResultCodes{
			Transaction: codes.Transaction,
			Operations:  codes.Operations,
		}
	}
	return re
}

// detailFor returns a short human-readable string for logging/transport
// errors, reusing the same title/detail extraction as extractError.
func detailFor(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var parsed horizonErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Title != "" {
		return parsed.Title
	}
	return parsed.Detail
}

func fmtStatus(status int) string {
	return fmt.Sprintf("HTTP %d", status)
}
