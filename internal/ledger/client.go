package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/hackbalam/ledgerwallet-go/internal/config"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
	"github.com/hackbalam/ledgerwallet-go/internal/walletlog"
)

// retryBaseDelay is the first inter-attempt sleep: spec.md's backoff
// formula is 1000 × 2^attempt ms with attempt counted from 1, so the
// delay after the first failed attempt is 2s, then 4s, 8s, ...
const retryBaseDelay = 2 * time.Second

// Client is the retrying HTTPS request layer spec.md §4.C6 describes:
// account lookups, payment history, transaction submission and status,
// and testnet funding, each wrapped in the same backoff policy.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	friendbotURL string
	network      config.Network
	maxRetries   int
	logger       *slog.Logger
}

// NewClient builds a Client from a loaded Config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:      cfg.BaseURL(),
		friendbotURL: config.FriendbotURL,
		network:      cfg.Network,
		maxRetries:   cfg.MaxRetries,
		logger:       walletlog.For("ledger"),
	}
}

// GetAccount fetches account state. A 404 is not an error: it reports
// Exists=false (spec.md §4.C6, §4.C7).
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	body, status, err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/accounts/"+url.PathEscape(accountID), nil, "")
	if err != nil {
		return AccountInfo{}, err
	}
	if status == http.StatusNotFound {
		return AccountInfo{AccountID: accountID, Exists: false}, nil
	}
	if status < 200 || status >= 300 {
		return AccountInfo{}, extractError(body)
	}

	var parsed struct {
		AccountID      string `json:"account_id"`
		Sequence       string `json:"sequence"`
		SubentryCount  uint32 `json:"subentry_count"`
		Balances       []struct {
			AssetType string `json:"asset_type"`
			Balance   string `json:"balance"`
		} `json:"balances"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return AccountInfo{}, fmt.Errorf("%w: decoding account response: %v", walleterr.ErrInternal, err)
	}

	seq, err := strconv.ParseUint(parsed.Sequence, 10, 64)
	if err != nil {
		return AccountInfo{}, fmt.Errorf("%w: parsing sequence: %v", walleterr.ErrInternal, err)
	}

	info := AccountInfo{
		AccountID:     parsed.AccountID,
		Sequence:      seq,
		SubentryCount: parsed.SubentryCount,
		Exists:        true,
	}
	for _, b := range parsed.Balances {
		if b.AssetType == "native" {
			if v, err := strconv.ParseFloat(b.Balance, 64); err == nil {
				info.NativeBalance = v
			}
		}
	}
	return info, nil
}

// GetPayments fetches up to limit payment-history entries, most recent
// first, optionally continuing from cursor (spec.md §3.1 supplement).
func (c *Client) GetPayments(ctx context.Context, accountID, cursor string, limit int) ([]Payment, error) {
	q := url.Values{}
	q.Set("order", "desc")
	q.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	reqURL := c.baseURL + "/accounts/" + url.PathEscape(accountID) + "/payments?" + q.Encode()

	body, status, err := c.doRequest(ctx, http.MethodGet, reqURL, nil, "")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, extractError(body)
	}

	var parsed struct {
		Embedded struct {
			Records []struct {
				ID          string `json:"id"`
				Type        string `json:"type"`
				From        string `json:"from"`
				To          string `json:"to"`
				Amount      string `json:"amount"`
				AssetType   string `json:"asset_type"`
				CreatedAt   string `json:"created_at"`
			} `json:"records"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding payments response: %v", walleterr.ErrInternal, err)
	}

	out := make([]Payment, 0, len(parsed.Embedded.Records))
	for _, r := range parsed.Embedded.Records {
		out = append(out, Payment{
			ID:        r.ID,
			Type:      r.Type,
			From:      r.From,
			To:        r.To,
			Amount:    r.Amount,
			AssetType: r.AssetType,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// SubmitTransaction posts a base64-encoded signed envelope. idempotencyKey,
// when non-empty, is carried as an Idempotency-Key header so a caller that
// retries a whole Send after a transport failure can let the remote
// deduplicate rather than risk two applied payments (spec.md invariant 10
// only guarantees at most one POST per orchestrator call; the header is
// the hook a caller-level retry would use).
func (c *Client) SubmitTransaction(ctx context.Context, envelopeBase64, idempotencyKey string) (SubmitResult, error) {
	form := url.Values{}
	form.Set("tx", envelopeBase64)
	bodyBytes := []byte(form.Encode())

	body, status, err := c.doRequestWithHeaders(ctx, http.MethodPost, c.baseURL+"/transactions", bodyBytes, "application/x-www-form-urlencoded", idempotencyKey)
	if err != nil {
		return SubmitResult{}, err
	}
	if status < 200 || status >= 300 {
		remote := extractError(body)
		return SubmitResult{Successful: false, Title: remote.Title}, remote
	}

	var parsed struct {
		Hash     string `json:"hash"`
		Ledger   uint32 `json:"ledger"`
		Successful *bool `json:"successful"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: decoding submit response: %v", walleterr.ErrInternal, err)
	}
	successful := true
	if parsed.Successful != nil {
		successful = *parsed.Successful
	}
	return SubmitResult{Hash: parsed.Hash, Ledger: parsed.Ledger, Successful: successful}, nil
}

// GetTransaction fetches a transaction's outcome by hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (TransactionResult, error) {
	body, status, err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/transactions/"+url.PathEscape(hash), nil, "")
	if err != nil {
		return TransactionResult{}, err
	}
	if status < 200 || status >= 300 {
		return TransactionResult{}, extractError(body)
	}

	var parsed struct {
		Hash       string `json:"hash"`
		Ledger     uint32 `json:"ledger"`
		Successful bool   `json:"successful"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return TransactionResult{}, fmt.Errorf("%w: decoding transaction response: %v", walleterr.ErrInternal, err)
	}
	return TransactionResult{Hash: parsed.Hash, Ledger: parsed.Ledger, Successful: parsed.Successful}, nil
}

// FundTestnet requests friendbot funding for accountID. It refuses to
// run on mainnet: friendbot only exists on the test network.
func (c *Client) FundTestnet(ctx context.Context, accountID string) error {
	if c.network == config.Mainnet {
		return fmt.Errorf("%w: testnet funding is not available on mainnet", walleterr.ErrInternal)
	}
	reqURL := c.friendbotURL + "/?addr=" + url.QueryEscape(accountID)
	body, status, err := c.doRequest(ctx, http.MethodGet, reqURL, nil, "")
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return extractError(body)
	}
	return nil
}

// doRequest drives the retry loop: an HTTP 2xx or 4xx is terminal and
// returned immediately (4xx carries no retry, but is not itself an
// error — callers inspect status); any other transport failure or 5xx
// retries with exponential backoff until maxRetries is exhausted
// (spec.md §4.C6: 1000 × 2^attempt ms between attempts).
func (c *Client) doRequest(ctx context.Context, method, reqURL string, bodyBytes []byte, contentType string) ([]byte, int, error) {
	return c.doRequestWithHeaders(ctx, method, reqURL, bodyBytes, contentType, "")
}

// doRequestWithHeaders is doRequest plus an optional Idempotency-Key
// header attached to every attempt of this call.
func (c *Client) doRequestWithHeaders(ctx context.Context, method, reqURL string, bodyBytes []byte, contentType, idempotencyKey string) ([]byte, int, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = retryBaseDelay * time.Duration(1<<uint(c.maxRetries+2))

	var (
		respBody []byte
		status   int
		lastErr  error
	)

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, 0, walleterr.ErrCancelled
		default:
		}

		var reqBody io.Reader
		if bodyBytes != nil {
			reqBody = bytes.NewReader(bodyBytes)
		}
		req, buildErr := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if buildErr != nil {
			return nil, 0, fmt.Errorf("%w: %v", walleterr.ErrInternal, buildErr)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if idempotencyKey != "" {
			req.Header.Set("Idempotency-Key", idempotencyKey)
		}

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			lastErr = doErr
			c.logger.Warn("request failed", "method", method, "url", reqURL, "attempt", attempt, "error", doErr)
		} else {
			respBody, _ = io.ReadAll(resp.Body)
			resp.Body.Close()
			status = resp.StatusCode

			if status >= 200 && status < 300 {
				return respBody, status, nil
			}
			if status >= 400 && status < 500 {
				return respBody, status, nil
			}
			lastErr = fmt.Errorf("%s", fmtStatus(status))
			c.logger.Warn("request returned retryable status", "method", method, "url", reqURL, "attempt", attempt, "status", status)
		}

		if attempt == c.maxRetries {
			break
		}

		delay := bo.NextBackOff()
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, 0, walleterr.ErrCancelled
		case <-timer.C:
		}
	}

	detail := detailFor(respBody)
	if detail == "" && lastErr != nil {
		detail = lastErr.Error()
	}
	return nil, status, &walleterr.TransportError{Detail: detail, Cause: lastErr}
}
