package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"basket-insights-go/internal/logger"
	"basket-insights-go/internal/types"
)

var httpClient = &http.Client{
	Timeout: 12 * time.Second,
}

// FetchTransactions pulls the transaction set from a remote JSON endpoint,
// retrying transient failures with exponential backoff. The endpoint may
// return a bare array or a {"transactions": [...]} envelope.
func FetchTransactions(ctx context.Context, url string) ([]types.RawTransaction, error) {
	log := logger.New().WithComponent("store").WithField("url", url)

	var out []types.RawTransaction
	var lastErr error
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", body)
			return lastErr
		}
		if resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
			return backoff.Permanent(lastErr)
		}
		records, err := DecodeTransactions(body)
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		out = records
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		log.WithError(err).Error("transaction fetch failed")
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}
	log.WithField("records", len(out)).Info("transactions fetched")
	return out, nil
}

// DecodeTransactions accepts both response shapes the data API has shipped.
func DecodeTransactions(body []byte) ([]types.RawTransaction, error) {
	var records []types.RawTransaction
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Transactions []types.RawTransaction `json:"transactions"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Transactions == nil {
		return nil, fmt.Errorf("unexpected transactions payload: %s", truncate(body))
	}
	return envelope.Transactions, nil
}

func truncate(b []byte) string {
	if len(b) > 200 {
		b = b[:200]
	}
	return string(b)
}
