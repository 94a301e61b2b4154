package app

import (
	"context"

	"fieldops/internal/errors"
	"fieldops/ports"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// PriceSummary is the dashboard widget payload describing the current price
// list distribution.
type PriceSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	StdDev float64 `json:"std_dev"`
	Skew   float64 `json:"skew"`
}

// PriceStatsService computes summary statistics over persisted price items
type PriceStatsService struct {
	prices ports.PriceListRepository
}

// NewPriceStatsService creates a price stats service
func NewPriceStatsService(prices ports.PriceListRepository) *PriceStatsService {
	return &PriceStatsService{prices: prices}
}

// Summarize loads every total price and reduces it to the dashboard summary.
// An empty price list yields a zero summary rather than an error.
func (s *PriceStatsService) Summarize(ctx context.Context) (*PriceSummary, error) {
	prices, err := s.prices.TotalPrices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load prices for summary")
	}

	summary := &PriceSummary{Count: len(prices)}
	if len(prices) == 0 {
		return summary, nil
	}

	if summary.Mean, err = stats.Mean(prices); err != nil {
		return nil, errors.Wrap(err, "failed to compute mean")
	}
	if summary.Median, err = stats.Median(prices); err != nil {
		return nil, errors.Wrap(err, "failed to compute median")
	}
	if summary.Min, err = stats.Min(prices); err != nil {
		return nil, errors.Wrap(err, "failed to compute min")
	}
	if summary.Max, err = stats.Max(prices); err != nil {
		return nil, errors.Wrap(err, "failed to compute max")
	}
	if summary.P25, err = stats.Percentile(prices, 25); err != nil {
		return nil, errors.Wrap(err, "failed to compute p25")
	}
	if summary.P75, err = stats.Percentile(prices, 75); err != nil {
		return nil, errors.Wrap(err, "failed to compute p75")
	}

	if len(prices) > 1 {
		summary.StdDev = stat.StdDev(prices, nil)
		summary.Skew = stat.Skew(prices, nil)
	}

	return summary, nil
}
