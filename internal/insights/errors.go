package insights

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

// ErrMissingAggregationKey is returned when a record lacks the key an aggregator groups by.
var ErrMissingAggregationKey = errors.New("missing aggregation key")

// ErrInvalidTradeDate is returned when the trade window has no parseable start date.
var ErrInvalidTradeDate = errors.New("invalid trade date")

type keyField int

const (
	keyPlayer keyField = 1 << iota
	keyTeam
)

// requireKeys rejects the whole batch on the first record missing a grouping key.
func requireKeys(logs []gamelogs.GameLog, fields keyField) error {
	for i, log := range logs {
		if fields&keyPlayer != 0 && log.Player == "" {
			return fmt.Errorf("%w: record %d has no player", ErrMissingAggregationKey, i)
		}
		if fields&keyTeam != 0 && log.Team == "" {
			return fmt.Errorf("%w: record %d has no team", ErrMissingAggregationKey, i)
		}
	}
	return nil
}
