// Package naming allocates document names from partitioned counters.
//
// A firm-scoped name looks like AAWAK-0007-2025-0001: prefix, firm sequence, year and a counter
// that is independent for every (prefix, firm, year). Legacy records without a firm are named
// AAWAK-2025-0001 from a counter shared by all of them.
package naming

import (
	"context"
	"fmt"
	"strings"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	PrefixBooking      = "SAUDA"
	PrefixOutward      = "OUT"
	PrefixInward       = "IN"
	PrefixInwardAawak  = "AAWAK"
	PrefixOutwardJawak = "JAWAK"
	PrefixFirm         = "FIRM"
)

// Name is an allocated document name.
type Name struct {
	ID        string // Full document name.
	LotNumber string // Counter portion of ID, zero padded to 4 digits.
}

type Generator interface {
	// Next allocates the next name of prefix for firm in the year of ts. An empty firm selects the
	// legacy series. The counter increment belongs to tx, which should run at read committed:
	// concurrent allocations on one counter then wait for each other instead of failing with a
	// serialization error.
	Next(ctx context.Context, tx storage.Tx, ts int64, prefix string, firm string) (Name, error)

	// NextSeries allocates the next name of a plain series that never resets. (Eg: FIRM-0001)
	NextSeries(ctx context.Context, tx storage.Tx, ts int64, prefix string) (Name, error)
}

type _Generator struct {
	storage    storage.SequenceStorage
	allocCount metric.Int64Counter
}

func NewGenerator(s storage.SequenceStorage) Generator {
	return &_Generator{
		storage:    s,
		allocCount: otlp_util.NewInt64Counter("wh_server.naming.allocation.count", metric.WithDescription("The total number of document names allocated")),
	}
}

func (g *_Generator) Next(ctx context.Context, tx storage.Tx, ts int64, prefix string, firm string) (Name, error) {
	if prefix == "" {
		return Name{}, fmt.Errorf("prefix is required%w", model.ErrInvalidParameter)
	}

	year := time.Unix(ts, 0).UTC().Year()
	key := storage.SequenceKey{
		Prefix: prefix,
		Firm:   firm,
		Year:   year,
	}
	counter, err := g.storage.IncrementSequence(ctx, tx, ts, key)
	if err != nil {
		return Name{}, err
	}
	if counter < 1 {
		return Name{}, fmt.Errorf("%s: invalid counter %d%w", prefix, counter, model.ErrSequenceAllocation)
	}

	lot := fmt.Sprintf("%04d", counter)
	var id string
	if firm == "" {
		id = fmt.Sprintf("%s-%d-%s", prefix, year, lot)
	} else {
		id = fmt.Sprintf("%s-%s-%d-%s", prefix, FirmSequence(firm), year, lot)
	}

	g.allocCount.Add(ctx, 1, metric.WithAttributes(attribute.String("prefix", prefix), attribute.String("firm", firm)))
	return Name{ID: id, LotNumber: lot}, nil
}

func (g *_Generator) NextSeries(ctx context.Context, tx storage.Tx, ts int64, prefix string) (Name, error) {
	if prefix == "" {
		return Name{}, fmt.Errorf("prefix is required%w", model.ErrInvalidParameter)
	}

	counter, err := g.storage.IncrementSequence(ctx, tx, ts, storage.SequenceKey{Prefix: prefix})
	if err != nil {
		return Name{}, err
	}
	if counter < 1 {
		return Name{}, fmt.Errorf("%s: invalid counter %d%w", prefix, counter, model.ErrSequenceAllocation)
	}

	lot := fmt.Sprintf("%04d", counter)
	g.allocCount.Add(ctx, 1, metric.WithAttributes(attribute.String("prefix", prefix)))
	return Name{ID: fmt.Sprintf("%s-%s", prefix, lot), LotNumber: lot}, nil
}

// FirmSequence extracts the sequence part of a firm id, left padded with zeros to 4 characters.
// FIRM-0007 and FIRM-7 both give 0007. Ids without a dash fall back to the first 4 characters
// after FIRM.
func FirmSequence(firm string) string {
	var seq string
	if idx := strings.LastIndex(firm, "-"); idx >= 0 {
		seq = firm[idx+1:]
	} else {
		seq = strings.ReplaceAll(firm, "FIRM", "")
		if len(seq) > 4 {
			seq = seq[:4]
		}
	}

	if len(seq) < 4 {
		seq = strings.Repeat("0", 4-len(seq)) + seq
	}
	return seq
}
