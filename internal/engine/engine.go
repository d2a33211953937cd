// Package engine implements the DNS resolution and consistency engine.
//
// The engine sits between transports and the record store. It owns the two
// behaviors that make this a DNS record store rather than a generic keyed
// collection:
//
//   - Write-time conflict rules: a CNAME never coexists with any other
//     record at the same hostname, and duplicate A records are rejected.
//   - Read-time resolution: CNAME chains are followed iteratively with a
//     visited set until A records are found, a hostname is missing, or a
//     cycle is detected.
//
// The conflict check is read-then-write against the store, not a
// transactional operation. Two concurrent writers to the same hostname can
// both pass the check before either inserts; callers needing strict
// atomicity must serialize writes per hostname externally.
package engine

import (
	"context"
	"log/slog"

	"github.com/minidns-io/minidns/internal/store"
	"github.com/minidns-io/minidns/internal/validation"
)

// RecordStore is the narrow persistence surface the engine needs.
// *store.Store satisfies it.
type RecordStore interface {
	FindByHostname(ctx context.Context, hostname string) ([]store.Record, error)
	Insert(ctx context.Context, rec store.Record) (store.Record, error)
	DeleteExact(ctx context.Context, hostname, recordType, value string) (int64, error)
}

// Resolution is the result of resolving a hostname to its terminal A
// records. Hostname echoes the original query, even when resolution
// traversed a CNAME chain to get to the addresses.
type Resolution struct {
	Hostname  string
	Addresses []string
}

// Engine applies consistency rules on writes and performs CNAME-chasing
// resolution on reads. It holds no mutable state of its own.
type Engine struct {
	store  RecordStore
	logger *slog.Logger
}

// New creates an Engine over the given record store.
func New(st RecordStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: st, logger: logger}
}

// AddRecord validates and persists a new record.
//
// Validation runs in a fixed order (type, hostname, then value against the
// normalized type), and conflict rules are checked against the hostname's
// current record set before insert:
//
//   - A CNAME cannot be added when any record exists at the hostname.
//   - An A record cannot be added when a CNAME exists at the hostname.
//   - An A record cannot duplicate an existing (hostname, value) pair.
func (e *Engine) AddRecord(ctx context.Context, hostname, recordType, value string) (store.Record, error) {
	normalized, err := validation.RecordType(recordType)
	if err != nil {
		return store.Record{}, &ValidationError{Field: FieldType, Err: err}
	}
	if err := validation.Hostname(hostname); err != nil {
		return store.Record{}, &ValidationError{Field: FieldHostname, Err: err}
	}
	if err := validateValue(normalized, value); err != nil {
		return store.Record{}, err
	}

	existing, err := e.store.FindByHostname(ctx, hostname)
	if err != nil {
		return store.Record{}, err
	}

	if normalized == store.TypeCNAME {
		if len(existing) > 0 {
			return store.Record{}, &ConflictError{Reason: "CNAME cannot coexist with other records"}
		}
	} else {
		for _, rec := range existing {
			if rec.Type == store.TypeCNAME {
				return store.Record{}, &ConflictError{Reason: "cannot add A record when CNAME exists"}
			}
			if rec.Type == store.TypeA && rec.Value == value {
				return store.Record{}, ErrDuplicateRecord
			}
		}
	}

	rec, err := e.store.Insert(ctx, store.Record{
		Hostname: hostname,
		Type:     normalized,
		Value:    value,
	})
	if err != nil {
		return store.Record{}, err
	}

	e.logger.Info("record added",
		"hostname", rec.Hostname,
		"type", rec.Type,
		"value", rec.Value,
		"id", rec.ID,
	)
	return rec, nil
}

// ListRecords returns all records at exactly the given hostname, with no
// CNAME chasing.
func (e *Engine) ListRecords(ctx context.Context, hostname string) ([]store.Record, error) {
	if err := validation.Hostname(hostname); err != nil {
		return nil, &ValidationError{Field: FieldHostname, Err: err}
	}

	records, err := e.store.FindByHostname(ctx, hostname)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Hostname: hostname, Message: "Hostname not found"}
	}
	return records, nil
}

// Resolve follows CNAME links from hostname until terminal A records are
// found, collecting every A value at the final hostname in store
// enumeration order.
//
// The walk is an explicit loop with a visited set rather than recursion,
// so a long chain costs memory proportional to its length but no call
// stack. Revisiting any hostname fails with ErrCircularReference; a
// hostname with no records fails with a NotFoundError naming that
// hostname, which may be mid-chain.
func (e *Engine) Resolve(ctx context.Context, hostname string) (Resolution, error) {
	if err := validation.Hostname(hostname); err != nil {
		return Resolution{}, &ValidationError{Field: FieldHostname, Err: err}
	}

	visited := make(map[string]struct{})
	current := hostname

	for {
		if _, seen := visited[current]; seen {
			e.logger.Warn("circular CNAME reference", "hostname", hostname, "revisited", current)
			return Resolution{}, ErrCircularReference
		}
		visited[current] = struct{}{}

		records, err := e.store.FindByHostname(ctx, current)
		if err != nil {
			return Resolution{}, err
		}
		if len(records) == 0 {
			return Resolution{}, &NotFoundError{Hostname: current}
		}

		// Follow the first CNAME in enumeration order. The write-time rule
		// means at most one should exist; if more do, first wins.
		if target, ok := firstCNAME(records); ok {
			current = target
			continue
		}

		addresses := make([]string, 0, len(records))
		for _, rec := range records {
			if rec.Type == store.TypeA {
				addresses = append(addresses, rec.Value)
			}
		}
		return Resolution{Hostname: hostname, Addresses: addresses}, nil
	}
}

// DeleteRecord removes the record matching (hostname, type, value) exactly.
// The value is validated against the normalized type before the store is
// queried, so a malformed value is a validation failure rather than a miss.
func (e *Engine) DeleteRecord(ctx context.Context, hostname, recordType, value string) error {
	if err := validation.Hostname(hostname); err != nil {
		return &ValidationError{Field: FieldHostname, Err: err}
	}
	normalized, err := validation.RecordType(recordType)
	if err != nil {
		return &ValidationError{Field: FieldType, Err: err}
	}
	if err := validateValue(normalized, value); err != nil {
		return err
	}

	deleted, err := e.store.DeleteExact(ctx, hostname, normalized, value)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &NotFoundError{Hostname: hostname, Message: "record not found"}
	}

	e.logger.Info("record deleted", "hostname", hostname, "type", normalized, "value", value)
	return nil
}

// validateValue checks a record value against its normalized type: IPv4
// syntax for A records, hostname syntax for CNAME targets.
func validateValue(normalizedType, value string) error {
	switch normalizedType {
	case store.TypeA:
		if err := validation.IPv4(value); err != nil {
			return &ValidationError{Field: FieldValue, Err: err}
		}
	case store.TypeCNAME:
		if err := validation.Hostname(value); err != nil {
			return &ValidationError{Field: FieldValue, Err: err}
		}
	}
	return nil
}

func firstCNAME(records []store.Record) (string, bool) {
	for _, rec := range records {
		if rec.Type == store.TypeCNAME {
			return rec.Value, true
		}
	}
	return "", false
}
