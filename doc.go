// Package financier is a small-business ledger engine.
//
// It records dated income and expense transactions and keeps rollup
// statistics continuously consistent across a Year → Month → Week → Day
// bucket hierarchy, carrying unspent balances forward between time buckets.
// The engine owns a single in-process store persisted as one opaque blob;
// the Ledger type is its public surface.
package financier
