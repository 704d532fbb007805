// Package shop provides the types and operations for managing a small
// shop: a product catalog, sales transactions against that catalog, and
// the reports derived from both. It is designed to be local-first and
// auditable, persisting everything to plain CSV files that a shopkeeper
// can open in any spreadsheet.
//
// The core functionalities include:
//   - Catalog Management: an insertion-ordered product catalog, fully
//     materialized in memory during a run and rewritten to a snapshot
//     file on every mutation.
//   - Sales Ledger: an append-only record of completed checkouts,
//     scanned in full for daily totals and top-seller rankings.
//   - Billing: pure receipt rendering with subtotal, discount, and
//     final total computed on exact decimals.
//   - Checkout: the orchestration tying a cart to stock reductions,
//     ledger entries, and an optional receipt file.
//
// This package serves as the foundational logic for the `shp`
// command-line tool.
package shop
