// Package flooring provides the core types and persistence logic for
// managing flooring sales orders. It is designed to be local-first and
// auditable: every order lives in a human-readable, semicolon-delimited
// text file partitioned by order date.
//
// The core functionalities include:
//   - Reference Catalogs: immutable per-run lookup tables for state tax
//     rates and product pricing, loaded once at startup from flat files.
//   - Order Store: the in-memory collection of all orders, keyed by
//     order number, with a monotonically increasing number allocator.
//   - Pricing: deterministic derivation of material cost, labor cost,
//     tax and total from an order's area, product and tax rate, using
//     exact decimal arithmetic until the final 2-decimal rounding.
//   - Data Persistence: loading the date-partitioned order files into
//     the store at startup, rewriting them after each mutation, and
//     exporting the full order book to a single flat file.
//
// This package serves as the foundational logic for the `fm` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package flooring
