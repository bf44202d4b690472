// Package cardfolio values a personal card collection against a reference
// price catalog.
//
// The collection is described by inventory CSV files, one row per card with
// its location in a binder (binder, page, slot). The catalog is a set of JSON
// documents listing priced cards. The processing is a short batch:
//
//   - Catalog loading: every document is flattened into CatalogRecord, the
//     market value is taken from the preferred price variant, and duplicate
//     card ids are resolved to the highest value.
//   - Inventory loading: every CSV row is an InventoryRecord whose card id is
//     "<set_id>-<card_number>".
//   - Reconciliation: each inventory record is valued against the catalog into
//     exactly one PortfolioRow, using catalog data first and inventory data as
//     a fallback.
//   - Persistence: the Portfolio is saved as a CSV file with a fixed header.
//   - Reporting: a Summary computes the total value and the most valuable card.
//
// This package serves as the foundational logic for the `binder`
// command-line tool.
package cardfolio
