// Package catalog defines the domain-facing contracts for catalog integrity
// writes: product creation, supplier-item linkage, and category governance.
//
// These contracts intentionally avoid persistence/transport implementation
// details and represent semantic write boundaries where invariants must be
// enforced atomically.
package catalog
