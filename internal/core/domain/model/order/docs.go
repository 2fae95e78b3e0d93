// Package order provides the print order aggregate and its validation rules.
//
// The package includes:
//   - Order: The aggregate root holding identity, owner, specifications and lifecycle
//   - Status: The linear pipeline Pending -> Processing -> Printing -> Shipped -> Completed
//   - Specifications: What is printed, drawn from fixed option sets
//   - NewOrderPayload and Patch: Create and partial-update requests with their validators
//
// Key business rules:
//   - Project name is required and quantity must be at least 1
//   - Type, size and paper must be one of the shop's options
//   - Owner and creation time are fixed once the order exists
//   - Tracking numbers are never blank
//   - Updates are merged field by field and applied all-or-nothing
package order
