// Package services provides domain services that span more than one
// aggregate of the print portal.
//
// The package includes:
//   - AccessPolicy: role-scoped visibility and mutation rights over orders
//
// Admins see and edit every order and may order on behalf of any known
// client. Clients see only their own orders, may order only for themselves
// and never edit an order once it has been submitted.
package services
