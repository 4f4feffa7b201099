/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package secmodels defines the security schema entities: clusters, tenants,
// users, devices, sessions, groups, memberships, services and ISO reference
// data.
//
// Each kind comes in several representations:
//
//   - <Kind>: read-only interface implemented by every representation
//   - <Kind>Buff: the live record with validated setters
//   - <Kind>HBuff and <Kind>HPKey: a history snapshot and its key
//   - <Kind>By<Index>Key: projections onto each secondary index
//   - <Kind>PKey: the composite primary key, for association kinds
//
// All of them implement Equals, Compare and HashCode against any sibling
// representation of the same kind. Comparing a record with an index key looks
// only at the index fields, so a loaded row can be matched against a lookup
// key without knowing which representation it is:
//
//	key := secmodels.ClusterByUDomNameIdxKey{FullDomName: "example.com"}
//	if key.Equals(rec) {
//		// rec has that domain name
//	}
//
// Compare returns an error only when the argument is not a representation of
// the same kind; nil sorts before everything.
//
// Cross-entity navigation such as TenantBuff.RequiredOwnerCluster goes through
// a Schema, which supplies the active Backing and its tables. Tests install a
// stub that embeds UnimplementedBacking.
package secmodels
