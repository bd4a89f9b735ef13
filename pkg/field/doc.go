// Package field implements cron field expressions and their validation.
//
// This package contains:
//   - The Expr variant set: Any, Single, Range, List and Stepped
//   - Matching, forward search (NextValue) and minimum-value queries
//   - Kind, the per-field ordinal domain, and the Verify bound checks
//
// Most users should import the root package github.com/FrancoisGib/cron-dsl
// which re-exports the constructors.
package field
