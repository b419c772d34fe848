// Package testutil provides fixtures shared by package tests: migrated
// in-memory ledgers, workspace export archives and extraction trees.
//
// Example:
//
//	root := testutil.NewWorkspaceBuilder(t).
//		WithVendors("widgets", "Cisco", "Microsoft").
//		WithFixture(testutil.FixtureScenarios).
//		Build()
package testutil
