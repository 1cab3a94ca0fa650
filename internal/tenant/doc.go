// Package tenant holds the tenant registry shown by the brandos dashboard.
//
// A tenant is one mock client or brand. The registry is an immutable,
// ordered list of tenant records fixed at startup; the compiled-in set is
// returned by Builtin.
//
// # Resolution
//
// Lookups through Resolve are total: an unknown or stale id resolves to the
// first record of the registry, so callers never have to handle a missing
// tenant.
//
//	reg := tenant.Builtin()
//	rec := reg.Resolve("cylndr")
//	fmt.Println(rec.Name, rec.Status)
package tenant
