// Package ppmetrics binds Prometheus instrumentation to the search
// driver's hooks (search.Options.OnNodeVisited/OnPruned/OnSolution).
// It is entirely optional: search itself has no dependency on this
// package or on any metrics registry, matching this module's pattern
// of decoupling a traversal's hooks from any one observer.
package ppmetrics
