// Package prediction implements the predictive performance engine: a
// four-stage pure-function pipeline that converts a snapshot of the user's
// study, test, cycle and session history into a forecasted competitive
// rank, a confidence score, a risk category and generated recommendations.
//
// Every operation is a deterministic function of its input snapshot. The
// package holds no mutable state, performs no I/O and never raises: missing
// history resolves to documented defaults and the service exposes a fixed
// fallback result for callers whose upstream fetch failed.
package prediction
