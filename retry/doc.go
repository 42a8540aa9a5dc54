// Package retry runs a fallible operation until it succeeds, waiting an
// exponentially growing interval between attempts.
//
// The wait after the n-th failed attempt is Base * 2^(n-1). There is no jitter,
// no attempt limit and no elapsed-time limit: a bootstrap phase that cannot
// succeed keeps retrying for as long as the process runs, with every failure
// logged. Policy.Permanent can mark errors as not worth retrying; when it is
// nil every failure is retried the same way.
package retry
