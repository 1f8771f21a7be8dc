// SPDX-License-Identifier: MIT

// Package recipe maximizes the stock of a scored resource at a deadline by
// choosing which production recipes to build, and in which order.
//
// Every recipe consumes stocked inputs and adds one unit of production rate for
// its output. Production accrues once per minute; a build takes one minute once
// its inputs are affordable.
//
// The search branches on "the next recipe to build" rather than minute by
// minute: the child jumps forward by the wait for the scarcest input plus the
// build minute. Recipes whose output rate already meets the largest single
// requirement for it are skipped, since the surplus could never be spent.
//
// Stock of non-scored resources above Remaining·MaxRequired is indistinguishable
// from exactly that amount, so keys are capped there to share cache entries.
//
// Stock and rates are int64. Solve refuses, with ErrOutOfRange, budgets whose
// (largest rate or requirement + minutes)·minutes would not fit.
//
// Entry points: Solve for one cookbook; SolveAll, QualitySum and TopProduct for
// batches, run concurrently with one engine per cookbook.
package recipe
