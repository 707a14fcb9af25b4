// Package batch evaluates portfolios of event configurations.
//
// A portfolio is split into fixed-size chunks that are evaluated concurrently with a
// bounded number of workers. Results keep the input order, a failing event is
// reported on its own result without stopping the others, and cancelling the
// context stops scheduling new chunks.
package batch
