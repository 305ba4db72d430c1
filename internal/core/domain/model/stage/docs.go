// Package stage defines the fulfillment pipelines that orders move through
// on the board.
//
// A Pipeline is an immutable ordered sequence of stages with exactly one
// designated terminal (cancellation) stage. The terminal stage is excluded
// from forward and backward traversal: Next and Previous never return it,
// and the board excludes terminal orders from its visible columns.
//
// Two built-in pipelines exist, one per order category. The delivery
// pipeline inserts an additional out-for-delivery stage between ready and
// delivered; both share identical cancellation semantics. Pipelines can
// also be restored from remote settings via RestorePipeline, since labels
// and display colors are settings-owned presentation metadata.
package stage
