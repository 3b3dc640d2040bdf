// Package warehouse contains the storage-allocation core: a fixed-size grid of
// slots, each holding at most one product batch, with feasibility checks,
// pick-list allocation, delivery placement under a per-slot capacity cap, and
// replenishment planning.
//
// The grid is a single in-memory snapshot driven by exactly one logical caller
// per lifetime: load snapshot, run planning and mutating operations, persist
// snapshot. It is not safe for concurrent mutation; an embedding system that
// wants concurrency must serialize mutating calls behind its own lock.
//
// BuildPickList and PlaceDelivery mutate grid state as a side effect of
// planning. There is no separate commit step; callers that want only a
// feasibility preview use CanBeFilled.
package warehouse
