// Package pathfinding computes movement ranges and routes on a hex grid.
//
// Two entry points:
//
//   - Search: budgeted best-first search from a start hex. Returns the cost to
//     every cell it reached, the predecessor tree and the set of cells that fit
//     in the budget. Used for movement-range highlighting.
//   - GetPath: Search with a goal, then the predecessor walk back to the start.
//
// The grid and the cost function are passed in on every call; nothing is cached
// between calls, so a changed map only needs the next call to see it.
//
// The frontier uses lazy deletion: a cell may sit in the heap several times and
// stale entries are dropped when popped, by checking the closed set.
package pathfinding
