// Package dimensions holds the pitch coordinate systems used by soccer data
// providers.
//
// Each provider describes the same physical pitch with its own extents, origin
// and y-axis direction. A Dimensions value resolves every landmark (sides,
// penalty area, six-yard box, goal posts, penalty spots, center) in that
// provider's units, and derives the sorted marking arrays that the
// standardize package interpolates between.
//
// Map of the landmark fields (y up, origin bottom-left):
//
//	(Left, Top) _____________________________________ (Right, Top)
//	           |                  |                  |
//	           |-------           |           -------|
//	           |  ___  |          |          |  ___  |
//	       ~~~~| |   | |  Center  |  Center  | |   | |~~~~
//	  goal |xxx| |   | |  Length  |  Width   | |   | |xxx|
//	       ~~~~| |___| |          |          | |___| |~~~~
//	           |       |          |          |       |
//	           |-------           |           -------|
//	(Left, Bottom)____________________________________(Right, Bottom)
//
// Lengths such as PenaltyAreaLength are distances; fields such as
// PenaltyAreaLeft are coordinates.
package dimensions
