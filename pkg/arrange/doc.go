// Package arrange holds the constructive placement engine: pattern
// generators that walk the room walls with a cursor and commit desk and
// chair units wherever the unit footprint, the desk, and the chair all
// clear the room and its obstacles.
//
// # Patterns
//
// Five workstation strategies each produce one plan.Result:
//
//   - DoubleWall fills the left and right walls top to bottom.
//   - DoubleWallTopBottom fills the top and bottom walls from either corner.
//   - SingleWall and SingleWallTopBottom restrict the walk to one wall.
//   - FaceToFace builds mirrored desk rows on a center band.
//   - Mixed seats a few units on one wall and the rest face to face.
//
// PlaceEquipment runs after a workstation pattern and fills leftover
// wall-adjacent space with storage and equipment pieces.
//
// # Walk Model
//
// Every pattern shares the same cursor fold: a walk value holding the
// offset along the wall and the remaining quota. Each iteration attempts
// one unit at the cursor; success and failure both advance the cursor, so
// identical inputs always reproduce the identical layout and earlier
// cursor positions always win ties.
//
// # Feasibility
//
// Generators never fail on a crowded room. They return their best partial
// layout with OK=false when the seat quota is missed. PlaceEquipment is
// the only operation with an error return, for unknown catalog keys.
package arrange
