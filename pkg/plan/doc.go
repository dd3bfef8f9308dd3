// Package plan defines the core domain types for office floorplan layouts.
//
// This package is the vocabulary shared by every other layer: generators
// produce its types, the scorer reads them, renderers draw them, and the
// store persists them.
//
// # Core Types
//
//   - [Request]: Everything a solve run needs (room, door, seats, furniture)
//   - [Blocks]: The forbidden-zone rectangles built from door and pillars
//   - [Item]: One placed furniture piece (desk, chair, storage, ...)
//   - [Result]: The outcome of a single pattern generator run
//   - [Side]: A wall of the room (top, bottom, left, right)
//
// # Coordinate System
//
// All coordinates are integer millimeters with the origin at the room's
// top-left corner, x growing right and y growing down. A wall side therefore
// maps to a fixed coordinate: the top wall is y=0, the left wall is x=0.
//
// # Door Model
//
// The door occupies a buffer rectangle along its wall (door width by buffer
// depth) plus a clearance radius around the door tip, the point where the
// buffer reaches into the room. [BuildBlocks] computes both:
//
//	blocks, err := plan.BuildBlocks(room, door, pillars, cfg)
//	blocks.Rects    // door buffer + pillars, in order
//	blocks.DoorTip  // keep furniture this far from the entrance
//
// # Feasibility
//
// A Result with OK=false is not an error. Generators always return their
// best partial layout; callers decide whether a partial seat count is
// acceptable. Errors are reserved for invalid inputs.
//
// # Serialization
//
// Request, Item, and Result carry json and bson tags: JSON for export and
// the HTTP API, BSON for the Mongo-backed plan store.
package plan
