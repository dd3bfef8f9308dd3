// Package score evaluates finished layouts against office-planning
// criteria and ranks candidate layouts by a weighted total.
//
// # Criteria
//
// Every criterion is normalized to [0, 1] before weighting:
//
//   - seat_count: seats placed against the room's theoretical capacity
//   - passage_width: the central corridor and the space behind chairs
//   - natural_light: desk distance to the window walls
//   - traffic_flow: straight paths from each seat to the door
//   - face_to_face_bonus: 1.0 for face-to-face and mixed patterns
//   - space_efficiency: furniture footprint against the floor area
//   - desk_spacing: the narrowest gap between adjacent desks
//   - area_per_person: floor area divided by seats
//
// The thresholds behind the piecewise curves follow JOIFA office-planning
// guidance (1200mm main aisles, 10m² per person, 2m window proximity) and
// are fixed package constants, not configuration.
//
// # Weights
//
// A [Weights] value assigns one non-negative factor per criterion.
// Resolution order is explicit weights, then a named preset, then
// [DefaultWeights]; an unknown preset name silently falls back to the
// default profile so a scoring call can never fail on a typo.
//
// # Ranking
//
// [CompareLayouts] scores a slice of candidates and sorts descending,
// keeping input order on ties. [BestLayout] returns the winner and
// [Analyze] expands one result into a graded report with improvement
// suggestions.
package score
