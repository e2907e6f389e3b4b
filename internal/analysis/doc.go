// Package analysis derives quantities from recorded trajectories: periods
// via zero-crossing detection, energy evolution, phase-space curves and
// trajectory divergence. All functions are pure post-processing over a
// dynamo.Result and return ErrEmptyTrajectory when asked to operate on
// absent data.
package analysis
