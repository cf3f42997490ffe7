// Package forces implements astro.Dynamics force models for orbital
// propagation. States are Cartesian [x y z vx vy vz] in meters and
// meters per second unless a model documents otherwise.
package forces
