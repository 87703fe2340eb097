// Package motion advances interpolated value sequences against per-motion
// clocks and writes the results into externally owned output slots, one
// timeline step per frame.
package motion
