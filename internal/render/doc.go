// Package render turns aggregated or raw tables into PNG chart artifacts:
// trend lines, ranked category and facility bars, and value distributions.
// Styling is an explicit Style value handed to each Renderer, never
// process-global state.
package render
