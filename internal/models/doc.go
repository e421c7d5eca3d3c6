// Package models defines the core domain models for saladbowl.
//
// # Models
//
//   - User: a registered account, identified by email
//   - Participant: one person on this week's roster
//   - Template: a recipe with a baseline serving count and ordered ingredients
//   - IngredientExclusion: a user's opt-out of one ingredient of one template
//   - Settings: the singleton holding the weekly reset schedule, the last
//     reset instant and the active template reference
//
// # Design Principles
//
// 1. **Keys are normalized once**: emails and ingredient names are compared
// through the normalize package, never ad hoc
// 2. **Avoid circular references**: relationships use ID strings, not pointers
// 3. **Timestamps are Unix seconds** except where a time.Time is needed for
// arithmetic (Settings.LastReset)
package models
