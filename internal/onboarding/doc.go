// Package onboarding decides whether the introductory pager is shown at launch
// and drives it while mounted.
//
// Gate reads the persisted onboarding flag once and picks the start route.
// Flow owns a Pager over the fixed pages; Next advances with an animation or,
// on the last page, leaves onboarding for the feed. Skip leaves from any other
// page. Leaving always removes onboarding from the back stack.
package onboarding
