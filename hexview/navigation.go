// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/navigation.go
// Summary: Scroll-follow policies for keyboard cursor movement.

package hexview

// Alignment places the cursor at a fixed position in the viewport.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// NavigationKind selects how implicit scrolls follow the cursor.
type NavigationKind int

const (
	// NavigationLazy moves the viewport as little as possible: not at
	// all while the cursor stays visible, and by the minimum needed to
	// bring it back into view otherwise.
	NavigationLazy NavigationKind = iota
	// NavigationAligned keeps the cursor at the alignment position.
	NavigationAligned
)

// Navigation is the viewport-follow policy for one axis.
type Navigation struct {
	Kind      NavigationKind
	Alignment Alignment
}

// Lazy is the default follow policy.
func Lazy() Navigation {
	return Navigation{Kind: NavigationLazy}
}

// Aligned keeps the cursor at a fixed viewport position.
func Aligned(a Alignment) Navigation {
	return Navigation{Kind: NavigationAligned, Alignment: a}
}

// lazyAlignment is the edge a lazy scroll brings the target to, chosen
// from the movement direction.
type lazyAlignment int

const (
	lazyStart lazyAlignment = iota
	lazyEnd
)

// scrollMode is a resolved per-axis scroll decision for one movement.
type scrollMode struct {
	kind      NavigationKind
	lazy      lazyAlignment
	alignment Alignment
}
