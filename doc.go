/*
Package navgrid provides directional keyboard/gamepad focus navigation
over sparse two-dimensional grids of selectable UI elements.

# Overview

A container describes its interactive widgets as a 1-based sparse grid:
row y, column x, with any slot possibly empty. A Navigator owns a cursor
into that grid and resolves "move focus up/down/left/right" intents into
a new selection, wrapping around at the populated edges and searching
past gaps so that ragged, L-shaped layouts navigate predictably without
placeholder cells.

The navigator is deliberately blind to pixels: widget geometry, key
mapping policy and focus rendering stay with the host application and
are reached only through small injected interfaces (Device, Repainter,
GestureSink). Items participate through the Focusable capability
interface.

# Quick Start

	grid := navgrid.GridFromRows([][]navgrid.Focusable{
	    {ok, cancel},
	    {help, nil}, // ragged row: no slot under "cancel"
	})

	nav := navgrid.NewNavigator(grid,
	    navgrid.WithDevice(device),
	    navgrid.WithRepainter(painter),
	)
	nav.FocusInitial()

	// Per discrete input:
	if nav.Navigate(navgrid.NavDown) {
	    // consumed here
	} else {
	    // no grid: let an ancestor navigator handle it
	}

# Grid composition

Independently authored sub-layouts compose into one addressable grid
with MergeVertically and MergeHorizontally; the donor navigator is
disabled afterwards and delegates all further input upward.

# Threading

Everything is synchronous and single-threaded: one move fully completes
(cursor mutated, focus notifications sent, repaint requested) before the
next input is processed. Merges must not be invoked concurrently with a
move on either navigator.
*/
package navgrid
