// Package legend places series labels at the end of a line chart's vertical
// axis without letting them overlap.
//
// # Overview
//
// Every series in a line chart ends at some data value. The label for that
// series wants to sit right next to the endpoint, but when several series end
// at almost the same value their labels collide. This package computes final
// vertical positions for all labels, plus the geometry needed to draw a small
// connector from each label back to its true value.
//
// The computation is a straight pipeline of pure functions:
//
//  1. [New] measures each [Item] into a [Mark] using a [Measurer].
//  2. [InitialPlacement] maps each mark through a [Scale] and sorts by target y.
//  3. [Place] runs the three strategies ([TopDown], [BottomUp], [Overlapping])
//     and keeps the first one that resolves every collision.
//  4. [AssignGroups] fans out connector bend points within runs of moved marks.
//  5. [Partition] splits marks into background and focus render sets.
//
// [Compute] chains all five steps.
//
// # Strategies
//
// Top-down walks labels from the top of the axis and pushes later labels
// down. Bottom-up walks from the bottom and pushes earlier labels up, after
// clamping the lowest label into range. When neither fits every label inside
// the axis range, the overlapping fallback leaves labels at their target and
// flags the ones that collide, so the drawing layer can dim them.
//
// # Usage
//
//	layout, err := legend.Compute(items, legend.Options{
//	    X:         plotRight,
//	    FontSize:  16,
//	    Measurer:  textmeasure.NewEstimator(),
//	    Scale:     yScale,
//	    FocusKeys: []string{"DEU"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, m := range layout.Sets.Focus {
//	    c := m.Connector(plotRight)
//	    // draw m.Bounds and c
//	}
//
// Nothing in this package holds state between calls; identical inputs always
// produce identical layouts.
package legend
