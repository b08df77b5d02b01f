// Package listview is the Bubble Tea front end for listmodel.List.
//
// It plays the part of the widget toolkit: it classifies key presses,
// owns the cursor and the viewport, offers a sort control, and renders
// rows. Everything the list itself decides (type-ahead, deletion,
// selection, index translation) is delegated to the listmodel package.
//
// Rendering uses virtual scrolling: only the rows inside the viewport
// plus a small buffer are drawn, so large lists stay responsive.
package listview
