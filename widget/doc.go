// Package widget provides interactive components built on gridtui: a Button
// that highlights while focused and a single-line Input editor.
//
// Widgets subscribe to their component's own event queue, so they only
// react once the App delivers queued events at the start of a frame.
package widget
