// Package listview is a generic scrolling list for Bubble Tea models. Only the
// rows around the viewport are rendered, so long recommendation or portfolio
// lists stay responsive.
package listview
