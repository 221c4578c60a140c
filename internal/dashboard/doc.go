// Package dashboard holds the rendered view state the real-time feed projects
// onto: market tiles, the signal list, portfolio totals, connection panels and
// per-symbol streaming toggles.
//
// All values are stored pre-rendered as display strings, so a consumer (CLI,
// TUI, template) shows exactly what the feed produced. Tones mirror the
// positive/negative styling classes of the web dashboard.
package dashboard
