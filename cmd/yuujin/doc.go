// Command yuujin launches the Yuujin media player: splash screen, player window
// and the desktop lyrics overlay.
//
// Release builds need the Wails build tags (see package mainwindow):
//
//	go build -tags desktop,production -ldflags "-H windowsgui" ./cmd/yuujin
//
// A binary built without them starts, shows the splash, then exits through the
// fatal error path because the webview runtime is missing.
package main
