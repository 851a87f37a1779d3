// Package mainwindow hosts the player's web front-end in a Wails webview window.
//
// Wails only links its desktop runtime when the binary is built with the
// desktop and production tags. Without them wails.Run returns an error on
// every launch, so build with either
//
//	wails build
//
// or
//
//	go build -tags desktop,production -ldflags "-H windowsgui" ./cmd/yuujin
//
// Plain go build and go test are fine for everything except the window itself.
package mainwindow
