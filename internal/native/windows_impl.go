//go:build windows
// +build windows

package native

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/genricoloni/yuujin/internal/domain"
	"github.com/lxn/win"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	className = "YuujinOverlay"

	// wmRefresh asks the owning thread to repaint after a content swap
	wmRefresh = win.WM_APP + 1

	lwaAlpha = 0x2
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	gdi32                          = windows.NewLazySystemDLL("gdi32.dll")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetDIBitsToDevice          = gdi32.NewProc("SetDIBitsToDevice")

	registerOnce sync.Once
	registerErr  error

	// registry maps live handles to their window for the shared window procedure
	registryMu sync.RWMutex
	registry   = map[win.HWND]*window{}
)

// Backend creates layered, borderless Win32 overlay windows.
// Every window owns a locked OS thread running exactly one message loop.
type Backend struct {
	logger *zap.Logger
}

// NewBackend creates the Win32 overlay backend
func NewBackend(logger *zap.Logger) *Backend {
	logger.Info("Win32 overlay backend initialized")
	return &Backend{logger: logger}
}

type window struct {
	logger *zap.Logger
	kind   domain.OverlayKind
	hwnd   win.HWND

	mu    sync.Mutex
	frame Frame

	// paints counts frames blitted to the window
	paints atomic.Int32

	closeOnce sync.Once
	done      chan struct{}
}

type openResult struct {
	w   *window
	err error
}

// Open creates the window on a dedicated thread and returns once it is shown
func (b *Backend) Open(spec domain.WindowSpec) (domain.Window, error) {
	if err := registerClass(); err != nil {
		return nil, err
	}

	w := &window{
		logger: b.logger,
		kind:   spec.Kind,
		frame:  NewFrame(spec.Content.Image),
		done:   make(chan struct{}),
	}

	ready := make(chan openResult, 1)
	go w.run(spec, ready)

	res := <-ready
	if res.err != nil {
		return nil, res.err
	}

	b.logger.Debug("Overlay window created",
		zap.String("kind", string(spec.Kind)),
		zap.Stringer("bounds", spec.Bounds))

	return res.w, nil
}

func (w *window) run(spec domain.WindowSpec, ready chan<- openResult) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	hwnd, err := createWindow(spec)
	if err != nil {
		ready <- openResult{err: err}
		return
	}
	w.hwnd = hwnd

	// Registered while still hidden so the first WM_PAINT reaches paint
	registryMu.Lock()
	registry[hwnd] = w
	registryMu.Unlock()

	show(hwnd, spec)

	ready <- openResult{w: w}

	var msg win.MSG
	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			w.logger.Debug("Overlay message loop ended", zap.String("kind", string(w.kind)))
			return
		case -1:
			w.logger.Error("Overlay message loop failed",
				zap.String("kind", string(w.kind)),
				zap.Error(windows.GetLastError()))
			return
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func registerClass() error {
	registerOnce.Do(func() {
		name, err := syscall.UTF16PtrFromString(className)
		if err != nil {
			registerErr = err
			return
		}

		wc := win.WNDCLASSEX{
			LpfnWndProc:   syscall.NewCallback(wndProc),
			HInstance:     win.GetModuleHandle(nil),
			HbrBackground: win.HBRUSH(win.GetStockObject(win.BLACK_BRUSH)),
			LpszClassName: name,
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))

		if win.RegisterClassEx(&wc) == 0 {
			registerErr = fmt.Errorf("register overlay window class: %w", windows.GetLastError())
		}
	})
	return registerErr
}

func createWindow(spec domain.WindowSpec) (win.HWND, error) {
	name, _ := syscall.UTF16PtrFromString(className)
	title, err := syscall.UTF16PtrFromString(spec.Title)
	if err != nil {
		return 0, err
	}

	exStyle := uint32(win.WS_EX_TOOLWINDOW | win.WS_EX_LAYERED)
	if spec.TopMost {
		exStyle |= win.WS_EX_TOPMOST
	}

	b := spec.Bounds
	hwnd := win.CreateWindowEx(
		exStyle, name, title, win.WS_POPUP,
		int32(b.Min.X), int32(b.Min.Y), int32(b.Dx()), int32(b.Dy()),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("create %s overlay window: %w", spec.Kind, windows.GetLastError())
	}

	// Layered windows stay invisible until their attributes are set
	alpha := uintptr(math.Round(effectiveOpacity(spec.Opacity) * 255))
	if r, _, err := procSetLayeredWindowAttributes.Call(uintptr(hwnd), 0, alpha, lwaAlpha); r == 0 {
		win.DestroyWindow(hwnd)
		return 0, fmt.Errorf("set %s overlay opacity: %w", spec.Kind, err)
	}

	return hwnd, nil
}

// show makes a registered window visible and paints its first frame synchronously
func show(hwnd win.HWND, spec domain.WindowSpec) {
	b := spec.Bounds
	after := win.HWND_NOTOPMOST
	if spec.TopMost {
		after = win.HWND_TOPMOST
	}
	win.SetWindowPos(hwnd, after,
		int32(b.Min.X), int32(b.Min.Y), int32(b.Dx()), int32(b.Dy()),
		win.SWP_NOACTIVATE|win.SWP_SHOWWINDOW)
	win.InvalidateRect(hwnd, nil, false)
	win.UpdateWindow(hwnd)
}

// SetContent swaps the frame and asks the owning thread to repaint
func (w *window) SetContent(content domain.Content) error {
	select {
	case <-w.done:
		return domain.ErrWindowClosed
	default:
	}

	frame := NewFrame(content.Image)

	w.mu.Lock()
	w.frame = frame
	w.mu.Unlock()

	if win.PostMessage(w.hwnd, wmRefresh, 0, 0) == 0 {
		return domain.ErrWindowClosed
	}
	return nil
}

// Close requests destruction on the owning thread; repeated calls are no-ops
func (w *window) Close() error {
	w.closeOnce.Do(func() {
		select {
		case <-w.done:
		default:
			win.PostMessage(w.hwnd, win.WM_CLOSE, 0, 0)
		}
	})
	return nil
}

func (w *window) Done() <-chan struct{} {
	return w.done
}

func (w *window) paint(hwnd win.HWND) {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(hwnd, &ps)
	defer win.EndPaint(hwnd, &ps)

	w.mu.Lock()
	defer w.mu.Unlock()

	f := w.frame
	if f.Width == 0 || f.Height == 0 {
		return
	}

	var bmi win.BITMAPINFO
	bmi.BmiHeader = win.BITMAPINFOHEADER{
		BiWidth:       int32(f.Width),
		BiHeight:      -int32(f.Height), // top-down
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: win.BI_RGB,
	}
	bmi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bmi.BmiHeader))

	procSetDIBitsToDevice.Call(
		uintptr(hdc),
		0, 0,
		uintptr(f.Width), uintptr(f.Height),
		0, 0,
		0, uintptr(f.Height),
		uintptr(unsafe.Pointer(&f.Pix[0])),
		uintptr(unsafe.Pointer(&bmi)),
		uintptr(win.DIB_RGB_COLORS),
	)
	w.paints.Add(1)
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	registryMu.RLock()
	w := registry[hwnd]
	registryMu.RUnlock()

	if w == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case wmRefresh:
		win.InvalidateRect(hwnd, nil, false)
		return 0
	case win.WM_PAINT:
		w.paint(hwnd)
		return 0
	case win.WM_ERASEBKGND:
		return 1
	case win.WM_CLOSE:
		win.DestroyWindow(hwnd)
		return 0
	case win.WM_DESTROY:
		registryMu.Lock()
		delete(registry, hwnd)
		registryMu.Unlock()
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// effectiveOpacity treats an unset (zero) or out of range opacity as opaque
func effectiveOpacity(opacity float64) float64 {
	if opacity <= 0 || opacity > 1 {
		return 1.0
	}
	return opacity
}
