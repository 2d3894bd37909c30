// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && !nox11

package glx

/*
#include <X11/Xlib.h>

int ezgl_callErrorHandler(XErrorHandler h, Display *dpy, XErrorEvent *ev);
XErrorHandler ezgl_setErrorHandler(void);
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

// Hooks is the Xlib error hook registrar. Xlib has a single error
// handler per process; the first registration replaces it with one
// that offers each error to the registered hooks in order, and to the
// previous handler if no hook handles it.
type Hooks struct {
	mu        sync.Mutex
	hooks     []registeredHook
	nextID    uint64
	installed bool
	prev      C.XErrorHandler
}

type registeredHook struct {
	id   uint64
	hook platform.ErrorHook
}

var xlibHooks = new(Hooks)

// ErrorHooks returns the process wide Xlib registrar.
func ErrorHooks() *Hooks {
	return xlibHooks
}

func (h *Hooks) RegisterErrorHook(hook platform.ErrorHook) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.hooks = append(h.hooks, registeredHook{id: id, hook: hook})
	if !h.installed {
		h.prev = C.ezgl_setErrorHandler()
		h.installed = true
	}
	return func() { h.unregister(id) }
}

// unregister removes the hook with id. The Xlib handler stays
// installed.
func (h *Hooks) unregister(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, r := range h.hooks {
		if r.id == id {
			h.hooks = append(h.hooks[:i:i], h.hooks[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered hooks.
func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hooks)
}

func (h *Hooks) Enabled() bool {
	return true
}

func (h *Hooks) dispatch(dpy *C.Display, ev *C.XErrorEvent) C.int {
	h.mu.Lock()
	hooks := append([]registeredHook(nil), h.hooks...)
	prev := h.prev
	h.mu.Unlock()
	for _, r := range hooks {
		if r.hook(unsafe.Pointer(dpy), unsafe.Pointer(ev)) {
			return 0
		}
	}
	if prev != nil {
		return C.ezgl_callErrorHandler(prev, dpy, ev)
	}
	return 0
}

//export ezglXErrorHandler
func ezglXErrorHandler(dpy *C.Display, ev *C.XErrorEvent) C.int {
	return xlibHooks.dispatch(dpy, ev)
}
