// SPDX-License-Identifier: Unlicense OR MIT

/*
Package platform defines the display abstraction behind ezgl and the
acquisition of a current rendering context on a window.

A Display enumerates configurations, creates window surfaces and
contexts, and resolves client API entry points. Acquire drives a
Display through a fixed sequence: select a configuration with
SelectConfig, create the surface, create a desktop OpenGL context or
fall back to OpenGL ES once, make it current, load the entry points
and install the debug callback.

Backends for EGL and GLX live in ezgl's internal packages. The package
itself has no native dependencies.
*/
package platform
